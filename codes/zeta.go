/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package codes

import "github.com/vigna/dsi-bitstream-go/bitio"

// zetaParams computes the (h, l, u) triple shared by WriteZeta, ReadZeta
// and LenZeta for a given value = n+1 and shrink factor k.
func zetaParams(value uint64, k uint) (h, l, u uint64) {
	h = uint64(floorLog2(value)) / uint64(k)
	l = uint64(1) << (h * uint64(k))
	u = uint64(1) << ((h + 1) * uint64(k))
	return h, l, u
}

// LenZeta returns the length in bits of the Boldi-Vigna zeta code of n
// with shrink factor k.
func LenZeta(n uint64, k uint) (uint64, error) {
	if k == 0 {
		return 0, errInvalidArgf("codes: zeta requires k > 0, got %d", k)
	}

	value := n + 1
	h, l, u := zetaParams(value, k)

	ml, err := LenMinimalBinary(value-l, u-l)
	if err != nil {
		return 0, err
	}

	return LenUnary(h) + uint64(ml), nil
}

// WriteZeta writes n using Boldi-Vigna zeta coding with shrink factor k.
func WriteZeta(w bitio.BitWriter, n uint64, k uint) error {
	if k == 0 {
		return errInvalidArgf("codes: zeta requires k > 0, got %d", k)
	}

	value := n + 1
	h, l, u := zetaParams(value, k)

	if err := w.WriteUnary(h); err != nil {
		return err
	}

	return WriteMinimalBinary(w, value-l, u-l)
}

// ReadZeta reads a value written by WriteZeta with the same k.
func ReadZeta(r bitio.BitReader, k uint) (uint64, error) {
	if k == 0 {
		return 0, errInvalidArgf("codes: zeta requires k > 0, got %d", k)
	}

	h, err := ReadUnary(r)
	if err != nil {
		return 0, err
	}

	if h*uint64(k) > 63 {
		return 0, errDecodeOverflowf("codes: zeta exponent h=%d too large for k=%d", h, k)
	}

	l := uint64(1) << (h * uint64(k))
	u := uint64(1) << ((h + 1) * uint64(k))

	res, err := ReadMinimalBinary(r, u-l)
	if err != nil {
		return 0, err
	}

	return l + res - 1, nil
}
