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

// piParams computes the (rBits, h, l, v) quadruple shared by WritePi,
// ReadPi and LenPi for value = n+1 and shrink factor k.
func piParams(value uint64, k uint) (rBits, h, l, v uint64) {
	rBits = uint64(floorLog2(value))
	h = rBits + 1
	denom := uint64(1) << k
	l = (h + denom - 1) / denom
	v = l*denom - h
	return rBits, h, l, v
}

// LenPi returns the length in bits of the Apostolico-Drovandi pi code
// of n with shrink factor k.
func LenPi(n uint64, k uint) uint64 {
	rBits, _, l, _ := piParams(n+1, k)
	return LenUnary(l-1) + uint64(k) + rBits
}

// WritePi writes n using Apostolico-Drovandi pi coding with shrink
// factor k.
func WritePi(w bitio.BitWriter, n uint64, k uint) error {
	value := n + 1
	rBits, _, l, v := piParams(value, k)

	if err := w.WriteUnary(l - 1); err != nil {
		return err
	}

	if k > 0 {
		if err := w.WriteBits(v, k); err != nil {
			return err
		}
	}

	if rBits > 0 {
		rem := value &^ (^uint64(0) << rBits)
		if err := w.WriteBits(rem, uint(rBits)); err != nil {
			return err
		}
	}

	return nil
}

// ReadPi reads a value written by WritePi with the same k.
func ReadPi(r bitio.BitReader, k uint) (uint64, error) {
	lu, err := ReadUnary(r)
	if err != nil {
		return 0, err
	}

	l := lu + 1

	var v uint64
	if k > 0 {
		v, err = r.ReadBits(k)
		if err != nil {
			return 0, err
		}
	}

	denom := uint64(1) << k
	h := l*denom - v

	if h == 0 {
		return 0, errDecodeOverflowf("codes: pi decode produced non-positive h")
	}

	rBits := h - 1

	var rem uint64
	if rBits > 0 {
		if rBits > 63 {
			return 0, errDecodeOverflowf("codes: pi decode exponent %d too large", rBits)
		}
		rem, err = r.ReadBits(uint(rBits))
		if err != nil {
			return 0, err
		}
	}

	return (uint64(1)<<rBits + rem) - 1, nil
}
