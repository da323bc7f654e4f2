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

// LenExpGolomb returns the length in bits of the exponential Golomb
// code of n with order k. For k == 0 this equals LenGamma(n).
func LenExpGolomb(n uint64, k uint) uint64 {
	return LenGamma(n>>k) + uint64(k)
}

// WriteExpGolomb writes n as the gamma code of n>>k followed by the low
// k bits of n.
func WriteExpGolomb(w bitio.BitWriter, n uint64, k uint) error {
	if k > 63 {
		return errInvalidArgf("codes: exp-golomb requires k <= 63, got %d", k)
	}

	if err := WriteGamma(w, n>>k); err != nil {
		return err
	}

	if k == 0 {
		return nil
	}

	return w.WriteBits(n, k)
}

// ReadExpGolomb reads a value written by WriteExpGolomb with the same k.
func ReadExpGolomb(r bitio.BitReader, k uint) (uint64, error) {
	if k > 63 {
		return 0, errInvalidArgf("codes: exp-golomb requires k <= 63, got %d", k)
	}

	q, err := ReadGamma(r)
	if err != nil {
		return 0, err
	}

	if k == 0 {
		return q, nil
	}

	if q > ^uint64(0)>>k {
		return 0, errDecodeOverflowf("codes: exp-golomb quotient %d too large for k=%d", q, k)
	}

	rem, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}

	return q<<k | rem, nil
}
