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

// LenRice returns the length in bits of the Rice/Golomb-Rice code of n
// with parameter k: a unary quotient plus a k-bit remainder.
func LenRice(n uint64, k uint) uint64 {
	return (n >> k) + 1 + uint64(k)
}

// WriteRice writes n as a unary-coded quotient n>>k followed by the low
// k bits of n as the remainder.
func WriteRice(w bitio.BitWriter, n uint64, k uint) error {
	if k > 63 {
		return errInvalidArgf("codes: rice requires k <= 63, got %d", k)
	}

	if err := w.WriteUnary(n >> k); err != nil {
		return err
	}

	if k == 0 {
		return nil
	}

	return w.WriteBits(n, k)
}

// ReadRice reads a value written by WriteRice with the same k.
func ReadRice(r bitio.BitReader, k uint) (uint64, error) {
	if k > 63 {
		return 0, errInvalidArgf("codes: rice requires k <= 63, got %d", k)
	}

	q, err := ReadUnary(r)
	if err != nil {
		return 0, err
	}

	if k == 0 {
		return q, nil
	}

	if q > ^uint64(0)>>k {
		return 0, errDecodeOverflowf("codes: rice quotient %d too large for k=%d", q, k)
	}

	rem, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}

	return q<<k | rem, nil
}
