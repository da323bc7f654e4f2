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

// LenGamma returns the length in bits of the Elias gamma code of n.
func LenGamma(n uint64) uint64 {
	l := floorLog2NPlus1(n)
	return uint64(2*l + 1)
}

// WriteGamma writes n using Elias gamma coding: floor(log2(n+1)) zero
// bits, a one bit, then floor(log2(n+1)) bits of n+1-2^l.
func WriteGamma(w bitio.BitWriter, n uint64) error {
	value := n + 1
	l := floorLog2NPlus1(n)

	if err := w.WriteUnary(uint64(l)); err != nil {
		return err
	}

	if l == 0 {
		return nil
	}

	short := value - (uint64(1) << l)
	return w.WriteBits(short, l)
}

// ReadGamma reads a value written by WriteGamma. When TablesEnabled,
// it first tries the table-assisted fast path (a single window peek
// resolving the entire codeword, for any n small enough to fit it) and
// falls back to reading the unary exponent and remainder directly when
// the codeword is too wide for the table.
func ReadGamma(r bitio.BitReader) (uint64, error) {
	if TablesEnabled {
		if v, ok, err := readGammaTable(r); err != nil {
			return 0, err
		} else if ok {
			return v, nil
		}
	}

	l, err := ReadUnary(r)
	if err != nil {
		return 0, err
	}

	if l == 0 {
		return 0, nil
	}

	if l > 64 {
		return 0, errDecodeOverflowf("codes: gamma exponent %d too large", l)
	}

	rest, err := r.ReadBits(uint(l))
	if err != nil {
		return 0, err
	}

	if l == 64 && rest != 0 {
		return 0, errDecodeOverflowf("codes: gamma value 2^64+%d does not fit in uint64", rest)
	}

	return (uint64(1)<<l + rest) - 1, nil
}
