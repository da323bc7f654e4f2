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

// LenMinimalBinary returns the length in bits of the minimal binary
// code of value in [0, max), rounding to either floor(log2(max)) or
// floor(log2(max))+1 bits depending on value.
func LenMinimalBinary(value, max uint64) (uint, error) {
	if max == 0 {
		return 0, errInvalidArgf("codes: minimal binary requires max > 0, got %d", max)
	}

	l := floorLog2(max)
	limit := (uint64(1) << (l + 1)) - max

	if value < limit {
		return l, nil
	}

	return l + 1, nil
}

// WriteMinimalBinary writes value, 0 <= value < max, using the minimal
// number of bits needed to represent any value in [0, max).
func WriteMinimalBinary(w bitio.BitWriter, value, max uint64) error {
	if max == 0 {
		return errInvalidArgf("codes: minimal binary requires max > 0, got %d", max)
	}

	l := floorLog2(max)
	limit := (uint64(1) << (l + 1)) - max

	if value < limit {
		if l == 0 {
			return nil
		}
		return w.WriteBits(value, l)
	}

	toWrite := value + limit

	if l > 0 {
		if err := w.WriteBits(toWrite>>1, l); err != nil {
			return err
		}
	}

	return w.WriteBit(uint(toWrite & 1))
}

// ReadMinimalBinary reads a value written by WriteMinimalBinary with the
// same max.
func ReadMinimalBinary(r bitio.BitReader, max uint64) (uint64, error) {
	if max == 0 {
		return 0, errInvalidArgf("codes: minimal binary requires max > 0, got %d", max)
	}

	l := floorLog2(max)
	limit := (uint64(1) << (l + 1)) - max

	var value uint64

	if l > 0 {
		v, err := r.ReadBits(l)
		if err != nil {
			return 0, err
		}
		value = v
	}

	if value < limit {
		return value, nil
	}

	b, err := r.ReadBit()
	if err != nil {
		return 0, err
	}

	return (value<<1 | uint64(b)) - limit, nil
}
