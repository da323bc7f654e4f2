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

// omegaOverflowGuard bounds the number of doubling steps ReadOmega will
// perform before giving up on a corrupt stream, mirroring bitio's own
// unary overflow guard.
const omegaOverflowGuard = 64

func lenOmegaRec(value uint64) uint64 {
	if value <= 1 {
		return 0
	}

	m := floorLog2(value)
	return lenOmegaRec(uint64(m)) + uint64(m) + 1
}

// LenOmega returns the length in bits of the Elias omega code of n,
// including its terminating zero bit.
func LenOmega(n uint64) uint64 {
	return lenOmegaRec(n+1) + 1
}

func writeOmegaRec(w bitio.BitWriter, value uint64) error {
	if value <= 1 {
		return nil
	}

	m := floorLog2(value)

	if err := writeOmegaRec(w, uint64(m)); err != nil {
		return err
	}

	return w.WriteBits(value, m+1)
}

// WriteOmega writes n using Elias omega coding: recursively-prefixed
// binary groups, most significant group first, terminated by a single
// zero bit.
func WriteOmega(w bitio.BitWriter, n uint64) error {
	if err := writeOmegaRec(w, n+1); err != nil {
		return err
	}

	return w.WriteBit(0)
}

// ReadOmega reads a value written by WriteOmega.
func ReadOmega(r bitio.BitReader) (uint64, error) {
	value := uint64(1)

	for i := 0; ; i++ {
		if i >= omegaOverflowGuard {
			return 0, errDecodeOverflowf("codes: omega decode exceeded %d doubling steps", omegaOverflowGuard)
		}

		b, err := r.ReadBit()
		if err != nil {
			return 0, err
		}

		if b == 0 {
			return value - 1, nil
		}

		if value >= 64 {
			return 0, errDecodeOverflowf("codes: omega decode group width %d exceeds 64 bits", value)
		}

		rest, err := r.ReadBits(uint(value))
		if err != nil {
			return 0, err
		}

		value = (uint64(1) << value) | rest
	}
}
