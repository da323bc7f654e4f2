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

// Package codes implements the prefix-free integer codes built on top
// of bitio: unary, Elias gamma and delta, Boldi-Vigna zeta, Elias
// omega, Apostolico-Drovandi pi, minimal binary, Rice/Golomb-Rice,
// exponential Golomb and VByte. Every Write/Read pair follows the
// exact bit-level arithmetic of the reference algorithm for that code
// family, implemented in an error-returning, no-panic style
// throughout.
package codes

import (
	"math/bits"

	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
)

// floorLog2NPlus1 returns floor(log2(n+1)) without overflowing when
// n == math.MaxUint64.
func floorLog2NPlus1(n uint64) uint {
	if n == ^uint64(0) {
		return 64
	}

	return uint(bits.Len64(n+1) - 1)
}

// floorLog2 returns floor(log2(n)) for n >= 1.
func floorLog2(n uint64) uint {
	return uint(bits.Len64(n) - 1)
}

func errInvalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(dsibitstream.ErrInvalidArgument, format, args...)
}

// errDecodeOverflowf wraps ErrDecodeOverflow: used where the bits read
// so far are well-formed but imply a decoded value that cannot be
// represented in a uint64 (or would require more bits than any valid
// stream encodes), as opposed to a caller-supplied parameter outside
// its domain.
func errDecodeOverflowf(format string, args ...interface{}) error {
	return errors.Wrapf(dsibitstream.ErrDecodeOverflow, format, args...)
}
