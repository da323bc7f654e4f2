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

// LenUnary returns the length in bits of the unary code of n.
func LenUnary(n uint64) uint64 {
	return n + 1
}

// WriteUnary writes n as n zero bits followed by a terminating one bit.
func WriteUnary(w bitio.BitWriter, n uint64) error {
	return w.WriteUnary(n)
}

// ReadUnary reads a unary-coded value. When TablesEnabled, it first
// tries the table-assisted fast path (a single window peek resolving
// the whole run in one table probe) and falls back to the
// bit-buffer-direct BitReader.ReadUnary scan when the run is longer
// than the table's window.
func ReadUnary(r bitio.BitReader) (uint64, error) {
	if TablesEnabled {
		if v, ok, err := readUnaryTable(r); err != nil {
			return 0, err
		} else if ok {
			return v, nil
		}
	}

	return r.ReadUnary()
}
