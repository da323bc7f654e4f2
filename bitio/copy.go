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

package bitio

import "github.com/pkg/errors"

// CopyBits transfers n bits from src to dst, chunking the transfer into
// reads/writes of at most 64 bits at a time. It works across any
// combination of endianness and word width, at the cost of reassembling
// every bit through src's and dst's own bit-level accounting; there is
// no attempt at a raw word-level fast path here, since dst and src may
// have entirely different word widths and endianness.
func CopyBits(dst BitWriter, src BitReader, n uint64) (uint64, error) {
	const chunk = 56 // safely under 64 for any n bit-count arithmetic below

	var copied uint64

	for copied < n {
		c := n - copied
		if c > chunk {
			c = chunk
		}

		v, err := src.ReadBits(uint(c))
		if err != nil {
			return copied, errors.WithStack(err)
		}

		if err := dst.WriteBits(v, uint(c)); err != nil {
			return copied, errors.WithStack(err)
		}

		copied += c
	}

	return copied, nil
}
