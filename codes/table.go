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

import (
	"math/bits"

	"github.com/vigna/dsi-bitstream-go/bitio"
)

// TablesEnabled gates the table-assisted fast decode path for unary
// and gamma (and, transitively, every code built on top of them: rice,
// zeta, pi, delta). Flipping it off forces every Read down the
// bit-buffer-direct slow path, the way it behaved before these tables
// existed; tests use this to check both paths agree.
var TablesEnabled = true

const (
	// unaryTableBits is the window width for the unary fast table: wide
	// enough to resolve the vast majority of real-world unary runs (k,
	// rice quotients, zeta/pi group-count prefixes) in one table probe.
	unaryTableBits = 12

	// gammaTableBits is the window width for the gamma fast table.
	// Gamma codes are 2l+1 bits wide, so 16 bits resolves every gamma
	// code for l <= 7, i.e. every n < 255.
	gammaTableBits = 16
)

type unaryEntry struct {
	count    uint8
	consumed uint8 // 0 means "terminator not within this window"
}

type gammaEntry struct {
	value    uint32
	consumed uint8 // 0 means "codeword not within this window"
}

var unaryTable [1 << unaryTableBits]unaryEntry
var gammaTable [1 << gammaTableBits]gammaEntry

func init() {
	buildUnaryTable()
	buildGammaTable()
}

// buildUnaryTable fills every window with the number of leading zero
// bits before its first one bit, and how many bits that run plus its
// terminator spans. Window 0 (all unaryTableBits bits zero) is left at
// its zero value, signaling "run may extend past this window".
func buildUnaryTable() {
	for window := 1; window < (1 << unaryTableBits); window++ {
		lead := bits.LeadingZeros16(uint16(window)) - (16 - unaryTableBits)
		unaryTable[window] = unaryEntry{count: uint8(lead), consumed: uint8(lead + 1)}
	}
}

// buildGammaTable fills every window whose first codeLen <= gammaTableBits
// bits form a complete gamma codeword, following the same canonical
// prefix-code tiling as kanzi's HuffmanCodec.go buildDecodingTable: a
// codeword of length codeLen occupying the top codeLen bits of the
// window claims every window value sharing that prefix, regardless of
// its low (gammaTableBits-codeLen) "don't care" bits. The gamma
// codeword for n, read as a codeLen-bit number, is exactly n+1 (l
// leading zero bits contribute nothing, the terminating one bit sets
// bit l, and the low l bits are the explicit suffix n+1-2^l).
func buildGammaTable() {
	for n := uint64(0); ; n++ {
		l := int(floorLog2NPlus1(n))
		codeLen := 2*l + 1

		if codeLen > gammaTableBits {
			break
		}

		shift := uint(gammaTableBits - codeLen)
		idx := (n + 1) << shift
		span := uint64(1) << shift
		entry := gammaEntry{value: uint32(n), consumed: uint8(codeLen)}

		for j := uint64(0); j < span; j++ {
			gammaTable[idx+j] = entry
		}
	}
}

// peekWindowMSBFirst peeks the next n bits of r and normalizes them so
// bit (n-1) of the result is always the first bit r will hand back on
// the next read, regardless of endianness: BEBitReader.PeekBits already
// returns bits most-significant-first, matching this convention
// directly, while LEBitReader.PeekBits returns them least-significant
// first and needs reversing within the n-bit window.
func peekWindowMSBFirst(r bitio.BitReader, n uint) (uint64, bool) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, false
	}

	if _, ok := r.(*bitio.LEBitReader); ok {
		v = bits.Reverse64(v) >> (64 - n)
	}

	return v, true
}

// readUnaryTable attempts the table-assisted fast path for a unary
// decode. ok is false when the table has no answer (window too short
// to peek, or the run extends past unaryTableBits), in which case the
// caller must fall back to the slow bit-by-bit scan; r's position is
// left untouched in that case since PeekBits never advances it.
func readUnaryTable(r bitio.BitReader) (value uint64, ok bool, err error) {
	window, peeked := peekWindowMSBFirst(r, unaryTableBits)
	if !peeked {
		return 0, false, nil
	}

	e := unaryTable[window]
	if e.consumed == 0 {
		return 0, false, nil
	}

	if err := r.SkipBits(uint(e.consumed)); err != nil {
		return 0, false, err
	}

	return uint64(e.count), true, nil
}

// readGammaTable attempts the table-assisted fast path for a gamma
// decode, with the same fallback contract as readUnaryTable.
func readGammaTable(r bitio.BitReader) (value uint64, ok bool, err error) {
	window, peeked := peekWindowMSBFirst(r, gammaTableBits)
	if !peeked {
		return 0, false, nil
	}

	e := gammaTable[window]
	if e.consumed == 0 {
		return 0, false, nil
	}

	if err := r.SkipBits(uint(e.consumed)); err != nil {
		return 0, false, err
	}

	value = uint64(e.value)

	// An LE writer emits the l-bit suffix least significant bit first, so
	// for an LE reader the table's suffix bits come out reversed.
	if _, le := r.(*bitio.LEBitReader); le {
		if l := uint(e.consumed-1) / 2; l > 0 {
			suffix := bits.Reverse64((value+1)&(uint64(1)<<l-1)) >> (64 - l)
			value = (uint64(1)<<l | suffix) - 1
		}
	}

	return value, true, nil
}
