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

import (
	"math/bits"

	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
	"github.com/vigna/dsi-bitstream-go/backend"
)

// The reader buffer holds up to wordBits valid bits, bottom-justified in
// a uint64 (positions [0, avail-1]). A read of n <= wordBits bits that
// exhausts the buffer performs exactly one word refill, which replaces
// the buffer outright after the still-unconsumed leftover bits have
// been extracted -- the same "split read across a full-word pull"
// technique kanzi's DefaultInputBitStream.ReadBits uses for its
// (fixed 64-bit) current/pullCurrent pair, generalized here to whatever
// word width the backend uses. ReadBits itself accepts n up to 64 by
// looping over chunks of at most wordBits.

func validateWordBits(wordBits uint) error {
	if wordBits != 16 && wordBits != 32 && wordBits != 64 {
		return errors.Wrapf(dsibitstream.ErrInvalidArgument,
			"bitio: reader word width must be 16, 32 or 64, got %d", wordBits)
	}

	return nil
}

// WordSource is the minimal, word-width-erased view of a backend.WordReader
// that the bit readers depend on. Concrete constructors adapt a typed
// backend.WordReader[W] to this interface, keeping the hot read path
// free of generic dispatch.
type WordSource interface {
	ReadWord() (uint64, error)
}

// wordSourceAdapter adapts a backend.WordReader[W] to WordSource.
type wordSourceAdapter[W backend.Word] struct {
	r backend.WordReader[W]
}

func (a wordSourceAdapter[W]) ReadWord() (uint64, error) {
	w, err := a.r.ReadWord()
	return uint64(w), err
}

const unaryOverflowGuard = 1 << 40

// BEBitReader is a big-endian (MSB-first) buffered bit reader.
type BEBitReader struct {
	src       WordSource
	wordBits  uint
	buffer    uint64
	avail     uint
	position  uint64
	closed    bool
	pending   []uint64  // words fetched ahead by a PeekBits call, replayed before src
	recording *[]uint64 // non-nil while PeekBits is recording fetched words to restore
}

// NewBEBitReader creates a big-endian bit reader over src, a backend
// word reader whose word width in bits is wordBits (16, 32 or 64).
func NewBEBitReader[W backend.Word](src backend.WordReader[W], wordBits uint) (*BEBitReader, error) {
	if src == nil {
		return nil, errors.Wrap(dsibitstream.ErrInvalidArgument, "bitio: nil word source")
	}

	if err := validateWordBits(wordBits); err != nil {
		return nil, err
	}

	this := new(BEBitReader)
	this.src = wordSourceAdapter[W]{src}
	this.wordBits = wordBits
	return this, nil
}

// fetchWord returns the next backend word, preferring any word queued
// by a prior PeekBits call before drawing a fresh one from src, and
// recording it if a PeekBits call further up the stack needs to put it
// back afterwards.
func (this *BEBitReader) fetchWord() (uint64, error) {
	var w uint64

	if len(this.pending) > 0 {
		w = this.pending[0]
		this.pending = this.pending[1:]
	} else {
		var err error
		w, err = this.src.ReadWord()
		if err != nil {
			return 0, err
		}
	}

	if this.recording != nil {
		*this.recording = append(*this.recording, w)
	}

	return w, nil
}

func (this *BEBitReader) refill() error {
	w, err := this.fetchWord()
	if err != nil {
		return err
	}

	this.buffer = w
	this.avail = this.wordBits
	return nil
}

// readChunk reads n bits, 1 <= n <= wordBits, with at most one refill.
func (this *BEBitReader) readChunk(n uint) (uint64, error) {
	if n <= this.avail {
		this.avail -= n
		return (this.buffer >> this.avail) & maskLow64(n), nil
	}

	count := n - this.avail
	leftover := this.buffer & maskLow64(this.avail)

	if err := this.refill(); err != nil {
		return 0, err
	}

	this.avail -= count
	low := (this.buffer >> this.avail) & maskLow64(count)
	return (leftover << count) | low, nil
}

// ReadBit reads a single bit.
func (this *BEBitReader) ReadBit() (uint, error) {
	v, err := this.ReadBits(1)
	return uint(v), err
}

// ReadBits reads n bits, 1 <= n <= 64, most significant bit first.
func (this *BEBitReader) ReadBits(n uint) (uint64, error) {
	if this.closed {
		return 0, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if n == 0 || n > 64 {
		return 0, errors.Wrapf(dsibitstream.ErrInvalidArgument, "bitio: invalid bit count %d", n)
	}

	var result uint64
	remaining := n

	for remaining > 0 {
		chunk := remaining
		if chunk > this.wordBits {
			chunk = this.wordBits
		}

		v, err := this.readChunk(chunk)
		if err != nil {
			return 0, err
		}

		result = (result << chunk) | v
		remaining -= chunk
	}

	this.position += uint64(n)
	return result, nil
}

// PeekBits returns the next n bits, 1 <= n <= 64, most significant bit
// first, the same as ReadBits, but leaves the read position unchanged:
// a following ReadBits(n) (or PeekBits(n)) observes the same bits
// again. Any backend word PeekBits has to fetch beyond what is already
// buffered is queued and replayed by the next refill, rather than lost.
func (this *BEBitReader) PeekBits(n uint) (uint64, error) {
	savedBuffer, savedAvail, savedPosition := this.buffer, this.avail, this.position

	var fetched []uint64
	this.recording = &fetched

	result, err := this.ReadBits(n)

	this.recording = nil
	this.buffer, this.avail, this.position = savedBuffer, savedAvail, savedPosition
	this.pending = append(fetched, this.pending...)

	if err != nil {
		return 0, err
	}

	return result, nil
}

// ReadUnary reads the number of leading 0 bits before the terminating
// 1 bit, skipping whole zero words directly from the backend once the
// buffer has been drained of set bits.
func (this *BEBitReader) ReadUnary() (uint64, error) {
	if this.closed {
		return 0, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	var count uint64

	for {
		if this.avail == 0 {
			if err := this.refill(); err != nil {
				return 0, err
			}
		}

		valid := this.buffer & maskLow64(this.avail)

		if valid == 0 {
			count += uint64(this.avail)
			this.avail = 0

			for {
				w, err := this.fetchWord()
				if err != nil {
					return 0, err
				}

				if w != 0 {
					this.buffer = w
					this.avail = this.wordBits
					break
				}

				count += uint64(this.wordBits)

				if count > unaryOverflowGuard {
					return 0, errors.WithStack(dsibitstream.ErrDecodeOverflow)
				}
			}

			continue
		}

		shifted := valid << (64 - this.avail)
		lz := uint(bits.LeadingZeros64(shifted))
		total := lz + 1
		count += uint64(lz)
		this.avail -= total
		this.position += count + 1
		return count, nil
	}
}

// SkipBits discards n bits without returning them.
func (this *BEBitReader) SkipBits(n uint) error {
	_, err := this.ReadBits(n)
	return err
}

// Position returns the total number of bits read so far.
func (this *BEBitReader) Position() uint64 {
	return this.position
}

// Close marks the reader unavailable for further reads.
func (this *BEBitReader) Close() error {
	this.closed = true
	return nil
}

// LEBitReader is a little-endian (LSB-first) buffered bit reader.
type LEBitReader struct {
	src       WordSource
	wordBits  uint
	buffer    uint64
	avail     uint
	position  uint64
	closed    bool
	pending   []uint64  // words fetched ahead by a PeekBits call, replayed before src
	recording *[]uint64 // non-nil while PeekBits is recording fetched words to restore
}

// NewLEBitReader creates a little-endian bit reader over src, a backend
// word reader whose word width in bits is wordBits (16, 32 or 64).
func NewLEBitReader[W backend.Word](src backend.WordReader[W], wordBits uint) (*LEBitReader, error) {
	if src == nil {
		return nil, errors.Wrap(dsibitstream.ErrInvalidArgument, "bitio: nil word source")
	}

	if err := validateWordBits(wordBits); err != nil {
		return nil, err
	}

	this := new(LEBitReader)
	this.src = wordSourceAdapter[W]{src}
	this.wordBits = wordBits
	return this, nil
}

// fetchWord returns the next backend word, preferring any word queued
// by a prior PeekBits call before drawing a fresh one from src, and
// recording it if a PeekBits call further up the stack needs to put it
// back afterwards.
func (this *LEBitReader) fetchWord() (uint64, error) {
	var w uint64

	if len(this.pending) > 0 {
		w = this.pending[0]
		this.pending = this.pending[1:]
	} else {
		var err error
		w, err = this.src.ReadWord()
		if err != nil {
			return 0, err
		}
	}

	if this.recording != nil {
		*this.recording = append(*this.recording, w)
	}

	return w, nil
}

func (this *LEBitReader) refill() error {
	w, err := this.fetchWord()
	if err != nil {
		return err
	}

	this.buffer = w
	this.avail = this.wordBits
	return nil
}

func (this *LEBitReader) readChunk(n uint) (uint64, error) {
	if n <= this.avail {
		result := this.buffer & maskLow64(n)
		this.buffer >>= n
		this.avail -= n
		return result, nil
	}

	avail0 := this.avail
	count := n - avail0
	leftover := this.buffer & maskLow64(avail0)

	if err := this.refill(); err != nil {
		return 0, err
	}

	low := this.buffer & maskLow64(count)
	this.buffer >>= count
	this.avail -= count
	return leftover | (low << avail0), nil
}

// ReadBit reads a single bit.
func (this *LEBitReader) ReadBit() (uint, error) {
	v, err := this.ReadBits(1)
	return uint(v), err
}

// ReadBits reads n bits, 1 <= n <= 64, least significant bit first.
func (this *LEBitReader) ReadBits(n uint) (uint64, error) {
	if this.closed {
		return 0, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if n == 0 || n > 64 {
		return 0, errors.Wrapf(dsibitstream.ErrInvalidArgument, "bitio: invalid bit count %d", n)
	}

	var result uint64
	var shift uint
	remaining := n

	for remaining > 0 {
		chunk := remaining
		if chunk > this.wordBits {
			chunk = this.wordBits
		}

		v, err := this.readChunk(chunk)
		if err != nil {
			return 0, err
		}

		result |= v << shift
		shift += chunk
		remaining -= chunk
	}

	this.position += uint64(n)
	return result, nil
}

// PeekBits returns the next n bits, 1 <= n <= 64, least significant
// bit first, the same as ReadBits, but leaves the read position
// unchanged: a following ReadBits(n) (or PeekBits(n)) observes the same
// bits again. Any backend word PeekBits has to fetch beyond what is
// already buffered is queued and replayed by the next refill, rather
// than lost.
func (this *LEBitReader) PeekBits(n uint) (uint64, error) {
	savedBuffer, savedAvail, savedPosition := this.buffer, this.avail, this.position

	var fetched []uint64
	this.recording = &fetched

	result, err := this.ReadBits(n)

	this.recording = nil
	this.buffer, this.avail, this.position = savedBuffer, savedAvail, savedPosition
	this.pending = append(fetched, this.pending...)

	if err != nil {
		return 0, err
	}

	return result, nil
}

// ReadUnary reads the number of leading 0 bits before the terminating
// 1 bit.
func (this *LEBitReader) ReadUnary() (uint64, error) {
	if this.closed {
		return 0, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	var count uint64

	for {
		if this.avail == 0 {
			if err := this.refill(); err != nil {
				return 0, err
			}
		}

		valid := this.buffer & maskLow64(this.avail)

		if valid == 0 {
			count += uint64(this.avail)
			this.avail = 0

			for {
				w, err := this.fetchWord()
				if err != nil {
					return 0, err
				}

				if w != 0 {
					this.buffer = w
					this.avail = this.wordBits
					break
				}

				count += uint64(this.wordBits)

				if count > unaryOverflowGuard {
					return 0, errors.WithStack(dsibitstream.ErrDecodeOverflow)
				}
			}

			continue
		}

		tz := uint(bits.TrailingZeros64(valid))
		total := tz + 1
		count += uint64(tz)
		this.buffer >>= total
		this.avail -= total
		this.position += count + 1
		return count, nil
	}
}

// SkipBits discards n bits without returning them.
func (this *LEBitReader) SkipBits(n uint) error {
	_, err := this.ReadBits(n)
	return err
}

// Position returns the total number of bits read so far.
func (this *LEBitReader) Position() uint64 {
	return this.position
}

// Close marks the reader unavailable for further reads.
func (this *LEBitReader) Close() error {
	this.closed = true
	return nil
}
