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
	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
	"github.com/vigna/dsi-bitstream-go/backend"
)

// The writer buffer is a single word wide (the same capacity as the
// reader's): bits accumulate until a full word is ready, at which point
// it is pushed to the backend, matching kanzi's DefaultOutputBitStream
// "pushCurrent on overflow" discipline.

// WordSink is the minimal, word-width-erased view of a backend.WordWriter
// that the bit writers depend on.
type WordSink interface {
	WriteWord(w uint64) error
}

type wordSinkAdapter[W backend.Word] struct {
	w backend.WordWriter[W]
}

func (a wordSinkAdapter[W]) WriteWord(w uint64) error {
	return a.w.WriteWord(W(w))
}

// BEBitWriter is a big-endian (MSB-first) buffered bit writer.
type BEBitWriter struct {
	dst      WordSink
	wordBits uint
	buffer   uint64
	avail    uint // number of free bits remaining in buffer
	position uint64
	closed   bool
}

// NewBEBitWriter creates a big-endian bit writer over dst, a backend
// word writer whose word width in bits is wordBits (16, 32 or 64).
func NewBEBitWriter[W backend.Word](dst backend.WordWriter[W], wordBits uint) (*BEBitWriter, error) {
	if dst == nil {
		return nil, errors.Wrap(dsibitstream.ErrInvalidArgument, "bitio: nil word sink")
	}

	if err := validateWordBits(wordBits); err != nil {
		return nil, err
	}

	this := new(BEBitWriter)
	this.dst = wordSinkAdapter[W]{dst}
	this.wordBits = wordBits
	this.avail = wordBits
	return this, nil
}

func (this *BEBitWriter) pushWord() error {
	if err := this.dst.WriteWord(this.buffer); err != nil {
		return err
	}

	this.buffer = 0
	this.avail = this.wordBits
	return nil
}

// writeChunk writes n bits, 1 <= n <= wordBits, of v (right-aligned),
// with at most one backend word push.
func (this *BEBitWriter) writeChunk(v uint64, n uint) error {
	v &= maskLow64(n)

	if n <= this.avail {
		this.avail -= n
		this.buffer |= v << this.avail
		return nil
	}

	count := n - this.avail
	high := v >> count
	this.buffer |= high
	this.buffer &= maskLow64(this.wordBits)

	if err := this.pushWord(); err != nil {
		return err
	}

	this.avail -= count
	this.buffer |= (v & maskLow64(count)) << this.avail
	return nil
}

// WriteBit writes a single bit.
func (this *BEBitWriter) WriteBit(b uint) error {
	return this.WriteBits(uint64(b), 1)
}

// WriteBits writes the low n bits, 1 <= n <= 64, of v, most significant
// bit first.
func (this *BEBitWriter) WriteBits(v uint64, n uint) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if n == 0 || n > 64 {
		return errors.Wrapf(dsibitstream.ErrInvalidArgument, "bitio: invalid bit count %d", n)
	}

	remaining := n

	for remaining > 0 {
		chunk := remaining
		if chunk > this.wordBits {
			chunk = this.wordBits
		}

		shift := remaining - chunk

		if err := this.writeChunk(v>>shift, chunk); err != nil {
			return err
		}

		remaining -= chunk
	}

	this.position += uint64(n)
	return nil
}

// WriteUnary writes v as v zero bits followed by a single terminating 1
// bit, writing whole zero words directly to the backend for large v
// instead of looping bit by bit.
func (this *BEBitWriter) WriteUnary(v uint64) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	remaining := v

	for remaining >= uint64(this.avail) {
		remaining -= uint64(this.avail)

		if err := this.pushWord(); err != nil {
			return err
		}
	}

	this.avail -= uint(remaining)
	this.avail--
	this.buffer |= uint64(1) << this.avail
	this.position += v + 1
	return nil
}

// Flush pads any partially filled trailing word with zero bits and
// forces it out to the backend.
func (this *BEBitWriter) Flush() error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if this.avail != this.wordBits {
		return this.pushWord()
	}

	return nil
}

// Position returns the total number of bits written so far, including
// bits still buffered but not yet flushed.
func (this *BEBitWriter) Position() uint64 {
	return this.position
}

// Close flushes and marks the writer unavailable for further writes.
func (this *BEBitWriter) Close() error {
	if this.closed {
		return nil
	}

	err := this.Flush()
	this.closed = true
	return err
}

// LEBitWriter is a little-endian (LSB-first) buffered bit writer.
type LEBitWriter struct {
	dst      WordSink
	wordBits uint
	buffer   uint64
	filled   uint // number of occupied bits in buffer, from bit 0 up
	position uint64
	closed   bool
}

// NewLEBitWriter creates a little-endian bit writer over dst, a backend
// word writer whose word width in bits is wordBits (16, 32 or 64).
func NewLEBitWriter[W backend.Word](dst backend.WordWriter[W], wordBits uint) (*LEBitWriter, error) {
	if dst == nil {
		return nil, errors.Wrap(dsibitstream.ErrInvalidArgument, "bitio: nil word sink")
	}

	if err := validateWordBits(wordBits); err != nil {
		return nil, err
	}

	this := new(LEBitWriter)
	this.dst = wordSinkAdapter[W]{dst}
	this.wordBits = wordBits
	return this, nil
}

func (this *LEBitWriter) pushWord() error {
	if err := this.dst.WriteWord(this.buffer & maskLow64(this.wordBits)); err != nil {
		return err
	}

	this.buffer = 0
	this.filled = 0
	return nil
}

func (this *LEBitWriter) writeChunk(v uint64, n uint) error {
	v &= maskLow64(n)
	free := this.wordBits - this.filled

	if n <= free {
		this.buffer |= v << this.filled
		this.filled += n
		if this.filled == this.wordBits {
			return this.pushWord()
		}
		return nil
	}

	this.buffer |= (v & maskLow64(free)) << this.filled
	this.filled = this.wordBits

	if err := this.pushWord(); err != nil {
		return err
	}

	rest := n - free
	this.buffer |= (v >> free) & maskLow64(rest)
	this.filled = rest
	return nil
}

// WriteBit writes a single bit.
func (this *LEBitWriter) WriteBit(b uint) error {
	return this.WriteBits(uint64(b), 1)
}

// WriteBits writes the low n bits, 1 <= n <= 64, of v, least significant
// bit first.
func (this *LEBitWriter) WriteBits(v uint64, n uint) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if n == 0 || n > 64 {
		return errors.Wrapf(dsibitstream.ErrInvalidArgument, "bitio: invalid bit count %d", n)
	}

	remaining := n
	var shift uint

	for remaining > 0 {
		chunk := remaining
		if chunk > this.wordBits {
			chunk = this.wordBits
		}

		if err := this.writeChunk(v>>shift, chunk); err != nil {
			return err
		}

		shift += chunk
		remaining -= chunk
	}

	this.position += uint64(n)
	return nil
}

// WriteUnary writes v as v zero bits followed by a single terminating 1
// bit.
func (this *LEBitWriter) WriteUnary(v uint64) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	remaining := v

	for remaining >= uint64(this.wordBits-this.filled) {
		remaining -= uint64(this.wordBits - this.filled)

		if err := this.pushWord(); err != nil {
			return err
		}
	}

	this.buffer |= uint64(1) << (this.filled + uint(remaining))
	this.filled += uint(remaining) + 1

	if this.filled == this.wordBits {
		if err := this.pushWord(); err != nil {
			return err
		}
	}

	this.position += v + 1
	return nil
}

// Flush pads any partially filled trailing word with zero bits and
// forces it out to the backend.
func (this *LEBitWriter) Flush() error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if this.filled != 0 {
		return this.pushWord()
	}

	return nil
}

// Position returns the total number of bits written so far, including
// bits still buffered but not yet flushed.
func (this *LEBitWriter) Position() uint64 {
	return this.position
}

// Close flushes and marks the writer unavailable for further writes.
func (this *LEBitWriter) Close() error {
	if this.closed {
		return nil
	}

	err := this.Flush()
	this.closed = true
	return err
}
