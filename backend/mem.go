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

package backend

import (
	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
)

// MemWordReader is a WordReader backed by a fixed in-memory slice of
// words, mirroring the way kanzi's DefaultInputBitStream treats its
// []byte buffer as a flat, position-tracked word source.
type MemWordReader[W Word] struct {
	words    []W
	position int
	closed   bool
}

// NewMemWordReader creates a MemWordReader over the given word slice.
// The slice is not copied; callers must not mutate it while reading.
func NewMemWordReader[W Word](words []W) *MemWordReader[W] {
	this := new(MemWordReader[W])
	this.words = words
	return this
}

// ReadWord returns the next word, or ErrUnexpectedEOF once exhausted.
func (this *MemWordReader[W]) ReadWord() (W, error) {
	if this.closed {
		return 0, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if this.position >= len(this.words) {
		return 0, errors.WithStack(dsibitstream.ErrUnexpectedEOF)
	}

	w := this.words[this.position]
	this.position++
	return w, nil
}

// Len returns the number of words backing this reader.
func (this *MemWordReader[W]) Len() int {
	return len(this.words)
}

// Position returns the index of the next word to be read.
func (this *MemWordReader[W]) Position() int {
	return this.position
}

// Close marks the reader unavailable for further reads.
func (this *MemWordReader[W]) Close() error {
	this.closed = true
	return nil
}

// MemWordWriterVec is a WordWriter backed by a growable in-memory slice
// of words, generalizing kanzi's byte-slice output buffer to arbitrary
// word width. If capacity is bounded (see NewBoundedMemWordWriterVec),
// writes past the bound return ErrBackendFull instead of growing.
type MemWordWriterVec[W Word] struct {
	words    []W
	maxWords int // -1 means unbounded
	closed   bool
}

// NewMemWordWriterVec creates an unbounded, growable in-memory word
// writer.
func NewMemWordWriterVec[W Word]() *MemWordWriterVec[W] {
	this := new(MemWordWriterVec[W])
	this.maxWords = -1
	return this
}

// NewBoundedMemWordWriterVec creates an in-memory word writer that
// refuses to grow past maxWords words.
func NewBoundedMemWordWriterVec[W Word](maxWords int) *MemWordWriterVec[W] {
	this := new(MemWordWriterVec[W])
	this.maxWords = maxWords
	this.words = make([]W, 0, maxWords)
	return this
}

// WriteWord appends w to the backend.
func (this *MemWordWriterVec[W]) WriteWord(w W) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if this.maxWords >= 0 && len(this.words) >= this.maxWords {
		return errors.WithStack(dsibitstream.ErrBackendFull)
	}

	this.words = append(this.words, w)
	return nil
}

// Position returns the number of words written so far.
func (this *MemWordWriterVec[W]) Position() int {
	return len(this.words)
}

// Words returns the words written so far. The returned slice aliases
// the writer's internal storage.
func (this *MemWordWriterVec[W]) Words() []W {
	return this.words
}

// Close marks the writer unavailable for further writes.
func (this *MemWordWriterVec[W]) Close() error {
	this.closed = true
	return nil
}
