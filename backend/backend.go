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

// Package backend supplies word-addressable storage for the bitio
// package. A backend reads and writes whole machine words (16, 32 or 64
// bits) in native byte order; bitio layers bit-level addressing and
// endianness on top of it.
package backend

// Word is the set of unsigned integer widths a backend can be built
// over.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// WordReader reads successive words from a backing store.
type WordReader[W Word] interface {
	// ReadWord returns the next word in the backend.
	ReadWord() (W, error)

	// Len returns the total number of words available.
	Len() int

	// Position returns the index of the next word to be read.
	Position() int

	// Close releases resources held by the backend.
	Close() error
}

// WordWriter writes successive words to a backing store.
type WordWriter[W Word] interface {
	// WriteWord appends a word to the backend.
	WriteWord(w W) error

	// Position returns the number of words written so far.
	Position() int

	// Close flushes and releases resources held by the backend.
	Close() error
}
