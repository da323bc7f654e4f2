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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
)

// wordSize reports the byte width of W, one of the three widths the
// Word constraint admits.
func wordSize[W Word]() int {
	var zero W

	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// FileWordBackend reads and writes fixed-width words to an underlying
// io.ReadWriteSeeker (typically an *os.File), assembling them with
// encoding/binary.NativeEndian. The word width is carried in the type
// parameter W, the same way MemWordReader[W] and MemWordWriterVec[W]
// carry it, so a *FileWordBackend[W] satisfies WordReader[W] and
// WordWriter[W] directly. It is deliberately unbuffered at word
// granularity, since bitio.BEBitReader and bitio.LEBitWriter already
// perform their own buffering above it.
type FileWordBackend[W Word] struct {
	rw       io.ReadWriteSeeker
	position int
	closed   bool
}

// NewFileWordBackend wraps rw as a word backend whose word width is
// fixed by W (uint16, uint32 or uint64).
func NewFileWordBackend[W Word](rw io.ReadWriteSeeker) (*FileWordBackend[W], error) {
	if rw == nil {
		return nil, errors.Wrap(dsibitstream.ErrInvalidArgument, "backend: nil stream")
	}

	this := new(FileWordBackend[W])
	this.rw = rw
	return this, nil
}

// ReadWord reads the next word.
func (this *FileWordBackend[W]) ReadWord() (W, error) {
	buf, err := this.readN(wordSize[W]())
	if err != nil {
		return 0, err
	}

	var w W

	switch wordSize[W]() {
	case 2:
		w = W(binary.NativeEndian.Uint16(buf))
	case 4:
		w = W(binary.NativeEndian.Uint32(buf))
	default:
		w = W(binary.NativeEndian.Uint64(buf))
	}

	this.position++
	return w, nil
}

func (this *FileWordBackend[W]) readN(n int) ([]byte, error) {
	if this.closed {
		return nil, errors.WithStack(dsibitstream.ErrInvalidState)
	}

	buf := make([]byte, n)

	if _, err := io.ReadFull(this.rw, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(dsibitstream.ErrUnexpectedEOF, err.Error())
		}

		return nil, errors.WithStack(err)
	}

	return buf, nil
}

// WriteWord writes w to the underlying stream.
func (this *FileWordBackend[W]) WriteWord(w W) error {
	buf := make([]byte, wordSize[W]())

	switch wordSize[W]() {
	case 2:
		binary.NativeEndian.PutUint16(buf, uint16(w))
	case 4:
		binary.NativeEndian.PutUint32(buf, uint32(w))
	default:
		binary.NativeEndian.PutUint64(buf, uint64(w))
	}

	if err := this.writeN(buf); err != nil {
		return err
	}

	this.position++
	return nil
}

func (this *FileWordBackend[W]) writeN(buf []byte) error {
	if this.closed {
		return errors.WithStack(dsibitstream.ErrInvalidState)
	}

	if _, err := this.rw.Write(buf); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Len reports the total number of whole words available on the
// underlying stream, determined by seeking to the end and back. Seekers
// that cannot report a size (e.g. pipes wrapped in a no-op Seek) should
// not use FileWordBackend as a reader.
func (this *FileWordBackend[W]) Len() int {
	cur, err := this.rw.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0
	}

	end, err := this.rw.Seek(0, io.SeekEnd)
	if err != nil {
		return 0
	}

	if _, err := this.rw.Seek(cur, io.SeekStart); err != nil {
		return 0
	}

	return int(end) / wordSize[W]()
}

// Position returns the number of words read or written so far.
func (this *FileWordBackend[W]) Position() int {
	return this.position
}

// Close marks the backend unavailable for further use. It does not
// close the underlying stream, leaving stream lifetime to the caller
// that opened it.
func (this *FileWordBackend[W]) Close() error {
	this.closed = true
	return nil
}
