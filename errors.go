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

package dsibitstream

import "errors"

// Process exit codes for the sentinel errors below, for callers (e.g.
// cmd/bitbench) that need to report a failure reason through os.Exit
// rather than stderr text alone.
const (
	ErrCodeUnexpectedEOF   = 1
	ErrCodeBackendFull     = 2
	ErrCodeInvalidArgument = 3
	ErrCodeDecodeOverflow  = 4
	ErrCodeInvalidState    = 5
	ErrCodeUnknown         = 127
)

// Sentinel errors returned by the bitio, codes and dispatch packages.
// Every reader/writer operation reports failures through one of these
// via github.com/pkg/errors.Wrap, never through a panic: fuzz harnesses
// built on top of this module must be able to feed arbitrary or corrupt
// input without ever crashing the process.
var (
	// ErrUnexpectedEOF is returned when a backend is exhausted before a
	// read operation could be satisfied.
	ErrUnexpectedEOF = errors.New("dsibitstream: unexpected end of stream")

	// ErrBackendFull is returned when a write would exceed the capacity
	// of a fixed-size backend.
	ErrBackendFull = errors.New("dsibitstream: backend is full")

	// ErrInvalidArgument is returned when a code parameter falls outside
	// its documented domain (e.g. a Rice parameter above 63, a zeta
	// parameter of 0, or a minimal binary code with max == 0).
	ErrInvalidArgument = errors.New("dsibitstream: invalid argument")

	// ErrDecodeOverflow is returned when a decoded value would not fit
	// in a uint64, or a partial decode state grows beyond bound.
	ErrDecodeOverflow = errors.New("dsibitstream: decoded value overflows uint64")

	// ErrInvalidState is returned when an operation is attempted on a
	// closed reader or writer.
	ErrInvalidState = errors.New("dsibitstream: invalid state")
)

// ErrorCode maps err to one of the ErrCode* exit codes above by
// unwrapping it (errors.Is sees through github.com/pkg/errors' Wrap)
// against the sentinel errors declared in this file. It returns
// ErrCodeUnknown for nil or any error not rooted in one of them.
func ErrorCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUnexpectedEOF):
		return ErrCodeUnexpectedEOF
	case errors.Is(err, ErrBackendFull):
		return ErrCodeBackendFull
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrDecodeOverflow):
		return ErrCodeDecodeOverflow
	case errors.Is(err, ErrInvalidState):
		return ErrCodeInvalidState
	default:
		return ErrCodeUnknown
	}
}
