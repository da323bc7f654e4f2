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

// Package dsibitstream provides a layered library of prefix-free integer
// codes (unary, gamma, delta, zeta, omega, pi, minimal binary, Rice,
// exponential Golomb and VByte) on top of word-addressable byte backends.
//
// The implementations of the buffered bit reader/writer are available in
// the bitio sub-package, the codes themselves in the codes sub-package,
// and a small runtime dispatch layer plus statistics accumulator in the
// dispatch sub-package. The backend sub-package supplies the word-level
// storage abstractions that bitio is built on.
package dsibitstream
