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

// Package dispatch provides a closed, tagged Code selector that reads,
// writes and measures any of the codes package's prefix-free codes
// without a caller having to know which one is in play, plus a
// commutative CodeStats accumulator. Dispatch follows the closed
// switch-on-type-tag style of an entropy codec factory, generalized
// from a codec-instantiation factory to a per-call code selector.
package dispatch

import (
	"fmt"

	"github.com/pkg/errors"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
	"github.com/vigna/dsi-bitstream-go/bitio"
	"github.com/vigna/dsi-bitstream-go/codes"
)

// Kind identifies one member of the closed set of prefix-free codes
// this package can dispatch to.
type Kind uint8

const (
	Unary Kind = iota
	Gamma
	Delta
	Zeta
	Omega
	Pi
	MinimalBinary
	Rice
	ExpGolomb
	VByteLE
	VByteBE
)

func (k Kind) String() string {
	switch k {
	case Unary:
		return "unary"
	case Gamma:
		return "gamma"
	case Delta:
		return "delta"
	case Zeta:
		return "zeta"
	case Omega:
		return "omega"
	case Pi:
		return "pi"
	case MinimalBinary:
		return "minimal-binary"
	case Rice:
		return "rice"
	case ExpGolomb:
		return "exp-golomb"
	case VByteLE:
		return "vbyte-le"
	case VByteBE:
		return "vbyte-be"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Code is a closed tagged variant selecting one prefix-free code and,
// where the code family is parameterized, its parameter (k for zeta,
// pi and Rice/ExpGolomb; max for minimal binary). It dispatches via a
// plain switch so each arm can be inlined, never through an interface
// method table.
type Code struct {
	Kind  Kind
	Param uint64
}

// NewCode builds a Code selector for a non-parameterized family.
func NewCode(kind Kind) Code {
	return Code{Kind: kind}
}

// NewParamCode builds a Code selector for a family parameterized by k
// or max, depending on Kind.
func NewParamCode(kind Kind, param uint64) Code {
	return Code{Kind: kind, Param: param}
}

// Write encodes n using the code this selector names.
func (c Code) Write(w bitio.BitWriter, n uint64) error {
	switch c.Kind {
	case Unary:
		return codes.WriteUnary(w, n)
	case Gamma:
		return codes.WriteGamma(w, n)
	case Delta:
		return codes.WriteDelta(w, n)
	case Zeta:
		return codes.WriteZeta(w, n, uint(c.Param))
	case Omega:
		return codes.WriteOmega(w, n)
	case Pi:
		return codes.WritePi(w, n, uint(c.Param))
	case MinimalBinary:
		return codes.WriteMinimalBinary(w, n, c.Param)
	case Rice:
		return codes.WriteRice(w, n, uint(c.Param))
	case ExpGolomb:
		return codes.WriteExpGolomb(w, n, uint(c.Param))
	case VByteLE:
		return codes.WriteVByteLE(w, n)
	case VByteBE:
		return codes.WriteVByteBE(w, n)
	default:
		return errors.Wrapf(dsibitstream.ErrInvalidArgument, "dispatch: unknown code kind %v", c.Kind)
	}
}

// Read decodes a value previously written with Write using an
// identically-configured Code selector.
func (c Code) Read(r bitio.BitReader) (uint64, error) {
	switch c.Kind {
	case Unary:
		return codes.ReadUnary(r)
	case Gamma:
		return codes.ReadGamma(r)
	case Delta:
		return codes.ReadDelta(r)
	case Zeta:
		return codes.ReadZeta(r, uint(c.Param))
	case Omega:
		return codes.ReadOmega(r)
	case Pi:
		return codes.ReadPi(r, uint(c.Param))
	case MinimalBinary:
		return codes.ReadMinimalBinary(r, c.Param)
	case Rice:
		return codes.ReadRice(r, uint(c.Param))
	case ExpGolomb:
		return codes.ReadExpGolomb(r, uint(c.Param))
	case VByteLE:
		return codes.ReadVByteLE(r)
	case VByteBE:
		return codes.ReadVByteBE(r)
	default:
		return 0, errors.Wrapf(dsibitstream.ErrInvalidArgument, "dispatch: unknown code kind %v", c.Kind)
	}
}

// Len returns the length in bits that Write would spend on n, without
// writing anything.
func (c Code) Len(n uint64) (uint64, error) {
	switch c.Kind {
	case Unary:
		return codes.LenUnary(n), nil
	case Gamma:
		return codes.LenGamma(n), nil
	case Delta:
		return codes.LenDelta(n), nil
	case Zeta:
		return codes.LenZeta(n, uint(c.Param))
	case Omega:
		return codes.LenOmega(n), nil
	case Pi:
		return codes.LenPi(n, uint(c.Param)), nil
	case MinimalBinary:
		l, err := codes.LenMinimalBinary(n, c.Param)
		return uint64(l), err
	case Rice:
		return codes.LenRice(n, uint(c.Param)), nil
	case ExpGolomb:
		return codes.LenExpGolomb(n, uint(c.Param)), nil
	case VByteLE, VByteBE:
		return codes.LenVByte(n), nil
	default:
		return 0, errors.Wrapf(dsibitstream.ErrInvalidArgument, "dispatch: unknown code kind %v", c.Kind)
	}
}
