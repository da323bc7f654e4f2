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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
	"github.com/vigna/dsi-bitstream-go/backend"
	"github.com/vigna/dsi-bitstream-go/bitio"
	"github.com/vigna/dsi-bitstream-go/dispatch"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func parseKind(name string) (dispatch.Kind, error) {
	switch strings.ToLower(name) {
	case "unary":
		return dispatch.Unary, nil
	case "gamma":
		return dispatch.Gamma, nil
	case "delta":
		return dispatch.Delta, nil
	case "zeta":
		return dispatch.Zeta, nil
	case "omega":
		return dispatch.Omega, nil
	case "pi":
		return dispatch.Pi, nil
	case "minimal-binary", "minimalbinary":
		return dispatch.MinimalBinary, nil
	case "rice":
		return dispatch.Rice, nil
	case "exp-golomb", "expgolomb":
		return dispatch.ExpGolomb, nil
	case "vbyte-le", "vbytele":
		return dispatch.VByteLE, nil
	case "vbyte-be", "vbytebe":
		return dispatch.VByteBE, nil
	default:
		return 0, fmt.Errorf("unknown code %q", name)
	}
}

func parseValues(csv string) ([]uint64, error) {
	if csv == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	values := make([]uint64, 0, len(parts))

	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		values = append(values, v)
	}

	return values, nil
}

var roundtripCmd = cli.Command{
	Name:      "roundtrip",
	Aliases:   []string{"rt"},
	Usage:     "Encodes a list of values with a code, then decodes and verifies them",
	ArgsUsage: "<code>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "values, n",
			Usage: "comma-separated list of unsigned integers to encode",
			Value: "0,1,2,3,4,5,100,1000000",
		},
		cli.Uint64Flag{
			Name:  "param, k",
			Usage: "parameter for zeta/pi/rice/exp-golomb (shrink or Rice order) or max for minimal-binary",
		},
		cli.BoolFlag{
			Name:  "big-endian, be",
			Usage: "use big-endian bit order (default little-endian)",
		},
		cli.IntFlag{
			Name:  "word-bits, w",
			Usage: "backend word width in bits (16, 32 or 64)",
			Value: 64,
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "show debug logging",
		},
	},
	Action: func(ctx *cli.Context) error {
		level := slog.LevelInfo
		if ctx.Bool("debug") {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "roundtrip")
			return cli.NewExitError("missing <code> argument", 1)
		}

		kind, err := parseKind(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		values, err := parseValues(ctx.String("values"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		code := dispatch.NewParamCode(kind, ctx.Uint64("param"))
		wordBits := uint(ctx.Int("word-bits"))

		vec := backend.NewMemWordWriterVec[uint64]()
		var w bitio.BitWriter
		if ctx.Bool("big-endian") {
			w, err = bitio.NewBEBitWriter[uint64](vec, wordBits)
		} else {
			w, err = bitio.NewLEBitWriter[uint64](vec, wordBits)
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		stats := dispatch.NewCodeStats()
		for _, v := range values {
			if err := code.Write(w, v); err != nil {
				return cli.NewExitError(err, 1)
			}
			if err := stats.Update(code, v); err != nil {
				return cli.NewExitError(err, 1)
			}
		}
		if err := w.Flush(); err != nil {
			return cli.NewExitError(err, 1)
		}

		count := stats.Get(kind)
		logger.Debug("encoded", "code", kind.String(), "count", count.Count, "total_bits", count.TotalBits)

		var r bitio.BitReader
		if ctx.Bool("big-endian") {
			r, err = bitio.NewBEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), wordBits)
		} else {
			r, err = bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), wordBits)
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		for i, want := range values {
			got, err := code.Read(r)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if got != want {
				return cli.NewExitError(fmt.Errorf("value %d: wrote %d, read back %d", i, want, got), 1)
			}
		}

		count = stats.Get(kind)
		fmt.Printf("%s: %d values, %d bits (avg %.2f bits/value), round trip OK\n",
			kind.String(), count.Count, count.TotalBits, count.AverageBits())
		return nil
	},
}

var dumpCmd = cli.Command{
	Name:      "dump",
	Aliases:   []string{"d"},
	Usage:     "Prints the length in bits that a code would spend on each value, without encoding",
	ArgsUsage: "<code>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "values, n",
			Usage: "comma-separated list of unsigned integers",
			Value: "0,1,2,3,4,5,100,1000000",
		},
		cli.Uint64Flag{
			Name:  "param, k",
			Usage: "parameter for zeta/pi/rice/exp-golomb, or max for minimal-binary",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "dump")
			return cli.NewExitError("missing <code> argument", 1)
		}

		kind, err := parseKind(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		values, err := parseValues(ctx.String("values"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		code := dispatch.NewParamCode(kind, ctx.Uint64("param"))

		stats := dispatch.NewCodeStats()
		for _, v := range values {
			l, err := code.Len(v)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			fmt.Printf("%d\t%d bits\n", v, l)
			if err := stats.Update(code, v); err != nil {
				return cli.NewExitError(err, 1)
			}
		}

		count := stats.Get(kind)
		fmt.Printf("total: %d bits over %d values (avg %.2f)\n", count.TotalBits, count.Count, count.AverageBits())
		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "bitbench"
	app.Version = version
	app.Usage = "Exercises and measures the prefix-free integer codes"
	app.HelpName = "bitbench"

	app.Commands = []cli.Command{
		roundtripCmd,
		dumpCmd,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(dsibitstream.ErrorCode(err))
	}
}
