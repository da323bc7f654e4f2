package codes

import (
	"errors"
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	dsibitstream "github.com/vigna/dsi-bitstream-go"
	"github.com/vigna/dsi-bitstream-go/backend"
	"github.com/vigna/dsi-bitstream-go/bitio"
)

// TestFuzzWriteThenReadBack exercises the write-random-then-read-back
// property for every code family over a large population of randomly
// generated values, in place of the seeded fixed-value tables above.
func TestFuzzWriteThenReadBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping fuzz property test in -short mode")
	}

	f := fuzz.New().NilChance(0)

	const iterations = 2000

	type roundTripper struct {
		name    string
		bound   func(uint64) uint64 // reduces a raw fuzzed value to the domain the code actually accepts
		write   func(bitio.BitWriter, uint64) error
		read    func(bitio.BitReader) (uint64, error)
	}

	identity := func(n uint64) uint64 { return n }

	roundTrippers := []roundTripper{
		{"unary", func(n uint64) uint64 { return n % (1 << 20) }, WriteUnary, ReadUnary},
		{"gamma", identity, WriteGamma, ReadGamma},
		{"delta", identity, WriteDelta, ReadDelta},
		{"zeta-k3", identity, func(w bitio.BitWriter, n uint64) error { return WriteZeta(w, n, 3) }, func(r bitio.BitReader) (uint64, error) { return ReadZeta(r, 3) }},
		{"omega", func(n uint64) uint64 { return n % (1 << 50) }, WriteOmega, ReadOmega},
		{"pi-k2", identity, func(w bitio.BitWriter, n uint64) error { return WritePi(w, n, 2) }, func(r bitio.BitReader) (uint64, error) { return ReadPi(r, 2) }},
		{"rice-k5", func(n uint64) uint64 { return n % (1 << 25) }, func(w bitio.BitWriter, n uint64) error { return WriteRice(w, n, 5) }, func(r bitio.BitReader) (uint64, error) { return ReadRice(r, 5) }},
		{"expgolomb-k3", identity, func(w bitio.BitWriter, n uint64) error { return WriteExpGolomb(w, n, 3) }, func(r bitio.BitReader) (uint64, error) { return ReadExpGolomb(r, 3) }},
		{"vbyte-le", identity, WriteVByteLE, ReadVByteLE},
		{"vbyte-be", identity, WriteVByteBE, ReadVByteBE},
	}

	for _, rt := range roundTrippers {
		for i := 0; i < iterations; i++ {
			var raw uint64
			f.Fuzz(&raw)
			n := rt.bound(raw)

			vec := backend.NewMemWordWriterVec[uint64]()
			w, err := bitio.NewLEBitWriter[uint64](vec, 64)
			require.NoError(t, err)
			require.NoError(t, rt.write(w, n), "%s write(%d)", rt.name, n)
			require.NoError(t, w.Flush())

			r, err := bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), 64)
			require.NoError(t, err)
			got, err := rt.read(r)
			require.NoError(t, err, "%s read after write(%d)", rt.name, n)
			require.Equal(t, n, got, "%s round trip for %d", rt.name, n)
		}
	}
}

// TestDecodeOverflowOnPathologicalStreams constructs, for the gamma,
// delta, omega, zeta, pi and both VByte decoders, a bit stream deliberately shaped
// to trip that specific guard rather than relying on a short EOF. This
// is the failure mode TestFuzzGarbageBytesNeverCrash almost never hits:
// 64-bit garbage words essentially never contain a zero run long enough
// to drive gamma/delta/omega/zeta/pi past their overflow thresholds.
// Every case here must fail with ErrDecodeOverflow specifically, not
// ErrInvalidArgument or any other sentinel.
func TestDecodeOverflowOnPathologicalStreams(t *testing.T) {
	build := func(write func(bitio.BitWriter) error) bitio.BitReader {
		vec := backend.NewMemWordWriterVec[uint64]()
		w, err := bitio.NewLEBitWriter[uint64](vec, 64)
		require.NoError(t, err)
		require.NoError(t, write(w))
		require.NoError(t, w.Flush())

		r, err := bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), 64)
		require.NoError(t, err)
		return r
	}

	cases := []struct {
		name  string
		write func(bitio.BitWriter) error
		read  func(bitio.BitReader) (uint64, error)
	}{
		{
			// A raw unary run of 100 zero bits: ReadGamma's l (= the
			// unary count itself) comes back well above 64.
			name:  "gamma exponent overflow",
			write: func(w bitio.BitWriter) error { return WriteUnary(w, 100) },
			read:  ReadGamma,
		},
		{
			// A gamma code for 1000 used as delta's l field: ReadGamma
			// decodes it cleanly, but delta's own l > 64 check then
			// fires on the decoded exponent.
			name:  "delta exponent overflow",
			write: func(w bitio.BitWriter) error { return WriteGamma(w, 1000) },
			read:  ReadDelta,
		},
		{
			// value doubles far past 64 within the first few omega
			// groups when every bit read back is 1.
			name:  "omega group width overflow",
			write: func(w bitio.BitWriter) error { return w.WriteBits(^uint64(0), 64) },
			read:  ReadOmega,
		},
		{
			// A raw unary h of 100 with k=3 makes h*k = 300, far above 63.
			name:  "zeta exponent overflow",
			write: func(w bitio.BitWriter) error { return WriteUnary(w, 100) },
			read:  func(r bitio.BitReader) (uint64, error) { return ReadZeta(r, 3) },
		},
		{
			// l-1 = 1000 via unary, v = 0: h = l*4 is far above 64, so
			// rBits = h-1 trips the > 63 guard.
			name: "pi exponent overflow",
			write: func(w bitio.BitWriter) error {
				if err := w.WriteUnary(1000); err != nil {
					return err
				}
				return w.WriteBits(0, 2)
			},
			read: func(r bitio.BitReader) (uint64, error) { return ReadPi(r, 2) },
		},
		{
			// 11 VByte groups, every one flagged as continued: one more
			// than maxVByteGroups tolerates.
			name: "vbyte (LE) group overflow",
			write: func(w bitio.BitWriter) error {
				for i := 0; i < maxVByteGroups+1; i++ {
					if err := w.WriteBits(0xff, 8); err != nil {
						return err
					}
				}
				return nil
			},
			read: ReadVByteLE,
		},
		{
			name: "vbyte (BE) group overflow",
			write: func(w bitio.BitWriter) error {
				for i := 0; i < maxVByteGroups+1; i++ {
					if err := w.WriteBits(0xff, 8); err != nil {
						return err
					}
				}
				return nil
			},
			read: ReadVByteBE,
		},
	}

	for _, c := range cases {
		r := build(c.write)
		_, err := c.read(r)
		require.Error(t, err, c.name)
		require.True(t, errors.Is(err, dsibitstream.ErrDecodeOverflow), "%s: got %v, want ErrDecodeOverflow", c.name, err)
		require.False(t, errors.Is(err, dsibitstream.ErrInvalidArgument), "%s: must not also present as ErrInvalidArgument", c.name)
	}
}

// decodeAttempt runs fn and converts a panic into a plain error so
// callers can assert on it like any other failure, instead of the fuzz
// run crashing the whole test binary.
func decodeAttempt(fn func() (uint64, error)) (result uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn()
}

// TestFuzzGarbageBytesNeverCrash feeds arbitrary, unstructured words
// directly into each decoder named by the no-crash contract -- gamma,
// delta, zeta, omega, pi and both VByte orders -- without ever having
// written a valid codeword first. Every call must either decode
// something, or fail with an error wrapping ErrUnexpectedEOF or
// ErrDecodeOverflow; a panic, hang or any other error is a failure.
func TestFuzzGarbageBytesNeverCrash(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping fuzz property test in -short mode")
	}

	f := fuzz.New().NilChance(0)

	type garbageDecoder struct {
		name string
		read func(bitio.BitReader) (uint64, error)
	}

	decoders := []garbageDecoder{
		{"gamma", ReadGamma},
		{"delta", ReadDelta},
		{"zeta-k3", func(r bitio.BitReader) (uint64, error) { return ReadZeta(r, 3) }},
		{"omega", ReadOmega},
		{"pi-k2", func(r bitio.BitReader) (uint64, error) { return ReadPi(r, 2) }},
		{"vbyte-le", ReadVByteLE},
		{"vbyte-be", ReadVByteBE},
	}

	const iterations = 500

	// Small word counts are the interesting case: they force decoders
	// that read past a short garbage buffer to hit ErrUnexpectedEOF
	// rather than always finding a plausible terminator.
	wordCounts := []int{0, 1, 2, 3, 8}

	for _, dec := range decoders {
		for _, wc := range wordCounts {
			for i := 0; i < iterations; i++ {
				words := make([]uint64, wc)
				for j := range words {
					f.Fuzz(&words[j])
				}

				le, err := bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](words), 64)
				require.NoError(t, err)
				be, err := bitio.NewBEBitReader[uint64](backend.NewMemWordReader[uint64](words), 64)
				require.NoError(t, err)

				for _, r := range []bitio.BitReader{le, be} {
					_, err := decodeAttempt(func() (uint64, error) { return dec.read(r) })
					if err == nil {
						continue
					}

					ok := errors.Is(err, dsibitstream.ErrUnexpectedEOF) || errors.Is(err, dsibitstream.ErrDecodeOverflow)
					require.True(t, ok, "%s: unexpected error on %d garbage words: %v", dec.name, wc, err)
				}
			}
		}
	}
}
