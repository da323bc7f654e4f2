package codes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigna/dsi-bitstream-go/backend"
	"github.com/vigna/dsi-bitstream-go/bitio"
)

// roundTripBE writes with fn on a fresh big-endian writer, flushes, and
// reads back with rf, returning the decoded value and the bit position
// the writer reported before flush.
func roundTripBE(t *testing.T, write func(bitio.BitWriter) error, read func(bitio.BitReader) (uint64, error)) (uint64, uint64) {
	t.Helper()

	vec := backend.NewMemWordWriterVec[uint32]()
	w, err := bitio.NewBEBitWriter[uint32](vec, 32)
	require.NoError(t, err)
	require.NoError(t, write(w))
	length := w.Position()
	require.NoError(t, w.Flush())

	r, err := bitio.NewBEBitReader[uint32](backend.NewMemWordReader[uint32](vec.Words()), 32)
	require.NoError(t, err)
	got, err := read(r)
	require.NoError(t, err)

	return got, length
}

func TestGammaRoundTripAndLen(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 100, 1 << 20, math.MaxUint32, math.MaxUint64 - 1, math.MaxUint64}

	for _, v := range values {
		got, length := roundTripBE(t,
			func(w bitio.BitWriter) error { return WriteGamma(w, v) },
			func(r bitio.BitReader) (uint64, error) { return ReadGamma(r) })

		assert.Equal(t, v, got, "gamma round trip for %d", v)
		assert.Equal(t, LenGamma(v), length, "gamma length for %d", v)
	}
}

func TestDeltaRoundTripAndLen(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 100, 1 << 30, math.MaxUint64 - 1, math.MaxUint64}

	for _, v := range values {
		got, length := roundTripBE(t,
			func(w bitio.BitWriter) error { return WriteDelta(w, v) },
			func(r bitio.BitReader) (uint64, error) { return ReadDelta(r) })

		assert.Equal(t, v, got, "delta round trip for %d", v)
		assert.Equal(t, LenDelta(v), length, "delta length for %d", v)
	}
}

func TestZetaRoundTripAndLen(t *testing.T) {
	for _, k := range []uint{1, 2, 3, 5} {
		for _, v := range []uint64{0, 1, 2, 4, 100, 1 << 20} {
			got, length := roundTripBE(t,
				func(w bitio.BitWriter) error { return WriteZeta(w, v, k) },
				func(r bitio.BitReader) (uint64, error) { return ReadZeta(r, k) })

			assert.Equal(t, v, got, "zeta round trip for n=%d k=%d", v, k)

			wantLen, err := LenZeta(v, k)
			require.NoError(t, err)
			assert.Equal(t, wantLen, length, "zeta length for n=%d k=%d", v, k)
		}
	}
}

func TestZetaRejectsZeroK(t *testing.T) {
	_, err := LenZeta(1, 0)
	assert.Error(t, err)
}

func TestOmegaRoundTripAndLen(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5, 100, 1 << 20, 1 << 40}

	for _, v := range values {
		got, length := roundTripBE(t,
			func(w bitio.BitWriter) error { return WriteOmega(w, v) },
			func(r bitio.BitReader) (uint64, error) { return ReadOmega(r) })

		assert.Equal(t, v, got, "omega round trip for %d", v)
		assert.Equal(t, LenOmega(v), length, "omega length for %d", v)
	}
}

func TestPiRoundTripAndLen(t *testing.T) {
	for _, k := range []uint{0, 1, 2, 3} {
		for _, v := range []uint64{0, 1, 2, 3, 4, 100, 1 << 16} {
			got, length := roundTripBE(t,
				func(w bitio.BitWriter) error { return WritePi(w, v, k) },
				func(r bitio.BitReader) (uint64, error) { return ReadPi(r, k) })

			assert.Equal(t, v, got, "pi round trip for n=%d k=%d", v, k)
			assert.Equal(t, LenPi(v, k), length, "pi length for n=%d k=%d", v, k)
		}
	}
}

func TestMinimalBinaryRoundTrip(t *testing.T) {
	cases := []struct{ max uint64 }{{1}, {2}, {3}, {5}, {7}, {100}, {1 << 20}}

	for _, c := range cases {
		for v := uint64(0); v < c.max && v < 200; v++ {
			got, length := roundTripBE(t,
				func(w bitio.BitWriter) error { return WriteMinimalBinary(w, v, c.max) },
				func(r bitio.BitReader) (uint64, error) { return ReadMinimalBinary(r, c.max) })

			assert.Equal(t, v, got, "minimal binary round trip for value=%d max=%d", v, c.max)

			wantLen, err := LenMinimalBinary(v, c.max)
			require.NoError(t, err)
			assert.Equal(t, uint64(wantLen), length, "minimal binary length for value=%d max=%d", v, c.max)
		}
	}
}

func TestMinimalBinaryRejectsZeroMax(t *testing.T) {
	_, err := LenMinimalBinary(0, 0)
	assert.Error(t, err)
}

func TestRiceRoundTripAndLen(t *testing.T) {
	for _, k := range []uint{0, 1, 2, 8, 63} {
		for _, v := range []uint64{0, 1, 2, 3, 4, 5, 1000, math.MaxUint32} {
			got, length := roundTripBE(t,
				func(w bitio.BitWriter) error { return WriteRice(w, v, k) },
				func(r bitio.BitReader) (uint64, error) { return ReadRice(r, k) })

			assert.Equal(t, v, got, "rice round trip for n=%d k=%d", v, k)
			assert.Equal(t, LenRice(v, k), length, "rice length for n=%d k=%d", v, k)
		}
	}
}

func TestExpGolombRoundTripAndLen(t *testing.T) {
	for _, k := range []uint{0, 1, 2, 8, 40} {
		for _, v := range []uint64{0, 1, 2, 3, 4, 5, 1000} {
			got, length := roundTripBE(t,
				func(w bitio.BitWriter) error { return WriteExpGolomb(w, v, k) },
				func(r bitio.BitReader) (uint64, error) { return ReadExpGolomb(r, k) })

			assert.Equal(t, v, got, "exp-golomb round trip for n=%d k=%d", v, k)
			assert.Equal(t, LenExpGolomb(v, k), length, "exp-golomb length for n=%d k=%d", v, k)
		}
	}
}

func TestExpGolombOrderZeroEqualsGamma(t *testing.T) {
	for _, v := range []uint64{0, 1, 5, 100, 1 << 20} {
		assert.Equal(t, LenGamma(v), LenExpGolomb(v, 0))
	}
}

func TestVByteLERoundTripAndLen(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 30, math.MaxUint64}

	for _, v := range values {
		got, length := roundTripBE(t,
			func(w bitio.BitWriter) error { return WriteVByteLE(w, v) },
			func(r bitio.BitReader) (uint64, error) { return ReadVByteLE(r) })

		assert.Equal(t, v, got, "vbyte LE round trip for %d", v)
		assert.Equal(t, LenVByte(v), length, "vbyte LE length for %d", v)
	}
}

func TestVByteBERoundTripAndLen(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1 << 30, math.MaxUint64}

	for _, v := range values {
		got, length := roundTripBE(t,
			func(w bitio.BitWriter) error { return WriteVByteBE(w, v) },
			func(r bitio.BitReader) (uint64, error) { return ReadVByteBE(r) })

		assert.Equal(t, v, got, "vbyte BE round trip for %d", v)
		assert.Equal(t, LenVByte(v), length, "vbyte BE length for %d", v)
	}
}

// TestSeededScenario1Full covers the full LE, W=64 scenario:
// write_bits(0, 10); write_unary(0); write_gamma(1); write_delta(2);
// flush recovers (0, 0, 1, 2) using exactly 18 bits.
func TestSeededScenario1Full(t *testing.T) {
	vec := backend.NewMemWordWriterVec[uint64]()
	w, err := bitio.NewLEBitWriter[uint64](vec, 64)
	require.NoError(t, err)

	require.NoError(t, w.WriteBits(0, 10))
	require.NoError(t, w.WriteUnary(0))
	require.NoError(t, WriteGamma(w, 1))
	require.NoError(t, WriteDelta(w, 2))

	assert.Equal(t, uint64(18), w.Position())
	require.NoError(t, w.Flush())

	r, err := bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), 64)
	require.NoError(t, err)

	bitsField, err := r.ReadBits(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bitsField)

	u, err := r.ReadUnary()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), u)

	g, err := ReadGamma(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g)

	d, err := ReadDelta(r)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d)
}

// TestSeededScenario2 covers BE, W=32: write_zeta(4, k=3) produces a
// 4-bit code and reads back 4.
func TestSeededScenario2(t *testing.T) {
	got, length := roundTripBE(t,
		func(w bitio.BitWriter) error { return WriteZeta(w, 4, 3) },
		func(r bitio.BitReader) (uint64, error) { return ReadZeta(r, 3) })

	assert.Equal(t, uint64(4), got)
	assert.Equal(t, uint64(4), length)
}

// TestSeededScenario3 covers write_unary(1_000_000) round-tripping
// through the codes-level API.
func TestSeededScenario3(t *testing.T) {
	got, length := roundTripBE(t,
		func(w bitio.BitWriter) error { return WriteUnary(w, 1000000) },
		func(r bitio.BitReader) (uint64, error) { return ReadUnary(r) })

	assert.Equal(t, uint64(1000000), got)
	assert.Equal(t, uint64(1000001), length)
}

// TestSeededScenario4 encodes [0..5] with Rice(k=2) in LE, W=64 and
// checks the aggregate length matches the sum of the per-value formula
// and that the sequence decodes back exactly.
func TestSeededScenario4(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 4, 5}
	const k = 2

	vec := backend.NewMemWordWriterVec[uint64]()
	w, err := bitio.NewLEBitWriter[uint64](vec, 64)
	require.NoError(t, err)

	var wantTotal uint64
	for _, v := range values {
		require.NoError(t, WriteRice(w, v, k))
		wantTotal += LenRice(v, k)
	}
	assert.Equal(t, wantTotal, w.Position())
	require.NoError(t, w.Flush())

	r, err := bitio.NewLEBitReader[uint64](backend.NewMemWordReader[uint64](vec.Words()), 64)
	require.NoError(t, err)

	for _, v := range values {
		got, err := ReadRice(r, k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

// TestSeededScenario5 sums LenGamma over [0..9], matching total_bits=48
// over count=10 values.
func TestSeededScenario5(t *testing.T) {
	var total uint64
	for i := uint64(0); i < 10; i++ {
		total += LenGamma(i)
	}
	assert.Equal(t, uint64(48), total)
}
