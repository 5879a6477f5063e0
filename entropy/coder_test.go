// SPDX-License-Identifier: EPL-2.0

package entropy

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spectrumBytes serializes a synthetic granule sequence the way frames
// are fed to the coder: little-endian int16, mostly small values that
// decay with frequency.
func spectrumBytes(granules int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	out := make([]byte, 0, granules*DefaultSpan*SampleBytes)
	for range granules {
		for i := range DefaultSpan {
			limit := max(1, 12-i/30)
			v := int16(rng.IntN(2*limit+1) - limit)
			if i > 320 {
				v = 0
			}
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	}
	return out
}

func testModels(t *testing.T) map[string]func() Model {
	t.Helper()

	return map[string]func() Model{
		"naive": func() Model { return NewNaiveContext() },
		"region": func() Model {
			m, err := NewRegionContext(DefaultRegions, DefaultSpan)
			require.NoError(t, err)
			return m
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":    {},
		"one byte": {0x42},
		"zeros":    make([]byte, 1000),
		"ones":     bytes.Repeat([]byte{0xFF}, 1000),
		"text":     []byte("the quick brown fox jumps over the lazy dog"),
		"spectrum": spectrumBytes(4, 1),
		"random": func() []byte {
			b := make([]byte, 4096)
			rng := rand.New(rand.NewPCG(7, 11))
			for i := range b {
				b[i] = byte(rng.UintN(256))
			}
			return b
		}(),
	}

	for name, newModel := range testModels(t) {
		for in, data := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				packed := Encode(data, newModel())
				require.NotEmpty(t, packed)

				got := Decode(packed, newModel())
				assert.Equal(t, len(data), len(got))
				assert.True(t, bytes.Equal(data, got), "decoded bytes differ")
			})
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(2, 3)
	for name, newModel := range testModels(t) {
		a := Encode(data, newModel())
		b := Encode(data, newModel())
		assert.Equal(t, a, b, name)
	}
}

func TestEncode_Compresses(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(8, 5)
	for name, newModel := range testModels(t) {
		packed := Encode(data, newModel())
		assert.Less(t, len(packed), len(data)*3/4, name)
	}

	zeros := Encode(make([]byte, 10000), NewNaiveContext())
	assert.Less(t, len(zeros), 200)
}

func TestEncode_AppendsToDst(t *testing.T) {
	t.Parallel()

	prefix := []byte{1, 2, 3}
	e := NewEncoder(append([]byte(nil), prefix...), NewNaiveContext())
	n, err := e.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	out := e.Finish()
	require.Equal(t, prefix, out[:3])
	assert.Equal(t, []byte("abc"), Decode(out[3:], NewNaiveContext()))
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	// Arbitrary input must terminate, whatever it decodes to.
	rng := rand.New(rand.NewPCG(13, 17))
	for range 20 {
		b := make([]byte, rng.IntN(64))
		for i := range b {
			b[i] = byte(rng.UintN(256))
		}
		_ = Decode(b, NewNaiveContext())
	}
}

func TestDecode_Truncated(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(1, 9)
	packed := Encode(data, NewNaiveContext())

	got := Decode(packed[:len(packed)/2], NewNaiveContext())
	assert.Less(t, len(got), len(data))
}

func TestDecode_WrongModelDiffers(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(2, 21)
	packed := Encode(data, NewNaiveContext())

	m, err := NewRegionContext(DefaultRegions, DefaultSpan)
	require.NoError(t, err)
	assert.NotEqual(t, data, Decode(packed, m))
}

// fixedModel reports the same probability for every context.
type fixedModel uint32

func (m fixedModel) P(Context) uint32 { return uint32(m) }
func (fixedModel) Update(Context, int) {}

func TestDecodeN_WrongModelStops(t *testing.T) {
	t.Parallel()

	// A region coded granule read back with byte contexts only drives
	// some naive contexts to a probability of 0.
	data := spectrumBytes(1, 31)
	region := testModels(t)["region"]
	packed := Encode(data, region())

	got, err := DecodeN(packed, NewNaiveContext(), len(data))
	if err != nil {
		require.ErrorIs(t, err, ErrCorruptStream)
	}
	assert.LessOrEqual(t, len(got), len(data))
	assert.False(t, err == nil && bytes.Equal(got, data), "wrong model reproduced the input")

	// Without a cap the decoder still ends once the input is used up.
	assert.NotEqual(t, data, Decode(packed, NewNaiveContext()))
}

func TestDecodeN_Limit(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(1, 33)
	packed := Encode(data, NewNaiveContext())

	got, err := DecodeN(packed, NewNaiveContext(), len(data))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got))

	got, err = DecodeN(packed, NewNaiveContext(), len(data)-1)
	assert.True(t, errors.Is(err, ErrCorruptStream), "err = %v", err)
	assert.Len(t, got, len(data)-1)

	got, err = DecodeN(packed, NewNaiveContext(), -1)
	require.NoError(t, err)
	assert.Len(t, got, len(data))
}

func TestCoder_ZeroProbability(t *testing.T) {
	t.Parallel()

	data := []byte{0, 0, 0xFF, 0x80, 0, 1}
	packed := Encode(data, fixedModel(0))
	assert.Equal(t, data, Decode(packed, fixedModel(0)))

	// Every bit must narrow the interval, so garbage decoded against a
	// model stuck at 0 runs out of input instead of looping.
	garbage := bytes.Repeat([]byte{0xA5, 0x5A}, 32)
	got := Decode(garbage, fixedModel(0))
	assert.NotNil(t, got)
}
