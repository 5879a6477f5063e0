// SPDX-License-Identifier: EPL-2.0

package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol_RoundTrip(t *testing.T) {
	t.Parallel()

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	inputs := map[string][]byte{
		"empty":    {},
		"one byte": {0},
		"all":      all,
		"zeros":    make([]byte, 50000),
		"spectrum": spectrumBytes(4, 2),
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			packed := SymbolEncode(data)
			got, err := SymbolDecode(packed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(data, got), "decoded bytes differ")
		})
	}
}

func TestSymbol_Compresses(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(8, 4)
	assert.Less(t, len(SymbolEncode(data)), len(data)*3/4)
}

func TestSymbolModel_Rescale(t *testing.T) {
	t.Parallel()

	m := newSymbolModel()
	for range maxFreq {
		m.update(m.charToIndex['a'])
	}
	assert.LessOrEqual(t, m.cum[0], maxFreq)

	// The most frequent symbol moves to the front.
	assert.Equal(t, 1, m.charToIndex['a'])
	assert.Equal(t, int('a'), m.indexToChar[1])

	for i := 1; i < symbolCount; i++ {
		assert.Equal(t, m.cum[i-1]-m.cum[i], m.freq[i], "symbol %d", i)
	}
}

func TestSymbolDecode_Truncated(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(1, 8)
	packed := SymbolEncode(data)

	got, err := SymbolDecode(packed[:len(packed)/3])
	if err != nil {
		assert.ErrorIs(t, err, ErrCorruptStream)
		return
	}
	assert.NotEqual(t, data, got)
}

func TestCodecs(t *testing.T) {
	t.Parallel()

	region, err := RegionCodec(DefaultRegions, DefaultSpan)
	require.NoError(t, err)

	_, err = RegionCodec(0, DefaultSpan)
	require.ErrorIs(t, err, ErrInvalidRegions)

	data := spectrumBytes(2, 6)
	for name, c := range map[string]Codec{
		"naive":  NaiveCodec(),
		"region": region,
		"symbol": SymbolCodec{},
	} {
		got, err := c.Decode(c.Encode(data), len(data))
		require.NoError(t, err, name)
		assert.True(t, bytes.Equal(data, got), name)
	}
}

func TestSymbolDecodeN_Limit(t *testing.T) {
	t.Parallel()

	data := spectrumBytes(1, 41)
	packed := SymbolEncode(data)

	got, err := SymbolDecodeN(packed, len(data))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got))

	got, err = SymbolDecodeN(packed, 10)
	require.ErrorIs(t, err, ErrCorruptStream)
	assert.Len(t, got, 10)
}
