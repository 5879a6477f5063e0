// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/threepm/internal/mp3test"
)

func testFrame(src mp3test.Frame, payload []byte) Frame {
	raw := src.Bytes()
	hs := 4
	if src.CRC {
		hs = 6
	}
	return Frame{
		Header:   raw[:hs],
		SideInfo: raw[hs:src.Prefix()],
		Payload:  payload,
	}
}

func TestAppendFrame_Layout(t *testing.T) {
	t.Parallel()

	f := testFrame(mp3test.Frame{Mono: true}, []byte{0xAA, 0xBB, 0xCC})
	out, err := AppendFrame(nil, f)
	require.NoError(t, err)

	require.Len(t, out, 4+17+2+3)
	assert.Equal(t, f.Size(), len(out))
	assert.Equal(t, f.Header, out[:4])
	assert.Equal(t, f.SideInfo, out[4:21])
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(out[21:]))
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, out[23:])
}

func TestAppendFrame_TooLarge(t *testing.T) {
	t.Parallel()

	f := testFrame(mp3test.Frame{}, make([]byte, MaxPayload+1))
	_, err := AppendFrame(nil, f)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	f.Payload = f.Payload[:MaxPayload]
	_, err = AppendFrame(nil, f)
	assert.NoError(t, err)
}

func TestWriterReader_RoundTrip(t *testing.T) {
	t.Parallel()

	frames := []Frame{
		testFrame(mp3test.Frame{}, []byte("first")),
		testFrame(mp3test.Frame{Mono: true, CRC: true}, nil),
		testFrame(mp3test.Frame{CRC: true, Padding: true}, bytes.Repeat([]byte{7}, 1000)),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, f := range frames {
		require.NoError(t, w.WriteFrame(f))
	}
	assert.Equal(t, 3, w.Frames())
	assert.Equal(t, int64(buf.Len()), w.BytesWritten())

	r := NewReader(buf.Bytes())
	for i, want := range frames {
		got, h, err := r.Next()
		require.NoError(t, err, "frame %d", i)
		assert.Equal(t, want.Header, got.Header, "frame %d", i)
		assert.Equal(t, want.SideInfo, got.SideInfo, "frame %d", i)
		assert.Equal(t, len(want.Payload), len(got.Payload), "frame %d", i)
		assert.True(t, bytes.Equal(want.Payload, got.Payload), "frame %d", i)
		assert.Equal(t, len(want.Header), h.HeaderSize(), "frame %d", i)
	}

	_, _, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, buf.Len(), r.Offset())
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	good, err := AppendFrame(nil, testFrame(mp3test.Frame{}, []byte("payload")))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("not a frame at all"), ErrInvalidHeader},
		{"cut in side info", good[:20], ErrShortFrame},
		{"cut in length", good[:37], ErrShortFrame},
		{"cut in payload", good[:len(good)-1], ErrShortFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewReader(tt.data).Next()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriter_WriteError(t *testing.T) {
	t.Parallel()

	w := NewWriter(failWriter{})
	err := w.WriteFrame(testFrame(mp3test.Frame{}, nil))
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 0, w.Frames())
}
