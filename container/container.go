// SPDX-License-Identifier: EPL-2.0

// Package container reads and writes 3PM streams.
//
// A 3PM stream is a plain sequence of frames with no file header. Each
// frame keeps the original MPEG header and side information bytes and
// replaces the Huffman coded main data with an entropy coded payload:
//
//	header     4 bytes, or 6 with CRC
//	side info  9, 17 or 32 bytes
//	length     2 bytes, little-endian
//	payload    length bytes
package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/threepm/formats/mp3"
)

// lengthBytes is the size of the payload length field.
const lengthBytes = 2

// MaxPayload is the largest payload a frame can carry.
const MaxPayload = 1<<16 - 1

// Frame is one 3PM frame.
type Frame struct {
	Header   []byte // original header, including the CRC if present
	SideInfo []byte // original side information
	Payload  []byte
}

// Size is the encoded length of f.
func (f Frame) Size() int {
	return len(f.Header) + len(f.SideInfo) + lengthBytes + len(f.Payload)
}

// AppendFrame appends the encoding of f to dst.
func AppendFrame(dst []byte, f Frame) ([]byte, error) {
	if len(f.Payload) > MaxPayload {
		return dst, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(f.Payload))
	}

	dst = append(dst, f.Header...)
	dst = append(dst, f.SideInfo...)
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(f.Payload)))
	return append(dst, f.Payload...), nil
}

// Writer writes 3PM frames to an underlying writer.
type Writer struct {
	w      io.Writer
	buf    []byte
	frames int
	bytes  int64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame encodes f and writes it in a single call to the underlying
// writer.
func (w *Writer) WriteFrame(f Frame) error {
	var err error
	w.buf, err = AppendFrame(w.buf[:0], f)
	if err != nil {
		return err
	}

	n, err := w.w.Write(w.buf)
	w.bytes += int64(n)
	if err != nil {
		return fmt.Errorf("3pm: write frame %d: %w", w.frames, err)
	}
	w.frames++
	return nil
}

// Frames is the number of frames written.
func (w *Writer) Frames() int { return w.frames }

// BytesWritten is the number of bytes written.
func (w *Writer) BytesWritten() int64 { return w.bytes }

// Reader splits an in-memory 3PM stream into frames. The returned frames
// share memory with the input.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset is the byte position of the next frame.
func (r *Reader) Offset() int { return r.pos }

// Next returns the next frame and its parsed header, or io.EOF at the
// end of the stream.
func (r *Reader) Next() (Frame, mp3.Header, error) {
	rest := r.data[r.pos:]
	if len(rest) == 0 {
		return Frame{}, mp3.Header{}, io.EOF
	}

	h, err := mp3.ParseHeader(rest)
	if err != nil {
		return Frame{}, mp3.Header{}, fmt.Errorf("%w at offset %d: %w", ErrInvalidHeader, r.pos, err)
	}

	prefix := h.PrefixSize()
	if len(rest) < prefix+lengthBytes {
		return Frame{}, h, fmt.Errorf("%w at offset %d: need %d bytes, have %d", ErrShortFrame, r.pos, prefix+lengthBytes, len(rest))
	}

	n := int(binary.LittleEndian.Uint16(rest[prefix:]))
	end := prefix + lengthBytes + n
	if len(rest) < end {
		return Frame{}, h, fmt.Errorf("%w at offset %d: payload needs %d bytes, have %d", ErrShortFrame, r.pos, n, len(rest)-prefix-lengthBytes)
	}

	f := Frame{
		Header:   rest[:h.HeaderSize()],
		SideInfo: rest[h.HeaderSize():prefix],
		Payload:  rest[prefix+lengthBytes : end],
	}
	r.pos += end
	return f, h, nil
}
