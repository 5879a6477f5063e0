// SPDX-License-Identifier: EPL-2.0

// Package bits provides MSB-first bit access over byte buffers.
//
// Every MPEG Layer III field, from the frame header down to individual
// Huffman codewords, is expressed as a run of bits addressed by an absolute
// bit offset. Read is the stateless primitive; Reader wraps it with a cursor
// that only moves forward unless explicitly repositioned with Seek.
//
// Reads that run past the end of the buffer see zero bits instead of
// failing. Callers that care about truncation compare Pos against Len.
package bits

// MaxRead is the widest field that can be extracted in one call.
const MaxRead = 32

// Read returns the n bits of buf starting at bit offset off, most
// significant bit first. Bits beyond the end of buf read as zero.
// n is clamped to MaxRead.
func Read(buf []byte, off uint, n uint) uint32 {
	if n == 0 {
		return 0
	}
	if n > MaxRead {
		n = MaxRead
	}

	first := off >> 3
	skip := off & 7

	// Up to 5 bytes cover any 32 bit window that is not byte aligned.
	var acc uint64
	for i := range uint(5) {
		acc <<= 8
		if idx := first + i; idx < uint(len(buf)) {
			acc |= uint64(buf[idx])
		}
	}

	acc <<= 24 + skip // left align the window within 64 bits
	return uint32(acc >> (64 - n))
}

// Reader is a forward cursor over a byte buffer.
type Reader struct {
	buf []byte
	pos uint
}

// NewReader returns a Reader positioned at bit 0 of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// NewReaderAt returns a Reader positioned at bit offset pos.
func NewReaderAt(buf []byte, pos uint) *Reader {
	return &Reader{buf: buf, pos: pos}
}

// Read consumes n bits and returns them as an unsigned integer.
func (r *Reader) Read(n uint) uint32 {
	v := Read(r.buf, r.pos, n)
	r.pos += n
	return v
}

// ReadBit consumes a single bit.
func (r *Reader) ReadBit() uint32 {
	return r.Read(1)
}

// ReadFlag consumes a single bit and reports whether it was set.
func (r *Reader) ReadFlag() bool {
	return r.Read(1) == 1
}

// Peek returns the next n bits without consuming them.
func (r *Reader) Peek(n uint) uint32 {
	return Read(r.buf, r.pos, n)
}

// Skip advances the cursor by n bits.
func (r *Reader) Skip(n uint) {
	r.pos += n
}

// Pos is the absolute bit offset of the cursor.
func (r *Reader) Pos() uint { return r.pos }

// Seek moves the cursor to an absolute bit offset.
func (r *Reader) Seek(pos uint) { r.pos = pos }

// Len is the size of the underlying buffer in bits.
func (r *Reader) Len() uint { return uint(len(r.buf)) * 8 }

// Overrun reports whether the cursor went past the end of the buffer,
// meaning some returned bits were zero padding.
func (r *Reader) Overrun() bool { return r.pos > r.Len() }

// Bytes returns the underlying buffer.
func (r *Reader) Bytes() []byte { return r.buf }
