// SPDX-License-Identifier: EPL-2.0

package bits

// Writer packs bit fields MSB-first into a growing byte slice.
// The zero value is ready to use.
type Writer struct {
	buf []byte
	n   uint // bits written
}

// Write appends the low n bits of v, most significant first.
func (w *Writer) Write(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		if w.n&7 == 0 {
			w.buf = append(w.buf, 0)
		}
		if (v>>uint(i))&1 == 1 {
			w.buf[len(w.buf)-1] |= 0x80 >> (w.n & 7)
		}
		w.n++
	}
}

// WriteFlag appends a single bit.
func (w *Writer) WriteFlag(b bool) {
	if b {
		w.Write(1, 1)
		return
	}
	w.Write(0, 1)
}

// Len is the number of bits written so far.
func (w *Writer) Len() uint { return w.n }

// Align pads with zero bits up to the next byte boundary.
func (w *Writer) Align() {
	for w.n&7 != 0 {
		w.Write(0, 1)
	}
}

// Bytes returns the packed bytes. A trailing partial byte is zero padded.
func (w *Writer) Bytes() []byte { return w.buf }
