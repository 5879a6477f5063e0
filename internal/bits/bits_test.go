// SPDX-License-Identifier: EPL-2.0

package bits

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// sliceBits is a bit-at-a-time reference for Read.
func sliceBits(buf []byte, off, n uint) uint32 {
	var v uint32
	for i := range n {
		p := off + i
		var b uint32
		if p/8 < uint(len(buf)) {
			b = uint32(buf[p/8]>>(7-p%8)) & 1
		}
		v = v<<1 | b
	}
	return v
}

func TestRead_KnownValues(t *testing.T) {
	t.Parallel()

	buf := []byte{0xFF, 0xFB, 0x90, 0x64}

	tests := []struct {
		name string
		off  uint
		n    uint
		want uint32
	}{
		{"sync", 0, 11, 0x7FF},
		{"version", 11, 2, 3},
		{"layer", 13, 2, 1},
		{"protection", 15, 1, 1},
		{"bitrate", 16, 4, 9},
		{"whole word", 0, 32, 0xFFFB9064},
		{"zero width", 5, 0, 0},
		{"past end", 30, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Read(buf, tt.off, tt.n); got != tt.want {
				t.Errorf("Read(%d, %d) = %#x, want %#x", tt.off, tt.n, got, tt.want)
			}
		})
	}
}

func TestRead_MatchesReference(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}

	for range 2000 {
		off := rng.UintN(uint(len(buf))*8 + 16)
		n := rng.UintN(MaxRead + 1)
		if got, want := Read(buf, off, n), sliceBits(buf, off, n); got != want {
			t.Fatalf("Read(%d, %d) = %#x, want %#x", off, n, got, want)
		}
	}
}

func TestRead_ZeroPadsEmptyBuffer(t *testing.T) {
	t.Parallel()

	if got := Read(nil, 0, 32); got != 0 {
		t.Errorf("Read(nil) = %#x, want 0", got)
	}
	if got := Read([]byte{}, 100, 7); got != 0 {
		t.Errorf("Read(empty) = %#x, want 0", got)
	}
}

func TestReader_Sequential(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0b1011_0010, 0b0111_1111})

	if got := r.ReadBit(); got != 1 {
		t.Errorf("ReadBit() = %d, want 1", got)
	}
	if r.ReadFlag() {
		t.Error("ReadFlag() = true, want false")
	}
	if got := r.Peek(2); got != 0b11 {
		t.Errorf("Peek(2) = %#b, want 0b11", got)
	}
	if got := r.Read(4); got != 0b1100 {
		t.Errorf("Read(4) = %#b, want 0b1100", got)
	}
	if r.Pos() != 6 {
		t.Errorf("Pos() = %d, want 6", r.Pos())
	}

	r.Skip(2)
	if got := r.Read(8); got != 0b0111_1111 {
		t.Errorf("Read(8) = %#b, want 0b01111111", got)
	}
	if r.Overrun() {
		t.Error("Overrun() = true at end of input")
	}

	if got := r.Read(3); got != 0 {
		t.Errorf("Read(3) past end = %d, want 0", got)
	}
	if !r.Overrun() {
		t.Error("Overrun() = false after reading past the end")
	}

	r.Seek(0)
	if got := r.Read(8); got != 0xB2 {
		t.Errorf("Read(8) after Seek(0) = %#x, want 0xb2", got)
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	type field struct {
		v uint32
		n uint
	}

	rng := rand.New(rand.NewPCG(7, 9))
	fields := make([]field, 300)
	var w Writer
	for i := range fields {
		n := rng.UintN(MaxRead) + 1
		v := rng.Uint32()
		if n < 32 {
			v &= 1<<n - 1
		}
		fields[i] = field{v, n}
		w.Write(v, n)
	}

	r := NewReader(w.Bytes())
	for i, f := range fields {
		if got := r.Read(f.n); got != f.v {
			t.Fatalf("field %d: Read(%d) = %#x, want %#x", i, f.n, got, f.v)
		}
	}
	if r.Pos() != w.Len() {
		t.Errorf("Pos() = %d, want %d", r.Pos(), w.Len())
	}
}

func TestWriter_Align(t *testing.T) {
	t.Parallel()

	var w Writer
	w.WriteFlag(true)
	w.Align()
	w.Write(0xA, 4)

	if !bytes.Equal(w.Bytes(), []byte{0x80, 0xA0}) {
		t.Errorf("Bytes() = %#v, want [0x80 0xa0]", w.Bytes())
	}
	if w.Len() != 12 {
		t.Errorf("Len() = %d, want 12", w.Len())
	}
}
