// SPDX-License-Identifier: EPL-2.0

// Package mp3test builds small MPEG-1 Layer III frames for tests.
//
// Frames are 44.1 kHz and use only Huffman table 1 for big values and the
// count1 tables for quadruples, so every sample must be -1, 0 or 1. That
// is enough to exercise header, side information, scale factor and
// spectrum parsing with exactly known expected output.
package mp3test

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Granule describes the coded content of one granule and channel.
type Granule struct {
	Pairs  []int // big value samples, even length, coded with table 1
	Quads  []int // count1 samples, length a multiple of 4
	TableA bool  // code quadruples with count1 table A instead of B

	ScalefacCompress int
	Long             [21]uint8 // long window scale factors
}

// Samples returns the 576 values a decoder must produce and the index
// where decoding stops.
func (g Granule) Samples() ([576]int, int) {
	var s [576]int
	n := copy(s[:], g.Pairs)
	n += copy(s[n:], g.Quads)
	return s, n
}

// Frame describes one MPEG-1 Layer III frame.
type Frame struct {
	Mono          bool
	CRC           bool
	Padding       bool
	BitrateIndex  int // defaults to 9 (128 kbps)
	MainDataBegin int
	SCFSI         [2][4]bool
	Granules      [2][2]Granule // [granule][channel]

	// MainData, when set, replaces the encoded main data bytes.
	MainData []byte
	// Truncate cuts the frame to this many bytes when positive.
	Truncate int
}

var bitrateKbps = [15]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320}

var slen = [16][2]uint{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}

// count1 table A codewords indexed by the vwxy magnitude pattern.
var quadA = [16]struct {
	code uint32
	n    uint
}{
	{0x1, 1}, {0x5, 4}, {0x4, 4}, {0x5, 5}, {0x6, 4}, {0x5, 6}, {0x4, 5}, {0x4, 6},
	{0x7, 4}, {0x3, 5}, {0x6, 5}, {0x0, 6}, {0x7, 5}, {0x2, 6}, {0x3, 6}, {0x1, 6},
}

func (f Frame) channels() int {
	if f.Mono {
		return 1
	}
	return 2
}

func (f Frame) bitrate() int {
	if f.BitrateIndex == 0 {
		return 9
	}
	return f.BitrateIndex
}

// Size is the frame length in bytes.
func (f Frame) Size() int {
	size := 144 * bitrateKbps[f.bitrate()] * 1000 / 44100
	if f.Padding {
		size++
	}
	return size
}

// Prefix is the header, CRC and side information length in bytes.
func (f Frame) Prefix() int {
	n := 4 + 32
	if f.Mono {
		n = 4 + 17
	}
	if f.CRC {
		n += 2
	}
	return n
}

// Header returns the four header bytes.
func (f Frame) Header() []byte {
	var w bits.Writer
	w.Write(0x7FF, 11)
	w.Write(3, 2) // MPEG-1
	w.Write(1, 2) // layer III
	w.WriteFlag(!f.CRC)
	w.Write(uint32(f.bitrate()), 4)
	w.Write(0, 2) // 44.1 kHz
	w.WriteFlag(f.Padding)
	w.Write(0, 1)
	if f.Mono {
		w.Write(3, 2)
	} else {
		w.Write(0, 2)
	}
	w.Write(0, 2) // mode extension
	w.Write(0, 1) // copyright
	w.Write(1, 1) // original
	w.Write(0, 2) // emphasis
	return w.Bytes()
}

// Bytes encodes the frame. It panics if the main data does not fit, which
// is a bug in the test that built it.
func (f Frame) Bytes() []byte {
	var main bits.Writer
	var part23 [2][2]int
	for gr := range 2 {
		for ch := range f.channels() {
			start := main.Len()
			f.writeGranule(&main, gr, ch)
			part23[gr][ch] = int(main.Len() - start)
		}
	}

	var side bits.Writer
	side.Write(uint32(f.MainDataBegin), 9)
	if f.Mono {
		side.Write(0, 5)
	} else {
		side.Write(0, 3)
	}
	for ch := range f.channels() {
		for band := range 4 {
			side.WriteFlag(f.SCFSI[ch][band])
		}
	}
	for gr := range 2 {
		for ch := range f.channels() {
			g := f.Granules[gr][ch]
			side.Write(uint32(part23[gr][ch]), 12)
			side.Write(uint32(len(g.Pairs)/2), 9)
			side.Write(140, 8) // global gain
			side.Write(uint32(g.ScalefacCompress), 4)
			side.Write(0, 1) // no window switching
			for range 3 {
				side.Write(1, 5)
			}
			side.Write(7, 4)
			side.Write(7, 3)
			side.Write(0, 1) // preflag
			side.Write(0, 1) // scalefac scale
			side.WriteFlag(!g.TableA)
		}
	}

	out := f.Header()
	if f.CRC {
		out = append(out, 0xAB, 0xCD)
	}
	out = append(out, side.Bytes()...)

	data := main.Bytes()
	if f.MainData != nil {
		data = f.MainData
	}
	if len(out)+len(data) > f.Size() {
		panic(fmt.Sprintf("mp3test: %d bytes of main data do not fit a %d byte frame", len(data), f.Size()))
	}
	out = append(out, data...)
	out = append(out, make([]byte, f.Size()-len(out))...)

	if f.Truncate > 0 && f.Truncate < len(out) {
		out = out[:f.Truncate]
	}
	return out
}

// MainDataBytes returns the encoded main data alone.
func (f Frame) MainDataBytes() []byte {
	var main bits.Writer
	for gr := range 2 {
		for ch := range f.channels() {
			f.writeGranule(&main, gr, ch)
		}
	}
	return main.Bytes()
}

func (f Frame) writeGranule(w *bits.Writer, gr, ch int) {
	g := f.Granules[gr][ch]

	slen1, slen2 := slen[g.ScalefacCompress][0], slen[g.ScalefacCompress][1]
	bands := [5]int{0, 6, 11, 16, 21}
	for band := range 4 {
		if gr == 1 && f.SCFSI[ch][band] {
			continue
		}
		n := slen1
		if band >= 2 {
			n = slen2
		}
		for sfb := bands[band]; sfb < bands[band+1]; sfb++ {
			w.Write(uint32(g.Long[sfb]), n)
		}
	}

	for i := 0; i+1 < len(g.Pairs); i += 2 {
		writePair(w, g.Pairs[i], g.Pairs[i+1])
	}
	for i := 0; i+3 < len(g.Quads); i += 4 {
		writeQuad(w, g.Quads[i:i+4], g.TableA)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func writeSign(w *bits.Writer, v int) {
	if v != 0 {
		w.WriteFlag(v < 0)
	}
}

func writePair(w *bits.Writer, x, y int) {
	switch {
	case abs(x) > 1 || abs(y) > 1:
		panic(fmt.Sprintf("mp3test: pair (%d,%d) needs a table other than 1", x, y))
	case x == 0 && y == 0:
		w.Write(0b1, 1)
	case y == 0:
		w.Write(0b01, 2)
	case x == 0:
		w.Write(0b001, 3)
	default:
		w.Write(0b000, 3)
	}
	writeSign(w, x)
	writeSign(w, y)
}

func writeQuad(w *bits.Writer, q []int, tableA bool) {
	var value int
	for i, v := range q {
		if abs(v) > 1 {
			panic(fmt.Sprintf("mp3test: count1 value %d out of range", v))
		}
		if v != 0 {
			value |= 1 << (3 - i)
		}
	}

	if tableA {
		w.Write(quadA[value].code, quadA[value].n)
	} else {
		w.Write(uint32(15-value), 4)
	}
	for _, v := range q {
		writeSign(w, v)
	}
}

// Stream concatenates encoded frames.
func Stream(frames ...Frame) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f.Bytes()...)
	}
	return out
}
