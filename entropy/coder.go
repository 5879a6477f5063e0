// SPDX-License-Identifier: EPL-2.0

package entropy

import "fmt"

// Binary arithmetic coder in the style of fpaq0. The interval [x1, x2]
// is split in proportion to the model probability; once both ends agree
// on their top byte that byte is final and is shifted out.
//
// A byte is coded as a 0 flag bit followed by its eight bits, most
// significant first. A 1 flag bit ends the stream.

const (
	topMask = 0xFF000000

	// primeBytes is the width of the decoder's value register.
	primeBytes = 4

	// minProb floors the split probability. Every bit then narrows the
	// interval by at least 1/4096, so the decoder keeps consuming input
	// even when its model has drifted to a probability of 0.
	minProb = 1
)

// split returns the top of the interval part that codes a 1 bit.
func split(x1, x2, p uint32) uint32 {
	return x1 + ((x2-x1)>>ProbBits)*max(p, minProb)
}

// Encoder codes bits against a Model.
type Encoder struct {
	model Model
	ctx   Context
	x1    uint32
	x2    uint32
	out   []byte
}

// NewEncoder returns an Encoder that appends to dst.
func NewEncoder(dst []byte, m Model) *Encoder {
	return &Encoder{
		model: m,
		ctx:   Context{Bits: 1},
		x2:    0xFFFFFFFF,
		out:   dst,
	}
}

func (e *Encoder) encodeBit(bit int) {
	xmid := split(e.x1, e.x2, e.model.P(e.ctx))
	if bit != 0 {
		e.x2 = xmid
	} else {
		e.x1 = xmid + 1
	}
	e.model.Update(e.ctx, bit)
	e.ctx.Bits = nextBits(e.ctx.Bits, bit)

	for (e.x1^e.x2)&topMask == 0 {
		e.out = append(e.out, byte(e.x2>>24))
		e.x1 <<= 8
		e.x2 = e.x2<<8 | 0xFF
	}
}

// WriteByte codes one byte. It never fails.
func (e *Encoder) WriteByte(b byte) error {
	e.encodeBit(0)
	for i := 7; i >= 0; i-- {
		e.encodeBit(int(b>>i) & 1)
	}
	e.ctx.Pos++
	return nil
}

// Write codes p. It never fails.
func (e *Encoder) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = e.WriteByte(b)
	}
	return len(p), nil
}

// Finish codes the end marker, flushes the interval and returns the
// output. The Encoder must not be used afterwards.
func (e *Encoder) Finish() []byte {
	e.encodeBit(1)
	e.out = append(e.out, byte(e.x2>>24))
	return e.out
}

// nextBits shifts bit into a byte context, restarting after the flag bit
// and eight data bits.
func nextBits(bits uint32, bit int) uint32 {
	bits = bits<<1 | uint32(bit)
	if bits >= contextSize {
		return 1
	}
	return bits
}

// Decoder reverses Encoder.
type Decoder struct {
	model Model
	ctx   Context
	x1    uint32
	x2    uint32
	x     uint32
	in    []byte
	pos   int
	done  bool
}

// NewDecoder returns a Decoder reading the output of an Encoder that used
// an identically built model.
func NewDecoder(src []byte, m Model) *Decoder {
	d := &Decoder{
		model: m,
		ctx:   Context{Bits: 1},
		x2:    0xFFFFFFFF,
		in:    src,
	}
	for range primeBytes {
		d.x = d.x<<8 | uint32(d.next())
	}
	return d
}

// next returns the next input byte, or zero past the end.
func (d *Decoder) next() byte {
	var b byte
	if d.pos < len(d.in) {
		b = d.in[d.pos]
	}
	d.pos++
	return b
}

func (d *Decoder) decodeBit() int {
	xmid := split(d.x1, d.x2, d.model.P(d.ctx))
	bit := 0
	if d.x <= xmid {
		bit = 1
		d.x2 = xmid
	} else {
		d.x1 = xmid + 1
	}
	d.model.Update(d.ctx, bit)
	d.ctx.Bits = nextBits(d.ctx.Bits, bit)

	for (d.x1^d.x2)&topMask == 0 {
		d.x1 <<= 8
		d.x2 = d.x2<<8 | 0xFF
		d.x = d.x<<8 | uint32(d.next())
	}
	return bit
}

// Next decodes one byte. ok is false once the end marker has been read,
// or when the input ran out without one.
func (d *Decoder) Next() (b byte, ok bool) {
	// A well formed stream never needs more than the primed bytes past
	// its end.
	if d.done || d.pos > len(d.in)+primeBytes {
		d.done = true
		return 0, false
	}
	if d.decodeBit() != 0 {
		d.done = true
		return 0, false
	}

	v := 1
	for v < 256 {
		v = v<<1 | d.decodeBit()
	}
	d.ctx.Pos++
	return byte(v), true
}

// Encode compresses data with m. m must be fresh.
func Encode(data []byte, m Model) []byte {
	e := NewEncoder(make([]byte, 0, len(data)/2+primeBytes), m)
	_, _ = e.Write(data)
	return e.Finish()
}

// Decode reverses Encode. m must be built like the model given to
// Encode. Decoding stops at the end marker or when the input is
// exhausted, so a damaged stream yields a truncated result rather than
// an error.
func Decode(data []byte, m Model) []byte {
	out, _ := DecodeN(data, m, -1)
	return out
}

// DecodeN is Decode with the output capped at limit bytes; a negative
// limit means no cap. A stream that still holds data after limit bytes
// fails with ErrCorruptStream, which is how a payload decoded with the
// wrong model usually shows.
func DecodeN(data []byte, m Model, limit int) ([]byte, error) {
	d := NewDecoder(data, m)
	out := make([]byte, 0, max(limit, 0))
	for {
		b, ok := d.Next()
		if !ok {
			return out, nil
		}
		if limit >= 0 && len(out) == limit {
			return out, fmt.Errorf("%w: more than %d bytes", ErrCorruptStream, limit)
		}
		out = append(out, b)
	}
}
