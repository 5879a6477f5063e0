// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Spectrum is the quantized output of one granule and channel.
// Entries from NonZero on are zero.
type Spectrum struct {
	Samples [GranuleSamples]int
	NonZero int
}

// regionBounds returns the first sample of big value regions 1 and 2.
func regionBounds(h Header, g *GranuleChannel) (int, int) {
	if g.ShortBlocks() {
		return 36, GranuleSamples
	}

	long := &h.bands().long
	r1 := min(g.Region0Count+1, len(long)-1)
	r2 := min(g.Region0Count+g.Region1Count+2, len(long)-1)
	return long[r1], long[r2]
}

// DecodeSpectrum Huffman decodes the big value and count1 regions of one
// granule and channel. The cursor of r must sit right after the scale
// factors; end is the absolute bit position where the granule's
// part2_3_length runs out.
//
// On failure the samples decoded so far are returned together with the
// error and the rest of the spectrum is zero.
func DecodeSpectrum(r *bits.Reader, h Header, g *GranuleChannel, end uint) (Spectrum, error) {
	var s Spectrum

	region1, region2 := regionBounds(h, g)
	bigEnd := min(g.BigValues*2, GranuleSamples)

	for i := 0; i < bigEnd; i += 2 {
		table := g.TableSelect[0]
		switch {
		case i >= region2:
			table = g.TableSelect[2]
		case i >= region1:
			table = g.TableSelect[1]
		}

		x, y, err := decodePair(r, table)
		if err != nil {
			s.NonZero = i
			return s, fmt.Errorf("sample %d: %w", i, err)
		}
		s.Samples[i], s.Samples[i+1] = x, y
	}
	s.NonZero = bigEnd

	tableB := g.Count1TableSelect == 1
	for i := bigEnd; i+4 <= GranuleSamples && r.Pos() < end; i += 4 {
		q, err := decodeQuad(r, tableB)
		if err != nil {
			return s, fmt.Errorf("sample %d: %w", i, err)
		}
		if r.Pos() > end {
			// The last quadruple ran over part2_3_length and is not data.
			break
		}
		copy(s.Samples[i:i+4], q[:])
		s.NonZero = i + 4
	}

	if r.Overrun() {
		return s, fmt.Errorf("%w: granule data ends at bit %d of %d", ErrTruncatedInput, r.Pos(), r.Len())
	}
	return s, nil
}
