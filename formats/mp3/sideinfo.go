// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Block types carried in the side information.
const (
	BlockNormal = 0
	BlockStart  = 1
	BlockShort  = 2
	BlockStop   = 3
)

// GranuleChannel holds the side information and scale factors of one
// granule of one channel.
type GranuleChannel struct {
	Part23Length      int // bits of scale factors and Huffman data
	BigValues         int // pairs in the big value region
	GlobalGain        int
	ScalefacCompress  int
	WindowSwitching   bool
	BlockType         int
	Mixed             bool
	TableSelect       [3]int
	SubblockGain      [3]int
	Region0Count      int
	Region1Count      int
	Preflag           bool
	ScalefacScale     bool
	Count1TableSelect int

	// ScaleFacL and ScaleFacS hold only the bands transmitted for this
	// granule. Bands shared through scfsi stay zero here and are read
	// from granule 0; see SideInfo.LongScaleFactor. The last entry of
	// each is never transmitted and is always zero.
	ScaleFacL [22]uint8
	ScaleFacS [3][13]uint8
}

// ShortBlocks reports whether the granule uses the short window layout.
func (g *GranuleChannel) ShortBlocks() bool {
	return g.WindowSwitching && g.BlockType == BlockShort
}

// SideInfo is the per-frame Layer III side information.
type SideInfo struct {
	MainDataBegin int
	PrivateBits   int
	SCFSI         [2][4]bool
	Granule       [2][2]GranuleChannel

	granules int
	channels int
	raw      []byte
}

// Granules is the number of granules described.
func (si *SideInfo) Granules() int { return si.granules }

// Channels is the number of channels described.
func (si *SideInfo) Channels() int { return si.channels }

// Bytes returns the side information exactly as it appeared in the frame.
func (si *SideInfo) Bytes() []byte { return si.raw }

// Shared reports whether granule 1 reuses the granule 0 value for long
// band sfb of channel ch.
func (si *SideInfo) Shared(ch, sfb int) bool {
	for i := range 4 {
		if sfb >= scfsiBands[i] && sfb < scfsiBands[i+1] {
			return si.SCFSI[ch][i]
		}
	}
	return false
}

// LongScaleFactor resolves the long window scale factor of a band,
// following scfsi sharing back to granule 0.
func (si *SideInfo) LongScaleFactor(gr, ch, sfb int) int {
	if gr == 1 && si.Shared(ch, sfb) {
		gr = 0
	}
	return int(si.Granule[gr][ch].ScaleFacL[sfb])
}

// ParseSideInfo decodes the side information that follows the header and
// optional CRC of a Layer III frame.
//
// Parameters:
//   - frame: the frame bytes starting at the sync word
//   - h: the header already parsed from frame
//
// Returns:
//   - *SideInfo: the decoded side information, without scale factors
//   - error: ErrUnsupportedLayer, ErrTruncatedInput or ErrInvalidFrame
func ParseSideInfo(frame []byte, h Header) (*SideInfo, error) {
	if h.Layer != 3 {
		return nil, fmt.Errorf("%w: layer %d", ErrUnsupportedLayer, h.Layer)
	}

	start := h.HeaderSize()
	end := start + h.SideInfoSize()
	if len(frame) < end {
		return nil, fmt.Errorf("%w: side info needs %d bytes, have %d", ErrTruncatedInput, end, len(frame))
	}

	si := &SideInfo{
		granules: h.Granules(),
		channels: h.Channels(),
		raw:      frame[start:end],
	}
	r := bits.NewReader(si.raw)

	if h.LSF() {
		si.MainDataBegin = int(r.Read(8))
		si.PrivateBits = int(r.Read(uint(si.channels)))
	} else {
		si.MainDataBegin = int(r.Read(9))
		if si.channels == 1 {
			si.PrivateBits = int(r.Read(5))
		} else {
			si.PrivateBits = int(r.Read(3))
		}
		for ch := range si.channels {
			for band := range 4 {
				si.SCFSI[ch][band] = r.ReadFlag()
			}
		}
	}

	for gr := range si.granules {
		for ch := range si.channels {
			if err := readGranule(r, h, &si.Granule[gr][ch]); err != nil {
				return nil, fmt.Errorf("granule %d channel %d: %w", gr, ch, err)
			}
		}
	}

	return si, nil
}

func readGranule(r *bits.Reader, h Header, g *GranuleChannel) error {
	g.Part23Length = int(r.Read(12))
	g.BigValues = int(r.Read(9))
	if g.BigValues > GranuleSamples/2 {
		return invalidf("big_values %d out of range", g.BigValues)
	}
	g.GlobalGain = int(r.Read(8))
	if h.LSF() {
		g.ScalefacCompress = int(r.Read(9))
	} else {
		g.ScalefacCompress = int(r.Read(4))
	}

	g.WindowSwitching = r.ReadFlag()
	if g.WindowSwitching {
		g.BlockType = int(r.Read(2))
		if g.BlockType == BlockNormal {
			return invalidf("window switching with a normal block")
		}
		g.Mixed = r.ReadFlag()
		for i := range 2 {
			g.TableSelect[i] = int(r.Read(5))
		}
		for i := range 3 {
			g.SubblockGain[i] = int(r.Read(3))
		}
		// Region counts are implicit for switched windows.
		if g.BlockType == BlockShort && !g.Mixed {
			g.Region0Count = 8
		} else {
			g.Region0Count = 7
		}
		g.Region1Count = 20 - g.Region0Count
	} else {
		for i := range 3 {
			g.TableSelect[i] = int(r.Read(5))
		}
		g.Region0Count = int(r.Read(4))
		g.Region1Count = int(r.Read(3))
	}

	if !h.LSF() {
		g.Preflag = r.ReadFlag()
	}
	g.ScalefacScale = r.ReadFlag()
	g.Count1TableSelect = int(r.Read(1))

	return nil
}
