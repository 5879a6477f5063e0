// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Spectra holds the quantized spectra of every granule and channel of a
// frame.
type Spectra struct {
	Granules int
	Channels int
	Data     [2][2]Spectrum
}

// At returns the spectrum of granule gr, channel ch.
func (s *Spectra) At(gr, ch int) *Spectrum { return &s.Data[gr][ch] }

// DecodeMainData unpacks scale factors and Huffman data for every granule
// and channel of a frame from its reservoir-resolved main data.
//
// Each granule starts where the previous one's part2_3_length ends, so a
// damaged granule does not stop the following ones from being decoded.
// The returned Spectra is always usable; granules that failed hold the
// samples decoded up to the failure and zeros after it. All failures
// are joined in the returned error.
func DecodeMainData(main []byte, h Header, si *SideInfo) (*Spectra, error) {
	out := &Spectra{Granules: si.Granules(), Channels: si.Channels()}
	r := bits.NewReader(main)

	var errs []error
	var pos uint
	for gr := range out.Granules {
		for ch := range out.Channels {
			g := &si.Granule[gr][ch]
			end := pos + uint(g.Part23Length)

			r.Seek(pos)
			UnpackScaleFactors(r, si, h, gr, ch)

			s, err := DecodeSpectrum(r, h, g, end)
			out.Data[gr][ch] = s
			if err != nil {
				errs = append(errs, fmt.Errorf("granule %d channel %d: %w", gr, ch, err))
			}
			pos = end
		}
	}

	return out, errors.Join(errs...)
}
