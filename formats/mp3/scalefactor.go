// SPDX-License-Identifier: EPL-2.0

package mp3

import "github.com/ik5/threepm/internal/bits"

// UnpackScaleFactors reads the scale factors of granule gr, channel ch
// from main data at the cursor of r, storing them in si and leaving r
// after the last scale factor bit.
//
// For MPEG-1 long blocks in granule 1, bands whose scfsi flag is set are
// not transmitted: they stay zero in granule 1 and are resolved through
// SideInfo.LongScaleFactor.
func UnpackScaleFactors(r *bits.Reader, si *SideInfo, h Header, gr, ch int) {
	g := &si.Granule[gr][ch]
	if h.LSF() {
		unpackLSF(r, g, h.IntensityStereo() && ch == 1)
		return
	}

	slen1, slen2 := slen[g.ScalefacCompress][0], slen[g.ScalefacCompress][1]

	if g.ShortBlocks() {
		first := 0
		if g.Mixed {
			for sfb := range 8 {
				g.ScaleFacL[sfb] = uint8(r.Read(slen1))
			}
			first = 3
		}
		for sfb := first; sfb < 12; sfb++ {
			n := slen1
			if sfb >= 6 {
				n = slen2
			}
			for win := range 3 {
				g.ScaleFacS[win][sfb] = uint8(r.Read(n))
			}
		}
		return
	}

	for band := range 4 {
		if gr == 1 && si.SCFSI[ch][band] {
			continue
		}
		n := slen1
		if band >= 2 {
			n = slen2
		}
		for sfb := scfsiBands[band]; sfb < scfsiBands[band+1]; sfb++ {
			g.ScaleFacL[sfb] = uint8(r.Read(n))
		}
	}
}

// lsfLengths splits an MPEG-2 scalefac_compress into four partition bit
// widths and selects the partition table. The intensity coded right
// channel uses a separate split.
func lsfLengths(sc int, intensity bool) (lens [4]uint, table int, preflag bool) {
	if intensity {
		isc := sc >> 1
		switch {
		case isc < 180:
			return [4]uint{uint(isc / 36), uint((isc % 36) / 6), uint((isc % 36) % 6), 0}, 3, false
		case isc < 244:
			x := isc - 180
			return [4]uint{uint((x % 64) >> 4), uint((x % 16) >> 2), uint(x % 4), 0}, 4, false
		default:
			x := isc - 244
			return [4]uint{uint(x / 3), uint(x % 3), 0, 0}, 5, false
		}
	}

	switch {
	case sc < 400:
		return [4]uint{uint((sc >> 4) / 5), uint((sc >> 4) % 5), uint((sc % 16) >> 2), uint(sc % 4)}, 0, false
	case sc < 500:
		x := sc - 400
		return [4]uint{uint((x >> 2) / 5), uint((x >> 2) % 5), uint(x % 4), 0}, 1, false
	default:
		x := sc - 500
		return [4]uint{uint(x / 3), uint(x % 3), 0, 0}, 2, true
	}
}

func unpackLSF(r *bits.Reader, g *GranuleChannel, intensity bool) {
	lens, table, preflag := lsfLengths(g.ScalefacCompress, intensity)
	g.Preflag = preflag

	kind := 0
	if g.ShortBlocks() {
		kind = 1
		if g.Mixed {
			kind = 2
		}
	}

	var flat [54]uint8
	n := 0
	for part, count := range lsfBandCounts[kind][table] {
		for range count {
			flat[n] = uint8(r.Read(lens[part]))
			n++
		}
	}

	switch kind {
	case 0:
		for sfb := 0; sfb < n && sfb < 21; sfb++ {
			g.ScaleFacL[sfb] = flat[sfb]
		}
	case 1:
		for i := 0; i < n && i < 36; i++ {
			g.ScaleFacS[i%3][i/3] = flat[i]
		}
	case 2:
		copy(g.ScaleFacL[:6], flat[:6])
		for i := 6; i < n && i < 33; i++ {
			j := i - 6
			g.ScaleFacS[j%3][3+j/3] = flat[i]
		}
	}
}
