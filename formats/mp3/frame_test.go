// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/threepm/internal/mp3test"
)

func collect(t *testing.T, p *Parser) ([]*Frame, []error) {
	t.Helper()

	var frames []*Frame
	var errs []error
	for range 100 {
		f, err := p.Next()
		if errors.Is(err, io.EOF) {
			return frames, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		frames = append(frames, f)
	}
	t.Fatal("parser did not reach io.EOF")
	return nil, nil
}

func checkSpectrum(t *testing.T, got *Spectrum, g mp3test.Granule) {
	t.Helper()

	want, n := g.Samples()
	if got.Samples != want {
		t.Errorf("Samples[:16] = %v, want %v", got.Samples[:16], want[:16])
	}
	if got.NonZero != n {
		t.Errorf("NonZero = %d, want %d", got.NonZero, n)
	}
}

func TestParser_TwoFrames(t *testing.T) {
	t.Parallel()

	a := mp3test.Frame{}
	a.Granules[0][0] = mp3test.Granule{Pairs: []int{1, 1, -1, 0}, Quads: []int{0, 0, 1, 0}}
	a.Granules[1][1] = mp3test.Granule{Pairs: []int{0, -1}, TableA: true, Quads: []int{1, 1, 1, 1, -1, 0, 0, 0}}
	b := mp3test.Frame{CRC: true, Padding: true}
	b.Granules[1][0] = mp3test.Granule{Quads: []int{0, 0, 0, 1}, ScalefacCompress: 3, Long: [21]uint8{16: 5}}

	frames, errs := collect(t, NewParser(mp3test.Stream(a, b), 0))
	if len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	for i, f := range frames {
		if f.Err != nil {
			t.Errorf("frame %d: Err = %v", i, f.Err)
		}
		if f.Index != i {
			t.Errorf("frame %d: Index = %d", i, f.Index)
		}
	}

	if frames[1].Record.Offset != 417 || frames[1].Record.Size != 418 || frames[1].Record.Prefix != 38 {
		t.Errorf("frame 1 record = %+v, want offset 417 size 418 prefix 38", frames[1].Record)
	}
	if len(frames[1].HeaderBytes()) != 6 {
		t.Errorf("frame 1 header bytes = %d, want 6", len(frames[1].HeaderBytes()))
	}

	for gr := range 2 {
		for ch := range 2 {
			checkSpectrum(t, frames[0].Spectra.At(gr, ch), a.Granules[gr][ch])
			checkSpectrum(t, frames[1].Spectra.At(gr, ch), b.Granules[gr][ch])
		}
	}
	if got := frames[1].SideInfo.LongScaleFactor(1, 0, 16); got != 5 {
		t.Errorf("LongScaleFactor(1, 0, 16) = %d, want 5", got)
	}
}

func TestParser_MainDataFromPreviousFrame(t *testing.T) {
	t.Parallel()

	b := mp3test.Frame{Mono: true}
	b.Granules[0][0] = mp3test.Granule{Pairs: []int{1, -1, 1, 1, 0, 1}, Quads: []int{1, 0, 1, 0}}
	b.Granules[1][0] = mp3test.Granule{Pairs: make([]int, 40), Quads: []int{-1, -1, -1, -1}}
	m := b.MainDataBytes()
	lead := 5
	b.MainDataBegin = lead
	b.MainData = m[lead:]

	a := mp3test.Frame{Mono: true}
	region := a.Size() - a.Prefix()
	a.MainData = make([]byte, region)
	copy(a.MainData[region-lead:], m[:lead])

	frames, errs := collect(t, NewParser(mp3test.Stream(a, b), 0))
	if len(errs) != 0 || len(frames) != 2 {
		t.Fatalf("frames = %d errors = %v, want 2 frames", len(frames), errs)
	}
	if frames[1].Err != nil {
		t.Fatalf("frame 1 Err = %v", frames[1].Err)
	}
	checkSpectrum(t, frames[1].Spectra.At(0, 0), b.Granules[0][0])
	checkSpectrum(t, frames[1].Spectra.At(1, 0), b.Granules[1][0])
}

func TestParser_ResyncAndSkip(t *testing.T) {
	t.Parallel()

	a := mp3test.Frame{Mono: true}
	a.Granules[0][0] = mp3test.Granule{Pairs: []int{1, 0}}

	layer2 := rawHeader{version: 3, layerBits: 2, noCRC: true, bitrate: 10, sampling: 1}.bytes()
	layer2 = append(layer2, make([]byte, 576-4)...)

	data := []byte("junk")
	data = append(data, a.Bytes()...)
	data = append(data, layer2...)
	data = append(data, 0x00, 0x12)
	data = append(data, a.Bytes()...)

	frames, errs := collect(t, NewParser(data, 0))
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Skipped != 4 || frames[1].Skipped != 2 {
		t.Errorf("Skipped = %d, %d, want 4, 2", frames[0].Skipped, frames[1].Skipped)
	}
	if frames[1].Index != 2 {
		t.Errorf("frame after the layer II frame has Index %d, want 2", frames[1].Index)
	}

	if len(errs) != 1 || !errors.Is(errs[0], ErrUnsupportedLayer) {
		t.Fatalf("errors = %v, want one ErrUnsupportedLayer", errs)
	}
	var fe *FrameError
	if !errors.As(errs[0], &fe) || fe.Offset != 4+417 || fe.Index != 1 {
		t.Errorf("FrameError = %+v, want index 1 at offset %d", fe, 4+417)
	}
}

func TestParser_FailSoft(t *testing.T) {
	t.Parallel()

	t.Run("reservoir", func(t *testing.T) {
		t.Parallel()

		f := mp3test.Frame{MainDataBegin: 10}
		frames, errs := collect(t, NewParser(f.Bytes(), 0))
		if len(errs) != 0 || len(frames) != 1 {
			t.Fatalf("frames = %d errors = %v, want 1 frame", len(frames), errs)
		}
		if !errors.Is(frames[0].Err, ErrReservoirInconsistency) {
			t.Errorf("Err = %v, want ErrReservoirInconsistency", frames[0].Err)
		}
		if frames[0].Spectra == nil || frames[0].Spectra.Channels != 2 {
			t.Errorf("Spectra = %+v, want an empty stereo spectra", frames[0].Spectra)
		}
	})

	t.Run("truncated main data", func(t *testing.T) {
		t.Parallel()

		f := mp3test.Frame{Mono: true}
		f.Granules[0][0] = mp3test.Granule{Pairs: make([]int, 200), Quads: []int{1, 1, 1, 1}}
		f.Truncate = f.Prefix() + 10

		frames, errs := collect(t, NewParser(f.Bytes(), 0))
		if len(errs) != 0 || len(frames) != 1 {
			t.Fatalf("frames = %d errors = %v, want 1 frame", len(frames), errs)
		}
		if !errors.Is(frames[0].Err, ErrTruncatedInput) {
			t.Errorf("Err = %v, want ErrTruncatedInput", frames[0].Err)
		}
	})

	t.Run("truncated side info", func(t *testing.T) {
		t.Parallel()

		f := mp3test.Frame{Truncate: 20}
		frames, errs := collect(t, NewParser(f.Bytes(), 0))
		if len(frames) != 0 || len(errs) != 1 || !errors.Is(errs[0], ErrTruncatedInput) {
			t.Errorf("frames = %d errors = %v, want one ErrTruncatedInput", len(frames), errs)
		}
	})
}

func TestParser_Empty(t *testing.T) {
	t.Parallel()

	if _, err := NewParser(nil, 0).Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
	if _, err := NewParser([]byte("no audio here"), 0).Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}
