// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/threepm/audio"
)

// pcmReader is the part of gomp3.Decoder the PCM source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// pcmSource renders an MP3 stream to PCM. go-mp3 always produces
// interleaved stereo int16 little-endian bytes.
type pcmSource struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return 2 }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf)
	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768
	}
	return samples, err
}

var _ audio.Decoder = Decoder{}

// Decoder renders MP3 input to PCM through go-mp3. It is used for WAV
// export only; the re-encoder works on Parser output.
type Decoder struct{}

// Decode opens r as an MP3 stream.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: open pcm decoder: %w", err)
	}

	return &pcmSource{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
