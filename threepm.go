// SPDX-License-Identifier: EPL-2.0

package threepm

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/threepm/audio"
	"github.com/ik5/threepm/container"
	"github.com/ik5/threepm/formats/aiff"
	"github.com/ik5/threepm/formats/mp3"
	"github.com/ik5/threepm/formats/wav"
	"github.com/ik5/threepm/recompress"
)

// pcmBufSize is the number of samples read per call when rendering.
const pcmBufSize = 4096

// Recompress re-encodes a complete MP3 file, skipping any leading ID3v2
// tags and a trailing ID3v1 tag.
func Recompress(data []byte, cfg recompress.Config) (*recompress.Result, error) {
	r, err := recompress.New(cfg)
	if err != nil {
		return nil, err
	}
	return r.Run(data, mp3.ID3Offset(data).Offset)
}

// Unpack decodes a 3PM stream to quantized samples.
func Unpack(data []byte, cfg recompress.Config) ([]recompress.FrameSamples, error) {
	return recompress.Unpack(data, cfg)
}

// SampleRate reads the sample rate of the first frame of a 3PM stream.
func SampleRate(data []byte) (int, error) {
	_, h, err := container.NewReader(data).Next()
	if errors.Is(err, io.EOF) {
		return 0, ErrNoSamples
	}
	if err != nil {
		return 0, err
	}
	return h.SampleRate, nil
}

// Format is an export file format.
type Format int

// Supported export formats.
const (
	FormatWAV Format = iota
	FormatAIFF
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatAIFF:
		return "aiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks the export format from a file extension. Anything
// other than .aif or .aiff is WAV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		return FormatAIFF
	}
	return FormatWAV
}

func write(w io.Writer, sampleRate int, channels [][]int16, format Format) error {
	switch format {
	case FormatWAV:
		return wav.Write(w, sampleRate, channels)
	case FormatAIFF:
		return aiff.Write(w, sampleRate, channels)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// Export writes quantized samples as a 16-bit audio file, one output
// channel per audio channel and granules in order. Every frame must have
// the same channel count.
func Export(w io.Writer, frames []recompress.FrameSamples, sampleRate int, format Format) error {
	if len(frames) == 0 {
		return ErrNoSamples
	}

	channels := make([][]int16, frames[0].Channels)
	for i := range frames {
		if frames[i].Channels != len(channels) {
			return fmt.Errorf("%w: frame %d has %d channels, frame 0 has %d",
				ErrChannelMismatch, i, frames[i].Channels, len(channels))
		}
		for ch, s := range frames[i].Planar() {
			channels[ch] = append(channels[ch], s...)
		}
	}

	return write(w, sampleRate, channels, format)
}

// ExportWAV writes quantized samples as a 16-bit WAV file.
func ExportWAV(w io.Writer, frames []recompress.FrameSamples, sampleRate int) error {
	return Export(w, frames, sampleRate, FormatWAV)
}

// WritePCM drains src into a 16-bit audio file. src is not closed.
func WritePCM(w io.Writer, src audio.Source, format Format) error {
	pcm, err := audio.ReadInt16(src, pcmBufSize*max(src.Channels(), 1))
	if err != nil {
		return err
	}
	if len(pcm) == 0 {
		return ErrNoSamples
	}
	return write(w, src.SampleRate(), audio.Deinterleave(pcm, src.Channels()), format)
}

// RenderPCM decodes an MP3 stream to PCM and writes it as a 16-bit
// audio file.
func RenderPCM(w io.Writer, r io.Reader, format Format) error {
	src, err := mp3.Decoder{}.Decode(r)
	if err != nil {
		return err
	}
	defer src.Close()

	return WritePCM(w, src, format)
}
