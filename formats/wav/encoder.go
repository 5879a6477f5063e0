// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/aler9/writerseeker"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth  = 16
	formatPCM = 1
)

// Interleave merges equal length channels into one frame ordered slice.
func Interleave(channels [][]int16) ([]int, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	n := len(channels[0])
	for i, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrChannelLength, i, len(ch), n)
		}
	}

	out := make([]int, 0, n*len(channels))
	for i := range n {
		for _, ch := range channels {
			out = append(out, int(ch[i]))
		}
	}
	return out, nil
}

// Encode writes interleaved 16-bit samples as a PCM WAV file to w.
func Encode(w io.WriteSeeker, sampleRate, numChannels int, samples []int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if numChannels <= 0 {
		return ErrNoChannels
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChannels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: close: %w", err)
	}
	return nil
}

// Write writes planar 16-bit channels as a PCM WAV file to w. Writers
// that cannot seek are served from an in-memory copy.
func Write(w io.Writer, sampleRate int, channels [][]int16) error {
	samples, err := Interleave(channels)
	if err != nil {
		return err
	}

	if ws, ok := w.(io.WriteSeeker); ok {
		return Encode(ws, sampleRate, len(channels), samples)
	}

	ws := &writerseeker.WriterSeeker{}
	if err := Encode(ws, sampleRate, len(channels), samples); err != nil {
		return err
	}
	if _, err := io.Copy(w, ws.Reader()); err != nil {
		return fmt.Errorf("wav: write: %w", err)
	}
	return nil
}

// Info describes a decoded WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int // interleaved
}

// Read decodes a complete PCM WAV file.
func Read(r io.ReadSeeker) (*Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: read pcm: %w", err)
	}

	return &Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Samples:    buf.Data,
	}, nil
}
