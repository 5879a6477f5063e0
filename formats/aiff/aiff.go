// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aler9/writerseeker"
	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/threepm/formats/wav"
)

const (
	bitDepth = 16
	readSize = 4096
)

// Write writes planar 16-bit channels as an AIFF file to w. Writers
// that cannot seek are served from an in-memory copy.
func Write(w io.Writer, sampleRate int, channels [][]int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	samples, err := wav.Interleave(channels)
	if err != nil {
		return err
	}

	ws, ok := w.(io.WriteSeeker)
	var mem *writerseeker.WriterSeeker
	if !ok {
		mem = &writerseeker.WriterSeeker{}
		ws = mem
	}

	enc := aiff.NewEncoder(ws, sampleRate, bitDepth, len(channels))
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("aiff: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: close: %w", err)
	}

	if mem != nil {
		if _, err := io.Copy(w, mem.Reader()); err != nil {
			return fmt.Errorf("aiff: write: %w", err)
		}
	}
	return nil
}

// Info describes a decoded AIFF file.
type Info struct {
	SampleRate int
	Channels   int
	Samples    []int // interleaved
}

// Read decodes a complete 16-bit AIFF file. Inputs that cannot seek are
// read into memory first.
func Read(r io.Reader) (*Info, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("aiff: read: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.BitDepth != bitDepth {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	info := &Info{SampleRate: format.SampleRate, Channels: format.NumChannels}
	buf := &goaudio.IntBuffer{Format: format, Data: make([]int, readSize*format.NumChannels)}
	for {
		n, err := dec.PCMBuffer(buf)
		info.Samples = append(info.Samples, buf.Data[:n]...)
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return info, nil
		}
		if err != nil {
			return info, fmt.Errorf("aiff: read pcm: %w", err)
		}
	}
}
