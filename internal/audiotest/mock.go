// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides PCM sources for tests.
package audiotest

import (
	"errors"
	"io"
)

// MockSource generates samples from a function of frame index and
// channel. It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame, channel int) float32
	failAfter  int // frames before ReadSamples fails; negative disables
	closed     bool
}

// ErrMockRead is returned by sources built with FailAfter.
var ErrMockRead = errors.New("audiotest: read failed")

// NewMockSource returns a source of frames frames.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
		failAfter:  -1,
	}
}

// NewSilentSource returns a source of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewPCMSource replays interleaved 16 bit samples exactly, so a round
// trip through float32 and back is lossless.
func NewPCMSource(sampleRate, channels int, pcm []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(pcm)/channels, func(frame, ch int) float32 {
		return float32(pcm[frame*channels+ch]) / 32768
	})
}

// FailAfter makes ReadSamples return ErrMockRead once frames frames have
// been produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAfter >= 0 {
		n = min(n, m.failAfter-m.generated)
	}
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
