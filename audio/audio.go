// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a stream of interleaved PCM samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per sample frame.
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns
	// how many values were written. n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an encoded input.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
