// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ToInt16 converts a normalized sample to 16 bit PCM, clamping values
// outside [-1,1].
func ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	}
	return int16(x * 32768)
}

// ReadInt16 drains src and returns its interleaved samples as 16 bit PCM.
//
// Parameters:
//   - src: the source to drain; it is not closed
//   - bufSize: samples read per call, a multiple of src.Channels()
//
// Returns:
//   - []int16: all samples, channels interleaved
//   - error: ErrInvalidBufSize, or the first read error other than io.EOF
func ReadInt16(src Source, bufSize int) ([]int16, error) {
	if bufSize <= 0 || bufSize%max(src.Channels(), 1) != 0 {
		return nil, fmt.Errorf("%w: %d for %d channels", ErrInvalidBufSize, bufSize, src.Channels())
	}

	pcm := make([]int16, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			return pcm, nil
		}
		if err != nil {
			return pcm, fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			return pcm, nil
		}
	}
}

// Deinterleave splits interleaved samples into one slice per channel.
// A trailing partial frame is dropped.
func Deinterleave(pcm []int16, channels int) [][]int16 {
	if channels <= 0 {
		return nil
	}
	frames := len(pcm) / channels
	out := make([][]int16, channels)
	for ch := range out {
		out[ch] = make([]int16, frames)
	}
	for i := range frames {
		for ch := range channels {
			out[ch][i] = pcm[i*channels+ch]
		}
	}
	return out
}
