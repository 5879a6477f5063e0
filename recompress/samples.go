// SPDX-License-Identifier: EPL-2.0

package recompress

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/threepm/entropy"
	"github.com/ik5/threepm/formats/mp3"
)

// FrameSamples are the quantized spectral samples of one frame, indexed
// [granule][channel][sample].
type FrameSamples struct {
	Granules int
	Channels int
	Data     [2][2][mp3.GranuleSamples]int16
}

// samplesFromSpectra copies the decoded spectra of a frame.
func samplesFromSpectra(s *mp3.Spectra) FrameSamples {
	fs := FrameSamples{Granules: s.Granules, Channels: s.Channels}
	for gr := range s.Granules {
		for ch := range s.Channels {
			for i, v := range s.At(gr, ch).Samples {
				fs.Data[gr][ch][i] = int16(v)
			}
		}
	}
	return fs
}

// sampleBytes is the serialized length of a frame's samples.
func sampleBytes(granules, channels int) int {
	return granules * channels * mp3.GranuleSamples * entropy.SampleBytes
}

// size is the serialized length in bytes.
func (fs *FrameSamples) size() int {
	return sampleBytes(fs.Granules, fs.Channels)
}

// appendBytes serializes the samples as little-endian int16, granule by
// granule and channel by channel.
func (fs *FrameSamples) appendBytes(dst []byte) []byte {
	for gr := range fs.Granules {
		for ch := range fs.Channels {
			for _, v := range fs.Data[gr][ch] {
				dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
			}
		}
	}
	return dst
}

// parseSamples reverses appendBytes for a frame with the given layout.
func parseSamples(raw []byte, granules, channels int) (FrameSamples, error) {
	fs := FrameSamples{Granules: granules, Channels: channels}
	if len(raw) != fs.size() {
		return fs, fmt.Errorf("%w: %d bytes for %d granules of %d channels", ErrPayloadSize, len(raw), granules, channels)
	}

	for gr := range granules {
		for ch := range channels {
			for i := range fs.Data[gr][ch] {
				fs.Data[gr][ch][i] = int16(binary.LittleEndian.Uint16(raw))
				raw = raw[2:]
			}
		}
	}
	return fs, nil
}

// Planar flattens the samples into one slice per channel, granules
// in order.
func (fs *FrameSamples) Planar() [][]int16 {
	out := make([][]int16, fs.Channels)
	for ch := range fs.Channels {
		out[ch] = make([]int16, 0, fs.Granules*mp3.GranuleSamples)
		for gr := range fs.Granules {
			out[ch] = append(out[ch], fs.Data[gr][ch][:]...)
		}
	}
	return out
}
