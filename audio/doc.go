// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM plumbing shared by the format packages.
//
// The MPEG re-encoder itself never produces PCM: it works on quantized
// spectral values. PCM only appears when a source MP3 is rendered to WAV
// for listening or comparison, and this package keeps that path small.
//
// # Source Interface
//
// A Source yields interleaved float32 samples in [-1,1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// formats/mp3.Decoder returns one backed by github.com/hajimehoshi/go-mp3.
//
// # Collecting PCM
//
// ReadInt16 drains a Source into 16 bit samples ready for formats/wav:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	pcm, err := audio.ReadInt16(src, 4096)
//
// Deinterleave turns the result into one slice per channel.
package audio
