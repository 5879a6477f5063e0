// SPDX-License-Identifier: EPL-2.0

// Package wav writes 16-bit PCM WAV files through github.com/go-audio/wav.
//
// It is used for two kinds of output: PCM rendered from an MP3, and
// quantized MP3 spectra laid out as one channel per audio channel so
// they can be inspected in any audio tool.
//
//	f, _ := os.Create("out.wav")
//	err := wav.Write(f, 44100, [][]int16{left, right})
//
// Write accepts any io.Writer. The go-audio encoder patches the header
// sizes at the end, so writers that cannot seek get the file through an
// in-memory buffer. Read decodes a file back, mostly for verification.
package wav
