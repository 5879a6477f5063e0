// SPDX-License-Identifier: EPL-2.0

// Package threepm re-encodes MPEG audio Layer III files into 3PM, a
// smaller container that keeps every frame header, every side
// information block and every quantized spectral sample, so the
// original MP3 coding decisions survive intact.
//
// MP3 spends a fixed Huffman code on the quantized spectrum. 3PM decodes
// that spectrum and codes it again with an adaptive binary arithmetic
// coder whose statistics follow the frequency region of each sample,
// which is where most of the saving comes from.
//
// # Quick Start
//
//	data, _ := os.ReadFile("song.mp3")
//	res, err := threepm.Recompress(data, recompress.DefaultConfig())
//	if err != nil {
//	    // no MPEG frames, or empty input
//	}
//	os.WriteFile("song.3pm", res.Data, 0o644)
//
// Frames that do not decode cleanly do not stop the run. They are listed
// in Result.Failures and, when their side information was readable,
// still written with the samples recovered so far.
//
// # Going Back
//
// Unpack turns a 3PM stream back into the quantized sample matrix, one
// FrameSamples per frame:
//
//	frames, err := threepm.Unpack(res.Data, recompress.DefaultConfig())
//
// The matrix can be listened to, after a fashion, with Export, which
// writes it as a 16-bit WAV or AIFF file. RenderPCM decodes the source
// MP3 properly through github.com/hajimehoshi/go-mp3 for comparison.
//
// # Packages
//
//   - formats/mp3: frame headers, side information, bit reservoir and
//     Huffman decoding of the quantized spectrum
//   - entropy: the arithmetic coder and its context models
//   - container: the 3PM frame layout
//   - recompress: the frame loop, configuration, logging and metrics
//   - formats/wav, formats/aiff: file export
//
// The cmd/threepm command wraps all of this for the shell.
package threepm
