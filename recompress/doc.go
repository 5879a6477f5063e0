// SPDX-License-Identifier: EPL-2.0

// Package recompress re-encodes MPEG Layer III audio as 3PM and back.
//
// Encoding parses every frame down to its quantized spectral samples,
// serializes them as little-endian int16 values and replaces the Huffman
// coded main data with an entropy coded payload. Headers and side
// information are kept byte for byte, so Unpack recovers exactly the
// samples the MP3 decoder would have seen.
//
//	r, _ := recompress.New(recompress.DefaultConfig())
//	res, err := r.Run(mp3Data, mp3.ID3Offset(mp3Data).Offset)
//	...
//	frames, err := r.Unpack(res.Data)
//
// The run is fail-soft: a frame that cannot be fully decoded is written
// with the samples recovered so far and reported in Result.Failures.
//
// Configuration can come from a dotenv file and the environment through
// LoadConfig, and progress is reported through a logrus logger and
// optional prometheus collectors.
package recompress
