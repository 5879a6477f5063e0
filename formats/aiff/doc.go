// SPDX-License-Identifier: EPL-2.0

// Package aiff writes and reads 16-bit AIFF files through
// github.com/go-audio/aiff.
//
// It mirrors formats/wav for users on platforms where AIFF is the
// native uncompressed format:
//
//	f, _ := os.Create("out.aiff")
//	err := aiff.Write(f, 44100, [][]int16{left, right})
//
// AIFF stores samples big-endian and the sample rate as an 80-bit
// float; the go-audio encoder handles both. Read exists mostly to verify
// exported files and rejects anything other than 16-bit PCM with
// ErrOnlyPCM16bitSupported.
package aiff
