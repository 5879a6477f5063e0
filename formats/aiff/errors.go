// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF file.
	ErrNotAiffFile = errors.New("aiff: not an AIFF file")
	// ErrOnlyPCM16bitSupported indicates a bit depth other than 16.
	ErrOnlyPCM16bitSupported = errors.New("aiff: only 16-bit PCM is supported")
	// ErrUnsupportedAiffLayout indicates a file without a usable COMM chunk.
	ErrUnsupportedAiffLayout = errors.New("aiff: unsupported layout")
	// ErrInvalidSampleRate indicates a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("aiff: invalid sample rate")
)
