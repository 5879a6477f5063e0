// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNoChannels indicates there is no channel to write.
	ErrNoChannels = errors.New("wav: no channels")
	// ErrChannelLength indicates channels of different lengths.
	ErrChannelLength = errors.New("wav: channels differ in length")
	// ErrInvalidSampleRate indicates a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("wav: invalid sample rate")
	// ErrNotWavFile indicates the input is not a RIFF/WAVE file.
	ErrNotWavFile = errors.New("wav: not a WAV file")
)
