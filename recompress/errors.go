// SPDX-License-Identifier: EPL-2.0

package recompress

import (
	"errors"

	"github.com/ik5/threepm/formats/mp3"
)

var (
	// ErrEmptyInput is returned when there is no audio data after the
	// start offset.
	ErrEmptyInput = errors.New("recompress: empty input")

	// ErrNoFrames is returned when no usable Layer III frame was found.
	ErrNoFrames = mp3.ErrNoFrames

	// ErrInvalidConfig is returned for configuration values that cannot
	// be used.
	ErrInvalidConfig = errors.New("recompress: invalid config")

	// ErrPayloadSize is returned by Unpack when a payload decodes to the
	// wrong number of samples.
	ErrPayloadSize = errors.New("recompress: payload size mismatch")
)
