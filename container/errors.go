// SPDX-License-Identifier: EPL-2.0

package container

import "errors"

var (
	// ErrPayloadTooLarge indicates a payload does not fit the 16 bit
	// length field.
	ErrPayloadTooLarge = errors.New("3pm: payload too large")

	// ErrShortFrame indicates the stream ends inside a frame.
	ErrShortFrame = errors.New("3pm: truncated frame")

	// ErrInvalidHeader indicates a frame does not start with a usable
	// MPEG audio header.
	ErrInvalidHeader = errors.New("3pm: invalid frame header")
)
