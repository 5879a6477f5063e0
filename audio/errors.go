// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidBufSize indicates a read size that does not hold whole frames.
	ErrInvalidBufSize = errors.New("audio: buffer size must be a positive multiple of channels")
)
