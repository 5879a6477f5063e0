// SPDX-License-Identifier: EPL-2.0

package threepm

import "errors"

var (
	// ErrNoSamples indicates there is nothing to export.
	ErrNoSamples = errors.New("threepm: no samples")
	// ErrChannelMismatch indicates frames with different channel counts.
	ErrChannelMismatch = errors.New("threepm: channel count changes between frames")
	// ErrUnknownFormat indicates an export format that is not supported.
	ErrUnknownFormat = errors.New("threepm: unknown export format")
)
