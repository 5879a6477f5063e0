// SPDX-License-Identifier: EPL-2.0

package entropy

import "errors"

var (
	// ErrInvalidRegions is returned for a region model that cannot split
	// its span into the requested number of regions.
	ErrInvalidRegions = errors.New("entropy: invalid region layout")

	// ErrCorruptStream is returned when a stream ends without its end
	// marker or decodes to more bytes than the caller allowed.
	ErrCorruptStream = errors.New("entropy: corrupt stream")
)
