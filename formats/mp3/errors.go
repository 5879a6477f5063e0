// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrame reports a header with a bad sync word or a reserved field.
	ErrInvalidFrame = errors.New("mp3: invalid frame")
	// ErrTruncatedInput reports a field that runs past the end of the buffer.
	ErrTruncatedInput = errors.New("mp3: truncated input")
	// ErrHuffmanDecode reports a codeword with no match in the selected table.
	ErrHuffmanDecode = errors.New("mp3: huffman decode failure")
	// ErrReservoirInconsistency reports a main_data_begin reaching further
	// back than the frame history can supply.
	ErrReservoirInconsistency = errors.New("mp3: bit reservoir inconsistency")
	// ErrUnsupportedLayer reports a valid Layer I or II frame.
	ErrUnsupportedLayer = errors.New("mp3: only layer III is supported")
	// ErrNoFrames reports a buffer without a single valid frame header.
	ErrNoFrames = errors.New("mp3: no frames found")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFrame, fmt.Sprintf(format, args...))
}
