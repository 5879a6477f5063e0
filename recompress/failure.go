// SPDX-License-Identifier: EPL-2.0

package recompress

import (
	"errors"
	"fmt"

	"github.com/ik5/threepm/formats/mp3"
)

// FailureKind classifies per frame failures.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureInvalidFrame
	FailureTruncated
	FailureHuffman
	FailureReservoir
	FailureLayer
)

var failureNames = [...]string{
	FailureOther:        "other",
	FailureInvalidFrame: "invalid_frame",
	FailureTruncated:    "truncated",
	FailureHuffman:      "huffman",
	FailureReservoir:    "reservoir",
	FailureLayer:        "layer",
}

func (k FailureKind) String() string {
	if k >= 0 && int(k) < len(failureNames) {
		return failureNames[k]
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// classify picks the most specific kind of err. A reservoir error wins
// over the truncation it usually causes.
func classify(err error) FailureKind {
	switch {
	case errors.Is(err, mp3.ErrReservoirInconsistency):
		return FailureReservoir
	case errors.Is(err, mp3.ErrUnsupportedLayer):
		return FailureLayer
	case errors.Is(err, mp3.ErrHuffmanDecode):
		return FailureHuffman
	case errors.Is(err, mp3.ErrTruncatedInput):
		return FailureTruncated
	case errors.Is(err, mp3.ErrInvalidFrame):
		return FailureInvalidFrame
	}
	return FailureOther
}

// Failure records a frame that did not decode cleanly.
type Failure struct {
	Index  int // frame index among valid headers
	Offset int // byte offset of the frame in the input
	Kind   FailureKind
	Err    error
	// Emitted is true when a best-effort frame was still written.
	Emitted bool
}

func (f Failure) Error() string {
	return fmt.Sprintf("frame %d at offset %d: %v", f.Index, f.Offset, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }
