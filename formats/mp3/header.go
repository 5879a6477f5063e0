// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Version is the MPEG audio version as stored in header bits 20:19.
type Version uint8

const (
	Version25       Version = 0
	versionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "MPEG-1"
	case Version2:
		return "MPEG-2"
	case Version25:
		return "MPEG-2.5"
	}
	return "reserved"
}

// ChannelMode is the header channel mode.
type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	}
	return "mono"
}

const (
	syncMask = 0xFFE00000

	// headerBytes is the fixed header, crcBytes the optional checksum after it.
	headerBytes = 4
	crcBytes    = 2

	// Samples per granule and channel.
	GranuleSamples = 576
)

// Header is a decoded MPEG audio frame header. It is a plain value built
// from the first four bytes of each frame and never changed afterwards.
type Header struct {
	Version       Version
	Layer         int
	CRC           bool // a 16 bit checksum follows the header
	BitrateIndex  int
	Bitrate       int // bits per second
	SamplingIndex int
	SampleRate    int // Hz
	Padding       bool
	Private       bool
	Mode          ChannelMode
	ModeExtension uint8
	Copyright     bool
	Original      bool
	Emphasis      uint8
}

// ParseHeader decodes the four byte frame header at the start of b.
//
// Parameters:
//   - b: the frame bytes, at least four of them
//
// Returns:
//   - Header: the decoded header
//   - error: ErrTruncatedInput if b is shorter than four bytes, or
//     ErrInvalidFrame for a bad sync word or a reserved field
func ParseHeader(b []byte) (Header, error) {
	if len(b) < headerBytes {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedInput, headerBytes, len(b))
	}

	raw := bits.Read(b, 0, 32)
	if raw&syncMask != syncMask {
		return Header{}, invalidf("bad sync 0x%08x", raw)
	}

	r := bits.NewReaderAt(b, 11)
	h := Header{
		Version: Version(r.Read(2)),
		Layer:   4 - int(r.Read(2)),
		CRC:     r.Read(1) == 0,
	}
	h.BitrateIndex = int(r.Read(4))
	h.SamplingIndex = int(r.Read(2))
	h.Padding = r.ReadFlag()
	h.Private = r.ReadFlag()
	h.Mode = ChannelMode(r.Read(2))
	h.ModeExtension = uint8(r.Read(2))
	h.Copyright = r.ReadFlag()
	h.Original = r.ReadFlag()
	h.Emphasis = uint8(r.Read(2))

	if h.Version == versionReserved {
		return Header{}, invalidf("reserved version")
	}
	if h.Layer == 4 {
		return Header{}, invalidf("reserved layer")
	}
	if h.BitrateIndex == 0 || h.BitrateIndex == 15 {
		return Header{}, invalidf("unsupported bitrate index %d", h.BitrateIndex)
	}
	if h.SamplingIndex == 3 {
		return Header{}, invalidf("reserved sampling rate index")
	}

	h.Bitrate = bitrates[h.lsfIndex()][h.Layer-1][h.BitrateIndex] * 1000
	h.SampleRate = samplingRates[h.Version][h.SamplingIndex]
	if h.Layer != 3 {
		h.ModeExtension = 0
	}

	return h, nil
}

// LSF reports whether the frame uses the low sampling frequency syntax
// of MPEG-2 and 2.5.
func (h Header) LSF() bool { return h.Version != Version1 }

func (h Header) lsfIndex() int {
	if h.LSF() {
		return 1
	}
	return 0
}

// Channels is 1 for mono frames and 2 otherwise.
func (h Header) Channels() int {
	if h.Mode == Mono {
		return 1
	}
	return 2
}

// Granules is the number of Layer III granules in a frame.
func (h Header) Granules() int {
	if h.LSF() {
		return 1
	}
	return 2
}

// SamplesPerFrame is the number of PCM samples per channel a frame covers.
func (h Header) SamplesPerFrame() int {
	switch h.Layer {
	case 1:
		return 384
	case 2:
		return 1152
	}
	return h.Granules() * GranuleSamples
}

// FrameSize is the length of the whole frame in bytes, header included.
func (h Header) FrameSize() int {
	if h.SampleRate == 0 {
		return 0
	}
	if h.Layer == 1 {
		size := 12 * h.Bitrate / h.SampleRate
		if h.Padding {
			size++
		}
		return size * 4
	}

	size := h.SamplesPerFrame() / 8 * h.Bitrate / h.SampleRate
	if h.Padding {
		size++
	}
	return size
}

// HeaderSize is 4, or 6 when a CRC follows the header.
func (h Header) HeaderSize() int {
	if h.CRC {
		return headerBytes + crcBytes
	}
	return headerBytes
}

// SideInfoSize is the Layer III side information length in bytes.
// It is zero for other layers.
func (h Header) SideInfoSize() int {
	if h.Layer != 3 {
		return 0
	}
	switch {
	case h.LSF() && h.Mode == Mono:
		return 9
	case h.LSF():
		return 17
	case h.Mode == Mono:
		return 17
	}
	return 32
}

// PrefixSize is the number of bytes in front of the main data:
// header, optional CRC and side information.
func (h Header) PrefixSize() int {
	return h.HeaderSize() + h.SideInfoSize()
}

// IntensityStereo reports whether the right channel is intensity coded.
func (h Header) IntensityStereo() bool {
	return h.Mode == JointStereo && h.ModeExtension&0x1 != 0
}

// MidSideStereo reports whether mid/side stereo is enabled.
func (h Header) MidSideStereo() bool {
	return h.Mode == JointStereo && h.ModeExtension&0x2 != 0
}

func (h Header) bands() *bandIndex {
	return &bandIndices[h.Version][h.SamplingIndex]
}

func (h Header) String() string {
	return fmt.Sprintf("%s layer %d, %d kbps, %d Hz, %s", h.Version, h.Layer, h.Bitrate/1000, h.SampleRate, h.Mode)
}
