// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"testing"

	"github.com/ik5/threepm/internal/bits"
)

type rawHeader struct {
	version   uint32
	layerBits uint32 // 4 - layer
	noCRC     bool
	bitrate   uint32
	sampling  uint32
	padding   bool
	mode      uint32
	modeExt   uint32
}

func (h rawHeader) bytes() []byte {
	var w bits.Writer
	w.Write(0x7FF, 11)
	w.Write(h.version, 2)
	w.Write(h.layerBits, 2)
	w.WriteFlag(h.noCRC)
	w.Write(h.bitrate, 4)
	w.Write(h.sampling, 2)
	w.WriteFlag(h.padding)
	w.Write(0, 1)
	w.Write(h.mode, 2)
	w.Write(h.modeExt, 2)
	w.Write(0, 4)
	return w.Bytes()
}

func TestParseHeader_FrameSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  rawHeader
		want int
	}{
		{"MPEG-1 L3 128k 44.1", rawHeader{version: 3, layerBits: 1, noCRC: true, bitrate: 9}, 417},
		{"MPEG-1 L3 128k 44.1 padded", rawHeader{version: 3, layerBits: 1, noCRC: true, bitrate: 9, padding: true}, 418},
		{"MPEG-1 L3 320k 48", rawHeader{version: 3, layerBits: 1, bitrate: 14, sampling: 1}, 960},
		{"MPEG-1 L3 32k 32", rawHeader{version: 3, layerBits: 1, bitrate: 1, sampling: 2}, 144},
		{"MPEG-2 L3 64k 22.05", rawHeader{version: 2, layerBits: 1, bitrate: 8}, 208},
		{"MPEG-2.5 L3 8k 8", rawHeader{version: 0, layerBits: 1, bitrate: 1, sampling: 2}, 72},
		{"MPEG-1 L2 192k 48", rawHeader{version: 3, layerBits: 2, bitrate: 10, sampling: 1}, 576},
		{"MPEG-1 L1 32k 44.1 padded", rawHeader{version: 3, layerBits: 3, bitrate: 1, padding: true}, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := ParseHeader(tt.raw.bytes())
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}
			if got := h.FrameSize(); got != tt.want {
				t.Errorf("FrameSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseHeader_Fields(t *testing.T) {
	t.Parallel()

	h, err := ParseHeader(rawHeader{version: 3, layerBits: 1, bitrate: 9, mode: 1, modeExt: 3}.bytes())
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if h.Version != Version1 || h.Layer != 3 {
		t.Errorf("version/layer = %v/%d, want MPEG-1/3", h.Version, h.Layer)
	}
	if !h.CRC {
		t.Error("CRC = false, want true when the protection bit is 0")
	}
	if h.Bitrate != 128000 || h.SampleRate != 44100 {
		t.Errorf("bitrate/rate = %d/%d, want 128000/44100", h.Bitrate, h.SampleRate)
	}
	if h.Mode != JointStereo || !h.IntensityStereo() || !h.MidSideStereo() {
		t.Errorf("mode = %v ext %d, want joint stereo with both extensions", h.Mode, h.ModeExtension)
	}
	if h.Channels() != 2 || h.Granules() != 2 {
		t.Errorf("channels/granules = %d/%d, want 2/2", h.Channels(), h.Granules())
	}
	if h.HeaderSize() != 6 || h.SideInfoSize() != 32 || h.PrefixSize() != 38 {
		t.Errorf("sizes = %d/%d/%d, want 6/32/38", h.HeaderSize(), h.SideInfoSize(), h.PrefixSize())
	}
}

func TestHeader_SideInfoSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version Version
		mode    ChannelMode
		want    int
	}{
		{Version1, Mono, 17},
		{Version1, Stereo, 32},
		{Version1, DualChannel, 32},
		{Version2, Mono, 9},
		{Version25, JointStereo, 17},
	}

	for _, tt := range tests {
		h := Header{Version: tt.version, Layer: 3, Mode: tt.mode}
		if got := h.SideInfoSize(); got != tt.want {
			t.Errorf("SideInfoSize(%v, %v) = %d, want %d", tt.version, tt.mode, got, tt.want)
		}
	}

	if got := (Header{Version: Version1, Layer: 2}).SideInfoSize(); got != 0 {
		t.Errorf("SideInfoSize(layer 2) = %d, want 0", got)
	}
}

func TestParseHeader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", []byte{0xFF, 0xFB, 0x90}, ErrTruncatedInput},
		{"bad sync", []byte{0xFF, 0x1B, 0x90, 0x64}, ErrInvalidFrame},
		{"reserved version", rawHeader{version: 1, layerBits: 1, bitrate: 9}.bytes(), ErrInvalidFrame},
		{"reserved layer", rawHeader{version: 3, layerBits: 0, bitrate: 9}.bytes(), ErrInvalidFrame},
		{"free format", rawHeader{version: 3, layerBits: 1, bitrate: 0}.bytes(), ErrInvalidFrame},
		{"bad bitrate", rawHeader{version: 3, layerBits: 1, bitrate: 15}.bytes(), ErrInvalidFrame},
		{"reserved rate", rawHeader{version: 3, layerBits: 1, bitrate: 9, sampling: 3}.bytes(), ErrInvalidFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseHeader(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("ParseHeader() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFindSync(t *testing.T) {
	t.Parallel()

	frame := rawHeader{version: 3, layerBits: 1, noCRC: true, bitrate: 9}.bytes()
	data := append([]byte{0x00, 0xFF, 0xE0, 0x12, 0xFF}, frame...)

	if got := FindSync(data, 0); got != 5 {
		t.Errorf("FindSync() = %d, want 5", got)
	}
	if got := FindSync(data, 6); got != -1 {
		t.Errorf("FindSync(after header) = %d, want -1", got)
	}
	if got := FindSync(nil, 0); got != -1 {
		t.Errorf("FindSync(nil) = %d, want -1", got)
	}
}
