// SPDX-License-Identifier: EPL-2.0

package mp3

import "testing"

func id3Header(size int, flags byte) []byte {
	return []byte{'I', 'D', '3', 4, 0, flags,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F), byte(size >> 7 & 0x7F), byte(size & 0x7F)}
}

func TestID3Offset(t *testing.T) {
	t.Parallel()

	withTag := append(id3Header(300, 0), make([]byte, 300)...)
	withFooter := append(id3Header(20, id3v2Footer), make([]byte, 40)...)
	twoTags := append(append(id3Header(5, 0), make([]byte, 5)...), append(id3Header(7, 0), make([]byte, 7)...)...)
	badSize := id3Header(0, 0)
	badSize[7] = 0x80

	tests := []struct {
		name   string
		data   []byte
		valid  bool
		offset int
	}{
		{"none", []byte{0xFF, 0xFB, 0x90, 0x64, 0, 0, 0, 0, 0, 0, 0}, false, 0},
		{"short", []byte("ID3"), false, 0},
		{"tag", withTag, true, 310},
		{"footer", withFooter, true, 40},
		{"two tags", twoTags, true, 32},
		{"bad syncsafe", badSize, false, 0},
		{"size past end", id3Header(1000, 0), true, 10},
	}

	for _, tt := range tests {
		got := ID3Offset(tt.data)
		if got.Valid != tt.valid || got.Offset != tt.offset {
			t.Errorf("%s: ID3Offset() = {%v %d}, want {%v %d}", tt.name, got.Valid, got.Offset, tt.valid, tt.offset)
		}
	}

	if v := ID3Offset(withTag).Version; v != [2]byte{4, 0} {
		t.Errorf("Version = %v, want [4 0]", v)
	}
}

func TestAudioEnd(t *testing.T) {
	t.Parallel()

	data := make([]byte, 500)
	if got := AudioEnd(data); got != 500 {
		t.Errorf("AudioEnd(no tag) = %d, want 500", got)
	}

	copy(data[500-128:], "TAG")
	if got := AudioEnd(data); got != 372 {
		t.Errorf("AudioEnd(tag) = %d, want 372", got)
	}

	if got := AudioEnd([]byte("TAG")); got != 3 {
		t.Errorf("AudioEnd(short) = %d, want 3", got)
	}
}
