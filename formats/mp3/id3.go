// SPDX-License-Identifier: EPL-2.0

package mp3

const (
	id3v2HeaderSize = 10
	id3v2Footer     = 0x10
	id3v1Size       = 128
)

// Tag tells where audio frames start after any leading ID3v2 tags.
type Tag struct {
	Valid   bool // at least one ID3v2 tag was found
	Version [2]byte
	Offset  int // first byte after the tags
}

// syncsafe decodes a 28 bit ID3v2 size stored as four 7 bit groups.
// ok is false if any byte has its top bit set.
func syncsafe(b []byte) (int, bool) {
	n := 0
	for _, c := range b[:4] {
		if c&0x80 != 0 {
			return 0, false
		}
		n = n<<7 | int(c)
	}
	return n, true
}

// ID3Offset locates the end of the ID3v2 tags at the start of data.
// Consecutive tags are skipped as a whole; a malformed tag header ends the
// scan where it starts.
func ID3Offset(data []byte) Tag {
	var t Tag
	for len(data)-t.Offset >= id3v2HeaderSize {
		b := data[t.Offset:]
		if string(b[:3]) != "ID3" || b[3] == 0xFF || b[4] == 0xFF {
			break
		}
		size, ok := syncsafe(b[6:10])
		if !ok {
			break
		}

		size += id3v2HeaderSize
		if b[5]&id3v2Footer != 0 {
			size += id3v2HeaderSize
		}
		if !t.Valid {
			t.Version = [2]byte{b[3], b[4]}
		}
		t.Valid = true
		t.Offset = min(t.Offset+size, len(data))
	}
	return t
}

// AudioEnd returns the length of data without a trailing ID3v1 tag.
func AudioEnd(data []byte) int {
	if n := len(data); n >= id3v1Size && string(data[n-id3v1Size:n-id3v1Size+3]) == "TAG" {
		return n - id3v1Size
	}
	return len(data)
}
