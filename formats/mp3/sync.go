// SPDX-License-Identifier: EPL-2.0

package mp3

// FindSync returns the offset of the first valid frame header at or after
// from, or -1 if there is none.
func FindSync(data []byte, from int) int {
	for i := max(from, 0); i+headerBytes <= len(data); i++ {
		if data[i] != 0xFF || data[i+1]&0xE0 != 0xE0 {
			continue
		}
		if _, err := ParseHeader(data[i:]); err == nil {
			return i
		}
	}
	return -1
}
