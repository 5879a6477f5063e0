// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

type huffmanCode struct {
	code   uint32
	length uint8
	x, y   uint8
}

// bigValueTable is one of the 32 table_select choices.
type bigValueTable struct {
	codes   []huffmanCode
	linbits uint
	valid   bool
}

// bigValueTables is indexed by table_select. Table 0 decodes to zeros
// without reading; tables 4 and 14 are not defined.
var bigValueTables = [32]bigValueTable{
	0: {valid: true},
	1: {codes: hcodes1, valid: true},
	2: {codes: hcodes2, valid: true},
	3: {codes: hcodes3, valid: true},
	5: {codes: hcodes5, valid: true},
	6: {codes: hcodes6, valid: true},
	7: {codes: hcodes7, valid: true},
	8: {codes: hcodes8, valid: true},
	9: {codes: hcodes9, valid: true},
	10: {codes: hcodes10, valid: true},
	11: {codes: hcodes11, valid: true},
	12: {codes: hcodes12, valid: true},
	13: {codes: hcodes13, valid: true},
	15: {codes: hcodes15, valid: true},
	16: {codes: hcodes16, linbits: 1, valid: true},
	17: {codes: hcodes16, linbits: 2, valid: true},
	18: {codes: hcodes16, linbits: 3, valid: true},
	19: {codes: hcodes16, linbits: 4, valid: true},
	20: {codes: hcodes16, linbits: 6, valid: true},
	21: {codes: hcodes16, linbits: 8, valid: true},
	22: {codes: hcodes16, linbits: 10, valid: true},
	23: {codes: hcodes16, linbits: 13, valid: true},
	24: {codes: hcodes24, linbits: 4, valid: true},
	25: {codes: hcodes24, linbits: 5, valid: true},
	26: {codes: hcodes24, linbits: 6, valid: true},
	27: {codes: hcodes24, linbits: 7, valid: true},
	28: {codes: hcodes24, linbits: 8, valid: true},
	29: {codes: hcodes24, linbits: 9, valid: true},
	30: {codes: hcodes24, linbits: 11, valid: true},
	31: {codes: hcodes24, linbits: 13, valid: true},
}

// match finds the codeword at the cursor by longest prefix comparison
// against a 32 bit peek and consumes it.
func match(r *bits.Reader, codes []huffmanCode) (huffmanCode, bool) {
	peek := r.Peek(bits.MaxRead)
	for _, c := range codes {
		if peek>>(32-uint(c.length)) == c.code {
			r.Skip(uint(c.length))
			return c, true
		}
	}
	return huffmanCode{}, false
}

// decodePair reads one big value pair with its escapes and signs.
func decodePair(r *bits.Reader, table int) (int, int, error) {
	t := &bigValueTables[table]
	if !t.valid {
		return 0, 0, fmt.Errorf("%w: table %d is not defined", ErrHuffmanDecode, table)
	}
	if t.codes == nil {
		return 0, 0, nil
	}

	c, ok := match(r, t.codes)
	if !ok {
		return 0, 0, fmt.Errorf("%w: no codeword in table %d at bit %d", ErrHuffmanDecode, table, r.Pos())
	}

	x := magnitude(r, int(c.x), t.linbits)
	y := magnitude(r, int(c.y), t.linbits)
	return x, y, nil
}

func magnitude(r *bits.Reader, v int, linbits uint) int {
	if linbits > 0 && v == 15 {
		v += int(r.Read(linbits))
	}
	if v != 0 && r.ReadFlag() {
		v = -v
	}
	return v
}

// decodeQuad reads one count1 quadruple v, w, x, y.
func decodeQuad(r *bits.Reader, tableB bool) ([4]int, error) {
	var value uint32
	if tableB {
		value = 15 - r.Read(4)
	} else {
		c, ok := match(r, quadTableA)
		if !ok {
			return [4]int{}, fmt.Errorf("%w: no count1 codeword at bit %d", ErrHuffmanDecode, r.Pos())
		}
		value = uint32(c.y)
	}

	var q [4]int
	for i := range 4 {
		if value>>(3-uint(i))&1 == 0 {
			continue
		}
		q[i] = 1
		if r.ReadFlag() {
			q[i] = -1
		}
	}
	return q, nil
}
