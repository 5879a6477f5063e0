// SPDX-License-Identifier: EPL-2.0

package entropy

import (
	"fmt"

	"github.com/ik5/threepm/internal/bits"
)

// Adaptive multi-symbol arithmetic coder after Witten, Neal and Cleary.
// Each byte is one of 256 symbols plus an end symbol; frequencies adapt
// as symbols are coded, and symbols are kept ordered by frequency so the
// linear decode search stays short.

const (
	codeBits    = 16
	topValue    = 1<<codeBits - 1
	firstQuart  = topValue/4 + 1
	half        = 2 * firstQuart
	thirdQuart  = 3 * firstQuart
	maxFreq     = 1<<14 - 1
	charCount   = 256
	endSymbol   = charCount + 1
	symbolCount = charCount + 1
)

// symbolModel is the adaptive frequency table. Index 0 is unused so that
// cum[i-1] and cum[i] bound symbol i.
type symbolModel struct {
	charToIndex [charCount]int
	indexToChar [symbolCount + 1]int
	freq        [symbolCount + 1]int
	cum         [symbolCount + 1]int
}

func newSymbolModel() *symbolModel {
	m := &symbolModel{}
	for i := range charCount {
		m.charToIndex[i] = i + 1
		m.indexToChar[i+1] = i
	}
	for i := range symbolCount + 1 {
		m.freq[i] = 1
		m.cum[i] = symbolCount - i
	}
	m.freq[0] = 0
	return m
}

func (m *symbolModel) update(symbol int) {
	if m.cum[0] == maxFreq {
		cum := 0
		for i := symbolCount; i >= 0; i-- {
			m.freq[i] = (m.freq[i] + 1) / 2
			m.cum[i] = cum
			cum += m.freq[i]
		}
	}

	i := symbol
	for m.freq[i] == m.freq[i-1] {
		i--
	}
	if i < symbol {
		a, b := m.indexToChar[i], m.indexToChar[symbol]
		m.indexToChar[i], m.indexToChar[symbol] = b, a
		m.charToIndex[a], m.charToIndex[b] = symbol, i
	}

	m.freq[i]++
	for i > 0 {
		i--
		m.cum[i]++
	}
}

// SymbolEncode compresses data with the adaptive multi-symbol coder.
func SymbolEncode(data []byte) []byte {
	var (
		w       bits.Writer
		m       = newSymbolModel()
		low     = 0
		high    = topValue
		pending = 0
	)

	emit := func(bit int) {
		w.Write(uint32(bit), 1)
		for ; pending > 0; pending-- {
			w.Write(uint32(1-bit), 1)
		}
	}

	encode := func(symbol int) {
		r := high - low + 1
		high = low + r*m.cum[symbol-1]/m.cum[0] - 1
		low += r * m.cum[symbol] / m.cum[0]

		for {
			switch {
			case high < half:
				emit(0)
			case low >= half:
				emit(1)
				low -= half
				high -= half
			case low >= firstQuart && high < thirdQuart:
				pending++
				low -= firstQuart
				high -= firstQuart
			default:
				return
			}
			low <<= 1
			high = high<<1 | 1
		}
	}

	for _, c := range data {
		symbol := m.charToIndex[c]
		encode(symbol)
		m.update(symbol)
	}
	encode(endSymbol)

	pending++
	if low < firstQuart {
		emit(0)
	} else {
		emit(1)
	}
	return w.Bytes()
}

// SymbolDecode reverses SymbolEncode. It fails with ErrCorruptStream if
// the end symbol is not found before the input runs out.
func SymbolDecode(data []byte) ([]byte, error) {
	return SymbolDecodeN(data, -1)
}

// SymbolDecodeN is SymbolDecode with the output capped at limit bytes; a
// negative limit means no cap.
func SymbolDecodeN(data []byte, limit int) ([]byte, error) {
	r := bits.NewReader(data)
	m := newSymbolModel()

	low, high := 0, topValue
	value := int(r.Read(codeBits))

	var out []byte
	for {
		// Past the end the reader yields zeros; a sound stream needs at
		// most codeBits of them.
		if r.Pos() > r.Len()+codeBits {
			return out, fmt.Errorf("%w: no end symbol after %d bytes", ErrCorruptStream, len(out))
		}

		rng := high - low + 1
		cum := ((value-low+1)*m.cum[0] - 1) / rng

		symbol := 1
		for symbol < symbolCount && m.cum[symbol] > cum {
			symbol++
		}

		high = low + rng*m.cum[symbol-1]/m.cum[0] - 1
		low += rng * m.cum[symbol] / m.cum[0]

	renorm:
		for {
			switch {
			case high < half:
			case low >= half:
				value -= half
				low -= half
				high -= half
			case low >= firstQuart && high < thirdQuart:
				value -= firstQuart
				low -= firstQuart
				high -= firstQuart
			default:
				break renorm
			}
			low <<= 1
			high = high<<1 | 1
			value = value<<1 | int(r.Read(1))
		}

		if symbol == endSymbol {
			return out, nil
		}
		if limit >= 0 && len(out) == limit {
			return out, fmt.Errorf("%w: more than %d bytes", ErrCorruptStream, limit)
		}
		c := m.indexToChar[symbol]
		out = append(out, byte(c))
		m.update(symbol)
	}
}
