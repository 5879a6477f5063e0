// SPDX-License-Identifier: EPL-2.0

package entropy

// Codec compresses independent blocks. Every call starts from fresh
// statistics, so blocks can be decoded in any order.
type Codec interface {
	Encode(data []byte) []byte
	// Decode returns at most limit bytes, failing with ErrCorruptStream
	// when the block holds more. A negative limit means no cap.
	Decode(data []byte, limit int) ([]byte, error)
}

// BitCodec drives the binary coder with a new model per block.
type BitCodec struct {
	NewModel func() Model
}

func (c BitCodec) Encode(data []byte) []byte { return Encode(data, c.NewModel()) }

func (c BitCodec) Decode(data []byte, limit int) ([]byte, error) {
	return DecodeN(data, c.NewModel(), limit)
}

// NaiveCodec returns a BitCodec over NaiveContext.
func NaiveCodec() BitCodec {
	return BitCodec{NewModel: func() Model { return NewNaiveContext() }}
}

// RegionCodec returns a BitCodec over RegionContext.
func RegionCodec(regions, span int) (BitCodec, error) {
	if _, err := NewRegionContext(regions, span); err != nil {
		return BitCodec{}, err
	}

	return BitCodec{NewModel: func() Model {
		m, _ := NewRegionContext(regions, span)
		return m
	}}, nil
}

// SymbolCodec is the adaptive multi-symbol coder.
type SymbolCodec struct{}

func (SymbolCodec) Encode(data []byte) []byte { return SymbolEncode(data) }

func (SymbolCodec) Decode(data []byte, limit int) ([]byte, error) {
	return SymbolDecodeN(data, limit)
}
