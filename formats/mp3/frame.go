// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
)

// Frame is one parsed Layer III frame with its decoded spectra.
type Frame struct {
	Index    int // position among the frames with a valid header
	Record   FrameRecord
	Header   Header
	SideInfo *SideInfo
	Spectra  *Spectra
	Skipped  int   // junk bytes skipped to reach this frame's sync word
	Err      error // main data decode failure; Spectra is still usable

	header []byte
}

// HeaderBytes returns the original header, including the CRC if present.
func (f *Frame) HeaderBytes() []byte { return f.header }

// FrameError reports a frame that could not be used at all.
type FrameError struct {
	Index  int
	Offset int
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Parser walks the frames of an MPEG audio buffer in order, keeping the
// bit reservoir history needed to decode each one. A Parser is not safe
// for concurrent use; frames must be decoded in stream order.
type Parser struct {
	data    []byte
	pos     int
	end     int
	index   int
	skipped int
	res     Reservoir
}

// NewParser returns a Parser that starts at offset, usually the value
// reported by ID3Offset. A trailing ID3v1 tag is excluded.
func NewParser(data []byte, offset int) *Parser {
	end := AudioEnd(data)
	return &Parser{
		data: data,
		pos:  min(max(offset, 0), end),
		end:  end,
	}
}

// Offset is the byte position of the next header search.
func (p *Parser) Offset() int { return p.pos }

// Next returns the next frame.
//
// Returns:
//   - *Frame: the frame; its Err field carries main data failures that
//     still leave a best-effort spectrum
//   - error: io.EOF when no header remains, or a *FrameError for a frame
//     that had to be skipped entirely. Parsing may continue after a
//     *FrameError.
func (p *Parser) Next() (*Frame, error) {
	h, err := p.sync()
	if err != nil {
		return nil, err
	}

	off := p.pos
	size := h.FrameSize()
	idx := p.index
	skipped := p.skipped

	p.index++
	p.skipped = 0
	p.pos += size

	if h.Layer != 3 {
		return nil, &FrameError{Index: idx, Offset: off, Err: fmt.Errorf("%w: layer %d", ErrUnsupportedLayer, h.Layer)}
	}

	si, err := ParseSideInfo(p.data[off:p.end], h)
	if err != nil {
		return nil, &FrameError{Index: idx, Offset: off, Err: err}
	}

	f := &Frame{
		Index:    idx,
		Record:   FrameRecord{Offset: off, Size: size, Prefix: h.PrefixSize()},
		Header:   h,
		SideInfo: si,
		Skipped:  skipped,
		header:   p.data[off : off+h.HeaderSize()],
	}

	main, err := p.res.Resolve(p.data[:p.end], f.Record, si.MainDataBegin)
	p.res.Push(f.Record)
	if err != nil {
		f.Spectra = &Spectra{Granules: si.Granules(), Channels: si.Channels()}
		f.Err = err
		return f, nil
	}

	f.Spectra, f.Err = DecodeMainData(main, h, si)
	return f, nil
}

// sync positions the parser on the next valid header.
func (p *Parser) sync() (Header, error) {
	for p.pos+headerBytes <= p.end {
		h, err := ParseHeader(p.data[p.pos:p.end])
		if err == nil {
			return h, nil
		}

		next := FindSync(p.data[:p.end], p.pos+1)
		if next < 0 {
			break
		}
		p.skipped += next - p.pos
		p.pos = next
	}

	p.skipped += max(p.end-p.pos, 0)
	p.pos = p.end
	return Header{}, io.EOF
}
