// SPDX-License-Identifier: EPL-2.0

package mp3

import "fmt"

// HistoryDepth is the number of preceding frames kept for bit reservoir
// lookups. A 9 bit main_data_begin reaches back at most 511 bytes, which
// never spans more frames than this.
const HistoryDepth = 9

// FrameRecord locates one physical frame inside the input buffer.
type FrameRecord struct {
	Offset int // byte offset of the sync word
	Size   int // frame length in bytes
	Prefix int // header, CRC and side information bytes
}

// mainData returns the bounds of the frame's own main data region,
// clamped to a buffer of length n.
func (f FrameRecord) mainData(n int) (int, int) {
	start := min(f.Offset+f.Prefix, n)
	end := min(f.Offset+f.Size, n)
	return start, end
}

// Reservoir is a fixed depth ring of the frames that came before the
// current one. It is owned by a single decode pass.
type Reservoir struct {
	ring  [HistoryDepth]FrameRecord
	head  int // next slot to write
	count int
}

// Push records a frame after it has been processed. Once the ring is
// full the oldest record is evicted.
func (r *Reservoir) Push(f FrameRecord) {
	r.ring[r.head] = f
	r.head = (r.head + 1) % HistoryDepth
	if r.count < HistoryDepth {
		r.count++
	}
}

// Len is the number of frames currently held.
func (r *Reservoir) Len() int { return r.count }

// Reset forgets all frames.
func (r *Reservoir) Reset() {
	r.head = 0
	r.count = 0
}

// previous returns the i-th most recent frame, 0 being the newest.
func (r *Reservoir) previous(i int) FrameRecord {
	return r.ring[(r.head-1-i+2*HistoryDepth)%HistoryDepth]
}

// Resolve assembles the main data of cur. The bytes come from the file
// buffer data addressed by absolute offsets: the last mainDataBegin bytes
// of earlier frames' main data regions, oldest first, followed by the main
// data region of cur itself.
//
// Parameters:
//   - data: the whole input buffer
//   - cur: the frame being decoded
//   - mainDataBegin: the backward byte offset from its side information
//
// Returns:
//   - []byte: the contiguous main data of cur
//   - error: ErrReservoirInconsistency if the history is too short
func (r *Reservoir) Resolve(data []byte, cur FrameRecord, mainDataBegin int) ([]byte, error) {
	ownStart, ownEnd := cur.mainData(len(data))
	if mainDataBegin == 0 {
		return data[ownStart:ownEnd], nil
	}

	type span struct{ start, end int }
	var spans []span

	need := mainDataBegin
	for i := 0; need > 0; i++ {
		if i >= r.count {
			return nil, fmt.Errorf("%w: main_data_begin %d reaches past %d buffered frames (%d bytes short)",
				ErrReservoirInconsistency, mainDataBegin, r.count, need)
		}

		start, end := r.previous(i).mainData(len(data))
		if avail := end - start; need < avail {
			start = end - need
		}
		need -= end - start
		spans = append(spans, span{start, end})
	}

	out := make([]byte, 0, mainDataBegin+ownEnd-ownStart)
	for i := len(spans) - 1; i >= 0; i-- {
		out = append(out, data[spans[i].start:spans[i].end]...)
	}
	return append(out, data[ownStart:ownEnd]...), nil
}
