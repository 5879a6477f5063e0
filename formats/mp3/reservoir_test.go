// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"testing"
)

// threeFrames lays out three 100 byte frames with a 36 byte prefix each;
// every main data byte holds its own file offset modulo 251.
func threeFrames() ([]byte, []FrameRecord) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i % 251)
	}
	recs := []FrameRecord{
		{Offset: 0, Size: 100, Prefix: 36},
		{Offset: 100, Size: 100, Prefix: 36},
		{Offset: 200, Size: 100, Prefix: 36},
	}
	return data, recs
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestReservoir_Resolve(t *testing.T) {
	t.Parallel()

	data, recs := threeFrames()

	tests := []struct {
		name  string
		begin int
		want  []byte
	}{
		{"own frame", 0, data[236:300]},
		{"inside previous", 10, concat(data[190:200], data[236:300])},
		{"whole previous", 64, concat(data[136:200], data[236:300])},
		{"spans two frames", 74, concat(data[90:100], data[136:200], data[236:300])},
		{"all history", 128, concat(data[36:100], data[136:200], data[236:300])},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var res Reservoir
			res.Push(recs[0])
			res.Push(recs[1])

			got, err := res.Resolve(data, recs[2], tt.begin)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Resolve() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestReservoir_Inconsistent(t *testing.T) {
	t.Parallel()

	data, recs := threeFrames()

	var res Reservoir
	res.Push(recs[0])
	res.Push(recs[1])

	if _, err := res.Resolve(data, recs[2], 129); !errors.Is(err, ErrReservoirInconsistency) {
		t.Errorf("Resolve(129) error = %v, want ErrReservoirInconsistency", err)
	}

	res.Reset()
	if _, err := res.Resolve(data, recs[0], 1); !errors.Is(err, ErrReservoirInconsistency) {
		t.Errorf("Resolve() on empty history error = %v, want ErrReservoirInconsistency", err)
	}
}

func TestReservoir_TruncatedCurrentFrame(t *testing.T) {
	t.Parallel()

	data, recs := threeFrames()
	data = data[:250]

	var res Reservoir
	res.Push(recs[1])

	got, err := res.Resolve(data, recs[2], 4)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := concat(data[196:200], data[236:250]); !bytes.Equal(got, want) {
		t.Errorf("Resolve() = % x, want % x", got, want)
	}
}

func TestReservoir_Eviction(t *testing.T) {
	t.Parallel()

	var res Reservoir
	for i := range HistoryDepth + 3 {
		res.Push(FrameRecord{Offset: i * 10, Size: 10})
	}

	if res.Len() != HistoryDepth {
		t.Errorf("Len() = %d, want %d", res.Len(), HistoryDepth)
	}
	if got := res.previous(0).Offset; got != (HistoryDepth+2)*10 {
		t.Errorf("newest offset = %d, want %d", got, (HistoryDepth+2)*10)
	}
	if got := res.previous(HistoryDepth - 1).Offset; got != 30 {
		t.Errorf("oldest offset = %d, want 30", got)
	}
}
