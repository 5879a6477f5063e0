// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/threepm/internal/audiotest"
)

func TestToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{0.5, 16384},
		{-0.5, -16384},
		{1, 32767},
		{1.5, 32767},
		{-1, -32768},
		{-2, -32768},
		{1.0 / 32768, 1},
	}

	for _, tt := range tests {
		if got := ToInt16(tt.in); got != tt.want {
			t.Errorf("ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadInt16_Exact(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 100, -100, 32767, -32768, 1, -1, 4096}
	src := audiotest.NewPCMSource(8000, 2, pcm)

	got, err := ReadInt16(src, 4)
	if err != nil {
		t.Fatalf("ReadInt16() error = %v", err)
	}
	if !slices.Equal(got, pcm) {
		t.Errorf("ReadInt16() = %v, want %v", got, pcm)
	}
}

func TestReadInt16_InvalidBufSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)

	for _, size := range []int{0, -4, 3} {
		if _, err := ReadInt16(src, size); !errors.Is(err, ErrInvalidBufSize) {
			t.Errorf("ReadInt16(%d) error = %v, want ErrInvalidBufSize", size, err)
		}
	}
}

func TestReadInt16_ReadError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 100).FailAfter(10)

	got, err := ReadInt16(src, 4)
	if !errors.Is(err, audiotest.ErrMockRead) {
		t.Fatalf("ReadInt16() error = %v, want ErrMockRead", err)
	}
	if len(got) != 10 {
		t.Errorf("ReadInt16() returned %d samples before failing, want 10", len(got))
	}
}

func TestDeinterleave(t *testing.T) {
	t.Parallel()

	got := Deinterleave([]int16{1, -1, 2, -2, 3, -3, 9}, 2)

	if len(got) != 2 {
		t.Fatalf("Deinterleave() channels = %d, want 2", len(got))
	}
	if !slices.Equal(got[0], []int16{1, 2, 3}) {
		t.Errorf("left = %v, want [1 2 3]", got[0])
	}
	if !slices.Equal(got[1], []int16{-1, -2, -3}) {
		t.Errorf("right = %v, want [-1 -2 -3]", got[1])
	}

	if Deinterleave([]int16{1}, 0) != nil {
		t.Error("Deinterleave(_, 0) != nil")
	}
}
