// SPDX-License-Identifier: EPL-2.0

package recompress

import "slices"

// Stats collects payload diagnostics of one run.
type Stats struct {
	// PayloadSizes holds the coded payload size of every frame.
	PayloadSizes []int
	// RawBytes is the total size of the serialized samples before coding.
	RawBytes int
	// Frequencies counts the serialized sample bytes. It is only filled
	// when Config.CollectFrequencies is set.
	Frequencies *[256]uint64
}

func (s *Stats) add(raw []byte, payload int, freq bool) {
	s.PayloadSizes = append(s.PayloadSizes, payload)
	s.RawBytes += len(raw)
	if !freq {
		return
	}
	if s.Frequencies == nil {
		s.Frequencies = new([256]uint64)
	}
	for _, b := range raw {
		s.Frequencies[b]++
	}
}

// PayloadBytes is the sum of all payload sizes.
func (s *Stats) PayloadBytes() int {
	n := 0
	for _, v := range s.PayloadSizes {
		n += v
	}
	return n
}

// Mean is the average payload size, or 0 without frames.
func (s *Stats) Mean() float64 {
	if len(s.PayloadSizes) == 0 {
		return 0
	}
	return float64(s.PayloadBytes()) / float64(len(s.PayloadSizes))
}

// Median is the median payload size, or 0 without frames.
func (s *Stats) Median() float64 {
	n := len(s.PayloadSizes)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(s.PayloadSizes)
	slices.Sort(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// Ratio is the coded payload size relative to the raw samples.
func (s *Stats) Ratio() float64 {
	if s.RawBytes == 0 {
		return 0
	}
	return float64(s.PayloadBytes()) / float64(s.RawBytes)
}
