// SPDX-License-Identifier: EPL-2.0

package entropy

import "fmt"

const (
	// ProbBits is the precision of model probabilities.
	ProbBits  = 12
	probScale = 1 << ProbBits

	// contextSize covers the flag bit and eight data bits of one byte.
	contextSize = 512

	// countLimit is the count at which both counts of a context are halved.
	countLimit = 65534
)

// Context is what the coder knows when it is about to code a bit.
type Context struct {
	// Bits holds the bits of the current byte seen so far behind a
	// leading 1, starting with the flag bit. It is always in [1, 512).
	Bits uint32
	// Pos is the index of the byte being coded.
	Pos int
}

// Model predicts the next bit. P returns the probability that the bit is
// 1 scaled to 1<<ProbBits; it must stay below 1<<ProbBits. Update is
// called with the actual bit right after P for the same context.
//
// Models are stateful; the encoder and decoder of one stream must each
// start from a fresh model built with the same parameters.
type Model interface {
	P(ctx Context) uint32
	Update(ctx Context, bit int)
}

// counter is an adaptive pair of bit counts.
type counter [2]uint32

// p is the smoothed probability of a 1: (n1+1) / (n0+n1+2).
func (c *counter) p() uint32 {
	return probScale * (c[1] + 1) / (c[0] + c[1] + 2)
}

func (c *counter) update(bit int) {
	c[bit]++
	if c[bit] > countLimit {
		c[0] >>= 1
		c[1] >>= 1
	}
}

// NaiveContext predicts from the bits of the current byte only.
type NaiveContext struct {
	counts [contextSize]counter
}

// NewNaiveContext returns an untrained NaiveContext.
func NewNaiveContext() *NaiveContext { return &NaiveContext{} }

func (m *NaiveContext) P(ctx Context) uint32 { return m.counts[ctx.Bits].p() }

func (m *NaiveContext) Update(ctx Context, bit int) { m.counts[ctx.Bits].update(bit) }

// Sample layout of the serialized spectra fed to the coder.
const (
	// SampleBytes is the width of one serialized sample.
	SampleBytes = 2
	// DefaultSpan is the number of samples in one granule.
	DefaultSpan = 576
	// DefaultRegions is the number of frequency regions of RegionContext.
	DefaultRegions = 20
)

// RegionContext keeps separate statistics per frequency region. The
// input is taken to be SampleBytes wide samples in blocks of span
// samples; byte i belongs to sample (i/SampleBytes)%span. The span is cut
// into regions of span/regions samples, the last region also taking the
// remainder.
type RegionContext struct {
	regions int
	size    int
	span    int
	counts  [][contextSize]counter
}

// NewRegionContext returns a RegionContext with the given layout.
func NewRegionContext(regions, span int) (*RegionContext, error) {
	if regions <= 0 || span <= 0 || regions > span {
		return nil, fmt.Errorf("%w: %d regions over %d samples", ErrInvalidRegions, regions, span)
	}

	return &RegionContext{
		regions: regions,
		size:    span / regions,
		span:    span,
		counts:  make([][contextSize]counter, regions),
	}, nil
}

// Region returns the region byte pos falls in.
func (m *RegionContext) Region(pos int) int {
	sample := (pos / SampleBytes) % m.span
	return min(sample/m.size, m.regions-1)
}

func (m *RegionContext) P(ctx Context) uint32 {
	return m.counts[m.Region(ctx.Pos)][ctx.Bits].p()
}

func (m *RegionContext) Update(ctx Context, bit int) {
	m.counts[m.Region(ctx.Pos)][ctx.Bits].update(bit)
}
