// SPDX-License-Identifier: EPL-2.0

package recompress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/threepm/container"
	"github.com/ik5/threepm/entropy"
	"github.com/ik5/threepm/formats/mp3"
)

// progressEvery is the frame interval of progress log lines.
const progressEvery = 100

// Result describes one re-encoding run.
type Result struct {
	// Data is the 3PM stream. Encode leaves it nil.
	Data []byte
	// Frames is the number of frames written.
	Frames int
	// SkippedBytes counts junk bytes passed over while searching for
	// frame headers.
	SkippedBytes int
	// Failures lists frames that did not decode cleanly, in order.
	Failures []Failure
	Stats    Stats
	// Samples holds every written frame's samples when
	// Config.KeepSamples is set.
	Samples []FrameSamples
}

// Recompressor re-encodes MPEG Layer III streams as 3PM. A Recompressor
// holds no per run state and may be used by several goroutines, each
// working on its own file.
type Recompressor struct {
	cfg   Config
	codec entropy.Codec
	log   logrus.FieldLogger
}

// New returns a Recompressor for cfg.
func New(cfg Config) (*Recompressor, error) {
	codec, err := cfg.Codec()
	if err != nil {
		return nil, err
	}

	return &Recompressor{
		cfg:   cfg,
		codec: codec,
		log:   cfg.logger(),
	}, nil
}

// Run re-encodes the MPEG audio in data, starting the frame search at
// offset, and returns the 3PM stream in Result.Data.
func (r *Recompressor) Run(data []byte, offset int) (*Result, error) {
	var buf bytes.Buffer
	res, err := r.Encode(&buf, data, offset)
	if res != nil {
		res.Data = buf.Bytes()
	}
	return res, err
}

// Encode re-encodes the MPEG audio in data to w.
//
// Frames are processed strictly in order. A frame whose main data cannot
// be fully decoded is still written with its best-effort samples and
// recorded in Result.Failures; frames without usable side information
// are recorded and dropped. Only setup problems and write errors end the
// run early.
//
// Returns:
//   - *Result: frame count, failures and statistics; non-nil whenever
//     the run got past setup
//   - error: ErrEmptyInput, ErrNoFrames or a write error
func (r *Recompressor) Encode(w io.Writer, data []byte, offset int) (*Result, error) {
	if offset < 0 || offset >= mp3.AudioEnd(data) {
		return nil, fmt.Errorf("%w: %d bytes, audio offset %d", ErrEmptyInput, len(data), offset)
	}

	log := r.log.WithFields(logrus.Fields{
		"run":    uuid.NewString(),
		"model":  r.cfg.Model.String(),
		"offset": offset,
	})

	res := &Result{}
	progress := debugEnabled(log)
	cw := container.NewWriter(w)
	p := mp3.NewParser(data, offset)

	var raw []byte
	for {
		f, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var fe *mp3.FrameError
		if errors.As(err, &fe) {
			r.fail(log, res, Failure{Index: fe.Index, Offset: fe.Offset, Kind: classify(fe.Err), Err: fe.Err})
			continue
		}
		if err != nil {
			return res, err
		}

		res.SkippedBytes += f.Skipped
		if f.Err != nil {
			r.fail(log, res, Failure{Index: f.Index, Offset: f.Record.Offset, Kind: classify(f.Err), Err: f.Err, Emitted: true})
		}

		samples := samplesFromSpectra(f.Spectra)
		raw = samples.appendBytes(raw[:0])
		payload := r.codec.Encode(raw)

		err = cw.WriteFrame(container.Frame{
			Header:   f.HeaderBytes(),
			SideInfo: f.SideInfo.Bytes(),
			Payload:  payload,
		})
		if err != nil {
			return res, err
		}

		res.Frames++
		res.Stats.add(raw, len(payload), r.cfg.CollectFrequencies)
		r.cfg.Metrics.frame(len(payload))
		if r.cfg.KeepSamples {
			res.Samples = append(res.Samples, samples)
		}

		if progress && res.Frames%progressEvery == 0 {
			log.WithFields(logrus.Fields{
				"frames": res.Frames,
				"mean":   res.Stats.Mean(),
				"median": res.Stats.Median(),
			}).Debug("encoding")
		}
	}

	r.cfg.Metrics.bytes(p.Offset()-offset, int(cw.BytesWritten()))
	if res.Frames == 0 {
		return res, fmt.Errorf("%w: searched %d bytes from offset %d", ErrNoFrames, len(data)-offset, offset)
	}

	log.WithFields(logrus.Fields{
		"frames":   res.Frames,
		"failures": len(res.Failures),
		"in":       p.Offset() - offset,
		"out":      cw.BytesWritten(),
		"ratio":    res.Stats.Ratio(),
	}).Info("encoded")

	return res, nil
}

// debugEnabled reports whether progress lines would be written; the
// median they carry sorts every payload size seen so far.
func debugEnabled(log *logrus.Entry) bool {
	return log.Logger != nil && log.Logger.IsLevelEnabled(logrus.DebugLevel)
}

func (r *Recompressor) fail(log logrus.FieldLogger, res *Result, f Failure) {
	res.Failures = append(res.Failures, f)
	r.cfg.Metrics.failure(f.Kind)

	log.WithError(f.Err).WithFields(logrus.Fields{
		"frame":   f.Index,
		"offset":  f.Offset,
		"kind":    f.Kind.String(),
		"emitted": f.Emitted,
	}).Warn("frame decode failed")
}

// Unpack decodes a 3PM stream back to quantized samples, one entry per
// frame. It fails on the first frame that cannot be decoded; the frames
// before it are returned.
func (r *Recompressor) Unpack(data []byte) ([]FrameSamples, error) {
	cr := container.NewReader(data)

	var out []FrameSamples
	for i := 0; ; i++ {
		f, h, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", i, err)
		}

		raw, err := r.codec.Decode(f.Payload, sampleBytes(h.Granules(), h.Channels()))
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", i, err)
		}

		fs, err := parseSamples(raw, h.Granules(), h.Channels())
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", i, err)
		}
		out = append(out, fs)
	}
}

// Unpack decodes a 3PM stream written with cfg.
func Unpack(data []byte, cfg Config) ([]FrameSamples, error) {
	r, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return r.Unpack(data)
}
