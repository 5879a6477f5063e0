// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bogem/id3v2/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/ik5/threepm"
	"github.com/ik5/threepm/formats/mp3"
	"github.com/ik5/threepm/recompress"
)

// withMetrics attaches a fresh registry to the config when -metrics is
// set and returns a function that prints it.
func (e *env) withMetrics() func() error {
	if !e.metrics {
		return func() error { return nil }
	}

	reg := prometheus.NewRegistry()
	e.cfg.Metrics = recompress.NewMetrics(reg)
	return func() error {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(e.stdout, mf); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeFile creates path and calls write with it, removing the file if
// write fails.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func runPack(e *env, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	dump := e.withMetrics()

	res, err := threepm.Recompress(data, e.cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[1], res.Data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "%s: %d frames, %d -> %d bytes (%.1f%%), %d failures\n",
		args[1], res.Frames, len(data), len(res.Data),
		100*float64(len(res.Data))/float64(len(data)), len(res.Failures))
	return dump()
}

func runUnpack(e *env, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	rate, err := threepm.SampleRate(data)
	if err != nil {
		return err
	}
	frames, err := threepm.Unpack(data, e.cfg)
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{"frames": len(frames), "rate": rate}).Debug("unpacked")
	return writeFile(args[1], func(w io.Writer) error {
		return threepm.Export(w, frames, rate, threepm.FormatFromPath(args[1]))
	})
}

func runWAV(e *env, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	return writeFile(args[1], func(w io.Writer) error {
		return threepm.RenderPCM(w, in, threepm.FormatFromPath(args[1]))
	})
}

func runInfo(e *env, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	out := e.stdout

	if t := mp3.ID3Offset(data); t.Valid {
		fmt.Fprintf(out, "id3v2.%d: %d bytes\n", t.Version[0], t.Offset)
		tag, err := id3v2.ParseReader(bytes.NewReader(data[:t.Offset]), id3v2.Options{Parse: true})
		if err != nil {
			e.log.WithError(err).Warn("unreadable id3v2 tag")
		} else {
			for _, field := range [][2]string{
				{"title", tag.Title()}, {"artist", tag.Artist()},
				{"album", tag.Album()}, {"year", tag.Year()},
			} {
				if field[1] != "" {
					fmt.Fprintf(out, "  %-6s %s\n", field[0], field[1])
				}
			}
		}
	}

	dump := e.withMetrics()
	res, err := threepm.Recompress(data, e.cfg)
	if err != nil && !errors.Is(err, recompress.ErrNoFrames) {
		return err
	}
	if res == nil || res.Frames == 0 {
		fmt.Fprintln(out, "no mpeg audio frames")
		return dump()
	}

	p := mp3.NewParser(data, mp3.ID3Offset(data).Offset)
	if f, err := p.Next(); err == nil {
		fmt.Fprintf(out, "stream: %s\n", f.Header)
	}

	fmt.Fprintf(out, "frames: %d, skipped %d bytes\n", res.Frames, res.SkippedBytes)
	fmt.Fprintf(out, "3pm:    %d bytes, payload mean %.1f median %.1f, ratio %.3f\n",
		len(res.Data), res.Stats.Mean(), res.Stats.Median(), res.Stats.Ratio())

	kinds := map[string]int{}
	for _, f := range res.Failures {
		kinds[f.Kind.String()]++
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		fmt.Fprintf(out, "failed: %s x%d\n", k, kinds[k])
	}

	return dump()
}
