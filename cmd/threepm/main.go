// SPDX-License-Identifier: EPL-2.0

// Command threepm re-encodes MP3 files as 3PM and back.
//
// Usage:
//
//	threepm pack   [flags] <input.mp3> <output.3pm>
//	threepm unpack [flags] <input.3pm> <output.{wav|aiff}>
//	threepm wav    [flags] <input.mp3> <output.{wav|aiff}>
//	threepm info   [flags] <input.mp3>
//
// pack writes the 3PM stream. unpack exports the quantized spectrum held
// in a 3PM file as audio; wav renders the MP3 itself to PCM. info prints
// the tags and frame layout of an MP3 and how well it re-encodes.
//
// Settings come from a dotenv file (-config, default .env) and the
// THREEPM_MODEL, THREEPM_REGIONS, THREEPM_SPAN and THREEPM_LOG_LEVEL
// environment variables; flags override both.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/threepm/recompress"
)

const usage = `usage:
  threepm pack   [flags] <input.mp3> <output.3pm>
  threepm unpack [flags] <input.3pm> <output.{wav|aiff}>
  threepm wav    [flags] <input.mp3> <output.{wav|aiff}>
  threepm info   [flags] <input.mp3>

run "threepm <command> -h" for the flags of a command`

type command struct {
	args int
	run  func(e *env, args []string) error
}

var commands = map[string]command{
	"pack":   {2, runPack},
	"unpack": {2, runUnpack},
	"wav":    {2, runWAV},
	"info":   {1, runInfo},
}

// env is what every command gets after flag parsing.
type env struct {
	cfg     recompress.Config
	log     *logrus.Logger
	stdout  io.Writer
	metrics bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "threepm: unknown command %q\n%s\n", args[0], usage)
		return 2
	}

	fs := flag.NewFlagSet("threepm "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", ".env", "dotenv file with THREEPM_* settings")
	verbose := fs.Bool("v", false, "debug logging")
	model := fs.String("model", "", "payload model: region, naive or symbol")
	regions := fs.Int("regions", 0, "frequency regions of the region model")
	span := fs.Int("span", 0, "samples per region cycle of the region model")
	metrics := fs.Bool("metrics", false, "print prometheus metrics when done")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != cmd.args {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, level, err := recompress.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "threepm: %v\n", err)
		return 1
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model, flagErr = recompress.ParseModelKind(*model)
		case "regions":
			cfg.Regions = *regions
		case "span":
			cfg.Span = *span
		}
	})
	if flagErr == nil {
		flagErr = cfg.Validate()
	}
	if flagErr != nil {
		fmt.Fprintf(stderr, "threepm: %v\n", flagErr)
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	cfg.Logger = log

	e := &env{cfg: cfg, log: log, stdout: stdout, metrics: *metrics}
	if err := cmd.run(e, fs.Args()); err != nil {
		log.WithError(err).WithField("command", args[0]).Error("failed")
		return 1
	}
	return 0
}
