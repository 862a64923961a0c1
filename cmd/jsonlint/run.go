// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/creachadair/jsonlint/config"
	"github.com/creachadair/jsonlint/lint"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func jsonlintMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	log := newLogger(os.Stderr, cfg.Verbose)

	s, path, err := cfg.settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCodeErr(1)
	} else if path != "" {
		log.Debug("loaded configuration", "path", path)
	}
	opts, err := buildOptions(s, os.ReadFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCodeErr(1)
	}
	dctx, err := diffContext(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCodeErr(1)
	}

	// Choose the inputs: command-line arguments, else patterns from the
	// configuration, else standard input.
	inputs := args
	if len(inputs) == 0 {
		inputs = s.Patterns
	}
	var names []string
	readFile := os.ReadFile
	if len(inputs) == 0 {
		names = []string{stdinName}
		readFile = func(string) ([]byte, error) { return io.ReadAll(cc.In) }
	} else {
		names, err = expandInputs(inputs, extensions(s.Extensions))
		if errors.Is(err, errNoFiles) {
			fmt.Fprintln(os.Stderr, err)
			if value(s.SucceedWithNoFiles) {
				return nil
			}
			return cli.ExitCodeErr(1)
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return cli.ExitCodeErr(1)
		}
	}
	log.Debug("selected inputs", "files", len(names))

	var colors *palette
	if useColor(s.Color, os.Getenv, isTerminal(cc.Out)) {
		colors = newPalette()
	}
	rep := &reporter{
		out:      cc.Out,
		errOut:   os.Stderr,
		colors:   colors,
		context:  dctx,
		compact:  value(s.Compact),
		quiet:    value(s.Quiet),
		logFiles: value(s.LogFiles),
		inPlace:  value(s.InPlace),
		check:    value(s.Check),
		diff:     value(s.Diff),
	}
	runner := &lint.Runner{
		Options:     opts,
		Concurrency: cfg.Jobs,
		FailFast:    !value(s.Continue),
		ReadFile:    readFile,
		Logger:      log,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, runner, rep, names); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCodeErr(1)
	}
	if rep.failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// run processes the named files and reports their outcomes in order. Unless
// the runner continues after failures, reporting stops at the first failure.
// It returns an error only if ctx ends before the run is complete.
func run(ctx context.Context, runner *lint.Runner, rep *reporter, names []string) error {
	outs, err := runner.Run(ctx, names)
	for _, o := range outs {
		if o.Skipped {
			continue
		}
		if !rep.report(o) && runner.FailFast {
			break
		}
	}
	if ctx.Err() != nil {
		return err
	}
	return nil
}

// settings returns the effective settings: those of the configuration file,
// overridden by options set on the command line. It also returns the path of
// the configuration file, if one was read.
func (cfg *MainConfig) settings() (config.Settings, string, error) {
	flags, err := config.Decode(cfg.explicit())
	if err != nil {
		return config.Settings{}, "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var file config.Settings
	var path string
	switch {
	case cfg.NoConfig:
	case cfg.Config != "":
		path = cfg.Config
		file, err = config.Load(path)
	default:
		file, path, err = config.Find(".")
	}
	if err != nil {
		return config.Settings{}, "", err
	}
	return file.Merge(flags), path, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
