// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lint

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// A Runner processes a batch of files concurrently.
type Runner struct {
	// Options are applied to every file.
	Options Options

	// Concurrency is the maximum number of files processed at once. If it is
	// zero or negative, runtime.GOMAXPROCS(0) is used.
	Concurrency int

	// If FailFast is true, the first failure stops the run: files not yet
	// started are skipped, and Run reports the error.
	FailFast bool

	// ReadFile reads the contents of a named file. If nil, os.ReadFile is
	// used.
	ReadFile func(name string) ([]byte, error)

	// Logger receives progress and failure records. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// An Outcome reports the processing of one file.
type Outcome struct {
	Name   string
	Result *Result // nil if the file could not be read or processed
	Err    error   // the failure, if any

	// Skipped is true if the file was not processed because the run was
	// stopped early.
	Skipped bool
}

// Run processes the named files and returns their outcomes in the same order
// as names. Failures for individual files are reported in their outcomes;
// Run reports an error only if ctx ends, or for the first failure in name
// order when r.FailFast is set. With FailFast, every file before the first
// failure is processed, and files after it may be skipped.
func (r *Runner) Run(ctx context.Context, names []string) ([]Outcome, error) {
	out := make([]Outcome, len(names))
	var firstFail atomic.Int64 // index of the earliest failure so far
	firstFail.Store(int64(len(names)))

	var g errgroup.Group
	g.SetLimit(r.concurrency())
	for i, name := range names {
		out[i] = Outcome{Name: name, Skipped: true}
		g.Go(func() error {
			if ctx.Err() != nil || int64(i) > firstFail.Load() {
				return nil
			}
			out[i] = r.process(name)
			if out[i].Err != nil && r.FailFast {
				for {
					cur := firstFail.Load()
					if int64(i) >= cur || firstFail.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}
			return nil
		})
	}
	g.Wait()
	if r.FailFast {
		if n := firstFail.Load(); n < int64(len(names)) {
			return out, out[n].Err
		}
	}
	return out, ctx.Err()
}

func (r *Runner) process(name string) Outcome {
	log := r.logger().With("file", name)
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	src, err := readFile(name)
	if err != nil {
		log.Warn("read failed", "error", err)
		return Outcome{Name: name, Err: err}
	}
	res, err := r.Options.Process(name, src)
	if err != nil {
		log.Debug("processing failed", "error", err)
		return Outcome{Name: name, Result: res, Err: err}
	}
	log.Debug("processed", "bytes", len(src), "changed", res.Changed())
	return Outcome{Name: name, Result: res}
}

func (r *Runner) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
