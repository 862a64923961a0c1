// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package lint_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/creachadair/jsonlint"
	"github.com/creachadair/jsonlint/internal/testutil"
	"github.com/creachadair/jsonlint/lint"
)

func TestRunner(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.json": `{"a": 1}`,
		"b.json": `[1, 2,]`,
		"c.json": "true\n",
	}
	names := testutil.WriteFiles(t, dir, files, "a.json", "b.json", "missing.json", "c.json")
	r := &lint.Runner{
		Concurrency: 2,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	out, err := r.Run(context.Background(), names)
	if err != nil {
		t.Fatalf("Run: unexpected error: %v", err)
	}
	if len(out) != len(names) {
		t.Fatalf("Run: got %d outcomes, want %d", len(out), len(names))
	}
	for i, o := range out {
		if o.Name != names[i] {
			t.Errorf("Outcome %d: got name %q, want %q", i, o.Name, names[i])
		}
		if o.Skipped {
			t.Errorf("Outcome %d: skipped", i)
		}
	}
	if out[0].Err != nil || out[0].Result.Output != `{"a":1}` {
		t.Errorf("Outcome 0: got %+v", out[0])
	}
	var serr *jsonlint.SyntaxError
	if !errors.As(out[1].Err, &serr) {
		t.Errorf("Outcome 1: got %v, want syntax error", out[1].Err)
	}
	if !errors.Is(out[2].Err, fs.ErrNotExist) {
		t.Errorf("Outcome 2: got %v, want not-exist error", out[2].Err)
	}
	if out[3].Err != nil || out[3].Result.Output != "true\n" {
		t.Errorf("Outcome 3: got %+v", out[3])
	}
}

func TestRunnerFailFast(t *testing.T) {
	docs := map[string]string{"ok": `1`, "bad": `{`, "later": `2`}
	r := &lint.Runner{
		Concurrency: 1,
		FailFast:    true,
		ReadFile: func(name string) ([]byte, error) {
			return []byte(docs[name]), nil
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	out, err := r.Run(context.Background(), []string{"ok", "bad", "later"})
	var serr *jsonlint.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Run: got %v, want syntax error", err)
	}
	if out[0].Err != nil || out[0].Skipped {
		t.Errorf("Outcome 0: got %+v, want success", out[0])
	}
	if !out[2].Skipped {
		t.Errorf("Outcome 2: got %+v, want skipped", out[2])
	}
}

func TestRunnerFailFastOrder(t *testing.T) {
	errBad := errors.New("bad file")
	readFile := func(name string) ([]byte, error) {
		if strings.HasPrefix(name, "bad") {
			return nil, fmt.Errorf("%s: %w", name, errBad)
		}
		return []byte(`1`), nil
	}
	r := &lint.Runner{
		Concurrency: 3,
		FailFast:    true,
		ReadFile:    readFile,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Files ahead of the failure are never skipped, however the goroutines
	// are scheduled.
	for range 200 {
		out, err := r.Run(context.Background(), []string{"ok1", "ok2", "bad", "later"})
		if !errors.Is(err, errBad) {
			t.Fatalf("Run: got %v, want %v", err, errBad)
		}
		for _, o := range out[:2] {
			if o.Skipped || o.Err != nil || o.Result == nil {
				t.Fatalf("Outcome %q: got %+v, want success", o.Name, o)
			}
		}
	}

	// The reported error is the earliest failure in name order.
	for range 50 {
		_, err := r.Run(context.Background(), []string{"bad1", "ok", "bad2"})
		if err == nil || !strings.HasPrefix(err.Error(), "bad1:") {
			t.Fatalf("Run: got %v, want the bad1 error", err)
		}
	}
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &lint.Runner{
		ReadFile: func(string) ([]byte, error) { return []byte(`1`), nil },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	out, err := r.Run(ctx, []string{"x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run: got %v, want %v", err, context.Canceled)
	}
	if !out[0].Skipped {
		t.Errorf("Outcome: got %+v, want skipped", out[0])
	}
}
