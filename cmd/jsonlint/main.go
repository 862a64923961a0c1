// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jsonlint validates and reformats JSON, JSON with comments and
// JSON5 documents.
//
// Usage:
//
//	jsonlint [options] [--] [<file, directory, pattern> ...]
//
// Each argument is a file, a directory (searched recursively for files with
// one of the selected extensions) or a glob pattern. A pattern beginning with
// "!" excludes the files it matches. If no inputs are given, standard input
// is read.
//
// Settings are also read from a .jsonlintrc file (or a "jsonlint" member of
// package.json) found in the working directory or one of its ancestors.
// Options given on the command line take precedence.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "validate",
			Aliases:     []string{"V"},
			Description: "JSON Schema file(s) to validate with; may be repeated",
			Type:        cli.NamedFuncOpt(listOpt(&cfg.Validate), "(file,...)"),
		},
		&cli.Opt{
			Name:        "extensions",
			Aliases:     []string{"E"},
			Description: "file extensions to process in directories (default json,JSON)",
			Type:        cli.NamedFuncOpt(listOpt(&cfg.Extensions), "(ext,...)"),
		})

	return cli.NewCommandAt(&cfg.Main, "jsonlint").
		WithSynopsis("jsonlint [opts] [--] [<file, directory, pattern> ...]").
		WithDescription("jsonlint validates and reformats JSON, CJSON and JSON5 documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonlintMain(cfg, cc, args)
		})
}
