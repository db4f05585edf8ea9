// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jcheck validates JSON documents against JSON Schema (Draft 4)
// schemas, reformats documents, and runs schema test fixtures.
//
// Documents may be written as JSON, as JWCC (JSON with comments and trailing
// commas, file extension .jwcc or .hujson), or as YAML (.yaml or .yml).
//
// Usage:
//
//	jcheck validate [--workers N] [--at POINTER] SCHEMA INPUT...
//	jcheck fmt [--indent N] [--compact] [--at POINTER] INPUT...
//	jcheck suite [--workers N] FILE...
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcheck/internal/load"
	"github.com/creachadair/jcheck/schema"
	"github.com/creachadair/jcheck/suite"
	"github.com/creachadair/jcheck/value"
	"github.com/creachadair/jcheck/value/cursor"
	"golang.org/x/sync/errgroup"
)

// CLI is the command-line grammar.
type CLI struct {
	Debug bool `help:"Enable debug logging."`

	Validate validateCmd `cmd:"" help:"Validate documents against a schema."`
	Fmt      fmtCmd      `cmd:"" help:"Reformat documents as JSON."`
	Suite    suiteCmd    `cmd:"" help:"Run schema test fixture files."`
}

// env carries the settings shared by all commands.
type env struct {
	ctx context.Context
	out io.Writer
	log *slog.Logger
}

func newEnv(ctx context.Context, debug bool, out, logw io.Writer) *env {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return &env{
		ctx: ctx,
		out: out,
		log: slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: level})),
	}
}

type validateCmd struct {
	Workers int      `help:"Maximum number of inputs to check concurrently (0 means no limit)." default:"0"`
	At      string   `help:"JSON pointer to the part of each input to check." placeholder:"POINTER"`
	Schema  string   `arg:"" help:"Path of the schema file."`
	Inputs  []string `arg:"" help:"Paths of the documents to check."`
}

// errInvalid is reported when one or more inputs did not satisfy a check.
var errInvalid = errors.New("some inputs are invalid")

func (c *validateCmd) Run(e *env) error {
	sv, err := load.File(c.Schema)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	rule, err := schema.Compile(sv)
	if err != nil {
		return err
	}
	e.log.Debug("compiled schema", "path", c.Schema)
	at, err := cursor.Pointer(c.At)
	if err != nil {
		return fmt.Errorf("--at: %w", err)
	}

	valid := make([]bool, len(c.Inputs))
	g, ctx := errgroup.WithContext(e.ctx)
	if c.Workers > 0 {
		g.SetLimit(c.Workers)
	}
	for i, path := range c.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			v, err := loadAt(path, at)
			if err != nil {
				return err
			}
			valid[i] = rule.Validate(v)
			e.log.Debug("validated input", "path", path, "valid", valid[i], "elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var nbad int
	for i, path := range c.Inputs {
		verdict := "valid"
		if !valid[i] {
			verdict = "invalid"
			nbad++
		}
		fmt.Fprintf(e.out, "%s: %s\n", path, verdict)
	}
	if nbad != 0 {
		return fmt.Errorf("%w: %d of %d", errInvalid, nbad, len(c.Inputs))
	}
	return nil
}

type fmtCmd struct {
	Indent  int      `help:"Number of spaces per indentation level." default:"2"`
	Compact bool     `help:"Print each document on a single line."`
	At      string   `help:"JSON pointer to the part of each input to print." placeholder:"POINTER"`
	Inputs  []string `arg:"" help:"Paths of the documents to format."`
}

func (c *fmtCmd) Run(e *env) error {
	at, err := cursor.Pointer(c.At)
	if err != nil {
		return fmt.Errorf("--at: %w", err)
	}
	for _, path := range c.Inputs {
		v, err := loadAt(path, at)
		if err != nil {
			return err
		}
		e.log.Debug("loaded input", "path", path, "format", load.FormatOf(path), "kind", v.Kind())
		if c.Compact {
			fmt.Fprintln(e.out, value.JSON(v))
		} else {
			fmt.Fprintln(e.out, value.Pretty(v, c.Indent))
		}
	}
	return nil
}

// loadAt loads the document at path and selects the value at the given
// location within it.
func loadAt(path string, at []any) (value.Value, error) {
	v, err := load.File(path)
	if err != nil {
		return nil, err
	}
	sel, err := cursor.Find(v, at...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sel, nil
}

type suiteCmd struct {
	Workers int      `help:"Maximum number of files to run concurrently (0 means no limit)." default:"0"`
	Files   []string `arg:"" help:"Paths of the fixture files to run."`
}

func (c *suiteCmd) Run(e *env) error {
	start := time.Now()
	rep, err := suite.RunFiles(e.ctx, c.Files, c.Workers)
	if err != nil {
		return err
	}
	for _, f := range rep.Files {
		e.log.Debug("ran fixture file", "path", f.Path, "cases", len(f.Results))
		for _, res := range f.Results {
			if !res.Passed() {
				fmt.Fprintf(e.out, "%s: %v\n", f.Path, res)
			}
		}
	}
	fmt.Fprintf(e.out, "%d passed, %d failed\n", rep.Passed, rep.Failed)
	e.log.Debug("suite complete", "files", len(rep.Files), "elapsed", time.Since(start))
	if rep.Failed != 0 {
		return fmt.Errorf("%w: %d cases failed", errInvalid, rep.Failed)
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("jcheck"),
		kong.Description("Validate JSON documents against JSON Schema (Draft 4)."),
		kong.UsageOnError(),
	)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := kctx.Run(newEnv(ctx, cli.Debug, os.Stdout, os.Stderr))
	cancel()
	kctx.FatalIfErrorf(err)
}
