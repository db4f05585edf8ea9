// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package suite runs schema test fixtures through the validator.
//
// A fixture file holds a JSON list of groups. Each group has a schema and a
// list of test cases, each giving a data value and whether that value is
// expected to satisfy the schema:
//
//	[
//	  {
//	    "description": "integers",
//	    "schema": {"type": "integer"},
//	    "tests": [
//	      {"description": "an integer", "data": 1, "valid": true},
//	      {"description": "a string", "data": "1", "valid": false}
//	    ]
//	  }
//	]
//
// This is the format used by the JSON-Schema-Test-Suite.
package suite

import (
	"context"
	"fmt"
	"sync"

	"github.com/creachadair/jcheck/internal/load"
	"github.com/creachadair/jcheck/schema"
	"github.com/creachadair/jcheck/value"
	"github.com/creachadair/jcheck/value/cursor"
	"golang.org/x/sync/errgroup"
)

// A Group is a schema together with the test cases to check against it.
type Group struct {
	Description string
	Schema      value.Value
	Cases       []Case

	once sync.Once
	rule *schema.Rule
	err  error
}

// A Case is a single test case of a Group.
type Case struct {
	Description string
	Data        value.Value
	Valid       bool // whether Data is expected to satisfy the schema
}

// A Result records the outcome of a single test case.
type Result struct {
	Group string // the description of the group
	Case  string // the description of the case
	Want  bool   // the expected verdict
	Got   bool   // the verdict reported by the validator
}

// Passed reports whether the validator agreed with the expected verdict.
func (r Result) Passed() bool { return r.Want == r.Got }

func (r Result) String() string {
	status := "PASS"
	if !r.Passed() {
		status = "FAIL"
	}
	return fmt.Sprintf("%s: %s: %s (want %v, got %v)", status, r.Group, r.Case, r.Want, r.Got)
}

// Decode decodes a fixture document into groups.
func Decode(v value.Value) ([]*Group, error) {
	lst, ok := v.(*value.List)
	if !ok {
		return nil, fmt.Errorf("fixture is %v, want list", v.Kind())
	}
	var out []*Group
	for i, elt := range lst.All() {
		g, err := decodeGroup(elt)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func decodeGroup(v value.Value) (*Group, error) {
	sch, err := cursor.Find(v, "schema")
	if err != nil {
		return nil, err
	}
	tests, err := cursor.Path[*value.List](v, "tests")
	if err != nil {
		return nil, err
	}
	g := &Group{Description: optString(v, "description"), Schema: sch}
	for i := range tests.Len() {
		data, err := cursor.Find(tests, i, "data")
		if err != nil {
			return nil, fmt.Errorf("tests: %w", err)
		}
		valid, err := cursor.Path[value.Bool](tests, i, "valid")
		if err != nil {
			return nil, fmt.Errorf("tests: %w", err)
		}
		g.Cases = append(g.Cases, Case{
			Description: optString(tests, i, "description"),
			Data:        data,
			Valid:       bool(valid),
		})
	}
	return g, nil
}

// optString returns the string at path in v, or "" if there is none.
func optString(v value.Value, path ...any) string {
	s, _ := cursor.Path[value.String](v, path...)
	return string(s)
}

// ReadFile loads and decodes the fixture file at path. The file may be in any
// format supported by the loader.
func ReadFile(path string) ([]*Group, error) {
	v, err := load.File(path)
	if err != nil {
		return nil, err
	}
	gs, err := Decode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gs, nil
}

// Compile compiles the schema of g. The schema is compiled only once;
// subsequent calls report the same result.
func (g *Group) Compile() (*schema.Rule, error) {
	g.once.Do(func() { g.rule, g.err = schema.Compile(g.Schema) })
	return g.rule, g.err
}

// Run compiles the schema of g and checks each of its cases, returning one
// Result per case in order.
func (g *Group) Run() ([]Result, error) {
	rule, err := g.Compile()
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", g.Description, err)
	}
	out := make([]Result, len(g.Cases))
	for i, tc := range g.Cases {
		out[i] = Result{
			Group: g.Description,
			Case:  tc.Description,
			Want:  tc.Valid,
			Got:   rule.Validate(tc.Data),
		}
	}
	return out, nil
}

// RunGroups runs each of the groups and concatenates their results.
func RunGroups(gs []*Group) ([]Result, error) {
	var out []Result
	for _, g := range gs {
		rs, err := g.Run()
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}
	return out, nil
}

// A FileReport holds the results from a single fixture file.
type FileReport struct {
	Path    string
	Results []Result
}

// A Report summarizes the results of running a collection of fixture files.
type Report struct {
	Files  []FileReport // in the order the paths were given
	Passed int          // the number of cases that passed
	Failed int          // the number of cases that failed
}

// Failures returns the results of all the failed cases in r.
func (r *Report) Failures() []Result {
	var out []Result
	for _, f := range r.Files {
		for _, res := range f.Results {
			if !res.Passed() {
				out = append(out, res)
			}
		}
	}
	return out
}

// RunFiles loads and runs the fixture files named by paths, with at most
// workers files in progress at once. If workers <= 0, there is no limit.
//
// If any file cannot be loaded, or contains a schema that does not compile,
// RunFiles stops starting new files and reports that error.
func RunFiles(ctx context.Context, paths []string, workers int) (*Report, error) {
	files := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gs, err := ReadFile(path)
			if err != nil {
				return err
			}
			rs, err := RunGroups(gs)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files[i] = FileReport{Path: path, Results: rs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Files: files}
	for _, f := range files {
		for _, res := range f.Results {
			if res.Passed() {
				rep.Passed++
			} else {
				rep.Failed++
			}
		}
	}
	return rep, nil
}
