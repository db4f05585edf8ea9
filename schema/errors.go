// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package schema

import "fmt"

// ConfigError is the concrete type of errors reported by Compile when a
// schema keyword has an argument of the wrong form.
type ConfigError struct {
	Path    string // location of the schema object, e.g. "#/properties/a"
	Keyword string // the offending keyword
	Reason  string
}

// Error satisfies the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("schema %s: keyword %q: %s", e.Path, e.Keyword, e.Reason)
}

func configErrorf(path, keyword, msg string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Keyword: keyword, Reason: fmt.Sprintf(msg, args...)}
}
