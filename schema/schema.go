// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package schema compiles JSON Schema documents into reusable validation
// rules, using the Draft-4 keyword set.
//
// Compile a schema once, then use the resulting Rule to validate any number
// of values:
//
//	sv, err := value.Parse(`{"type": "integer", "minimum": 0}`)
//	...
//	r, err := schema.Compile(sv)
//	...
//	ok := r.Validate(value.NewInt(5)) // true
//
// A compiled Rule holds no mutable state, and may be shared among concurrent
// goroutines. Validation never modifies the value being validated.
//
// # Keywords
//
// The following keywords are supported:
//
//	type, enum, required
//	minimum, maximum, exclusiveMinimum, exclusiveMaximum, multipleOf
//	minLength, maxLength, minItems, maxItems
//	properties, patternProperties, additionalProperties
//	items, additionalItems
//	allOf, anyOf, oneOf, not
//
// Other keys in a schema object are ignored. Each keyword applies only to
// values of the kind it constrains: "minimum" is satisfied by any value that
// is not a number, "required" by any value that is not an object, and so on.
//
// # Claims
//
// The additionalProperties and additionalItems keywords apply only to the
// members of an object (or elements of a list) that were not already claimed
// by the properties, patternProperties, or items keywords of the same schema
// object. Each application of a schema object to a value tracks its claims
// separately, so sub-schemas applied through allOf, anyOf, oneOf, not, or to
// nested values do not affect the claims of their parent.
package schema

import (
	"github.com/creachadair/jcheck/value"
)

// A Rule is a compiled schema. A zero Rule accepts every value.
type Rule struct {
	// If checks is empty, the rule is constant and its result is reject.
	reject bool
	checks []check
}

// Validate reports whether v satisfies r.
func (r *Rule) Validate(v value.Value) bool { return r.match(v) }

// match applies r to v in a fresh claim scope.
func (r *Rule) match(v value.Value) bool {
	if len(r.checks) == 0 {
		return !r.reject
	}
	c := newClaims()
	for _, chk := range r.checks {
		if !chk.eval(v, c) {
			return false
		}
	}
	return true
}

// A check is a single keyword constraint of a schema object. Checks within a
// schema object share a claim scope.
type check interface {
	eval(v value.Value, c *claims) bool
}

// Compile compiles a schema document into a Rule.
//
// A Bool schema produces a constant rule. An Object schema produces a rule
// that is satisfied if all its keyword constraints are satisfied. Any other
// value produces a rule that rejects all values.
//
// If a keyword has an argument of the wrong form, Compile reports an error of
// concrete type *ConfigError.
func Compile(schema value.Value) (*Rule, error) {
	return compile(schema, "#")
}

// MustCompile compiles schema into a Rule, or panics.
func MustCompile(schema value.Value) *Rule {
	r, err := Compile(schema)
	if err != nil {
		panic(err)
	}
	return r
}
