// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package schema

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jcheck/value"
	"github.com/creachadair/mds/mapset"
)

// These keywords consult or update the claims of their schema object, and are
// evaluated last, in this order.
var (
	claimOrder = []string{
		"items", "additionalItems", "properties", "patternProperties", "additionalProperties",
	}
	claimKeywords = mapset.New(claimOrder...)
)

// compile compiles schema, whose location in the root document is path.
func compile(schema value.Value, path string) (*Rule, error) {
	switch t := schema.(type) {
	case value.Bool:
		return &Rule{reject: !bool(t)}, nil
	case *value.Object:
		return compileObject(t, path)
	default:
		return &Rule{reject: true}, nil
	}
}

func compileObject(obj *value.Object, path string) (*Rule, error) {
	var r Rule
	for key, arg := range obj.All() {
		if claimKeywords.Has(key) {
			continue
		}
		chk, err := compileKeyword(obj, key, arg, path)
		if err != nil {
			return nil, err
		}
		if chk != nil {
			r.checks = append(r.checks, chk)
		}
	}

	// The forms of items and additionalItems interact: additional items are
	// only possible when items is a list.
	items, hasItems := obj.Get("items")
	_, isTuple := items.(*value.List)
	for _, key := range claimOrder {
		arg, ok := obj.Get(key)
		if !ok {
			continue
		}
		if key == "additionalItems" && !(hasItems && isTuple) {
			// Every element is claimed by items (or there is no items keyword,
			// which claims every element by default), so there is nothing to do
			// beyond checking that the argument compiles.
			if _, err := compile(arg, subPath(path, key)); err != nil {
				return nil, err
			}
			continue
		}
		chk, err := compileKeyword(obj, key, arg, path)
		if err != nil {
			return nil, err
		}
		r.checks = append(r.checks, chk)
	}
	return &r, nil
}

// compileKeyword compiles the constraint for a single keyword of obj, with
// argument arg. It returns nil, nil if the keyword is not recognized or has
// no effect on its own.
func compileKeyword(obj *value.Object, key string, arg value.Value, path string) (check, error) {
	switch key {
	case "type":
		return compileType(arg, path)

	case "enum":
		lst, ok := arg.(*value.List)
		if !ok {
			return nil, configErrorf(path, key, "got %v, want list", arg.Kind())
		}
		vals := make(enumCheck, lst.Len())
		for i, elt := range lst.All() {
			vals[i] = elt.Clone()
		}
		return vals, nil

	case "required":
		lst, ok := arg.(*value.List)
		if !ok {
			return nil, configErrorf(path, key, "got %v, want list", arg.Kind())
		}
		var keys []string
		for i, elt := range lst.All() {
			s, ok := elt.(value.String)
			if !ok {
				return nil, configErrorf(path, key, "element %d: got %v, want string", i, elt.Kind())
			}
			keys = append(keys, string(s))
		}
		return requiredCheck(keys), nil

	case "minimum", "maximum":
		if !arg.Kind().IsNumber() {
			return nil, configErrorf(path, key, "got %v, want number", arg.Kind())
		}
		exKey := "exclusiveMinimum"
		if key == "maximum" {
			exKey = "exclusiveMaximum"
		}
		exclusive := false
		if ex, ok := obj.Get(exKey); ok {
			b, ok := ex.(value.Bool)
			if !ok {
				return nil, configErrorf(path, exKey, "got %v, want bool", ex.Kind())
			}
			exclusive = bool(b)
		}
		return rangeCheck{bound: arg, upper: key == "maximum", exclusive: exclusive}, nil

	case "exclusiveMinimum", "exclusiveMaximum":
		// Handled with minimum and maximum; without them these have no effect.
		if _, ok := arg.(value.Bool); !ok {
			return nil, configErrorf(path, key, "got %v, want bool", arg.Kind())
		}
		return nil, nil

	case "multipleOf":
		if !arg.Kind().IsNumber() {
			return nil, configErrorf(path, key, "got %v, want number", arg.Kind())
		} else if c, _ := value.Compare(arg, value.NewInt(0)); c <= 0 {
			return nil, configErrorf(path, key, "divisor is not positive")
		}
		return multipleCheck{div: arg}, nil

	case "minLength", "maxLength", "minItems", "maxItems":
		n, err := compileBound(arg)
		if err != nil {
			return nil, configErrorf(path, key, "%v", err)
		}
		return sizeCheck{
			bound:   n,
			strings: strings.HasSuffix(key, "Length"),
			upper:   strings.HasPrefix(key, "max"),
		}, nil

	case "allOf", "anyOf", "oneOf":
		rules, err := compileList(arg, path, key)
		if err != nil {
			return nil, err
		}
		switch key {
		case "allOf":
			return allOfCheck(rules), nil
		case "anyOf":
			return anyOfCheck(rules), nil
		default:
			return oneOfCheck(rules), nil
		}

	case "not":
		r, err := compile(arg, subPath(path, key))
		if err != nil {
			return nil, err
		}
		return notCheck{r}, nil

	case "properties":
		props, ok := arg.(*value.Object)
		if !ok {
			return nil, configErrorf(path, key, "got %v, want object", arg.Kind())
		}
		pc := make(propertiesCheck, props.Len())
		for name, sub := range props.All() {
			r, err := compile(sub, subPath(path, key, name))
			if err != nil {
				return nil, err
			}
			pc[name] = r
		}
		return pc, nil

	case "patternProperties":
		props, ok := arg.(*value.Object)
		if !ok {
			return nil, configErrorf(path, key, "got %v, want object", arg.Kind())
		}
		var pc patternCheck
		for expr, sub := range props.All() {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, configErrorf(path, key, "invalid pattern %q: %v", expr, err)
			}
			r, err := compile(sub, subPath(path, key, expr))
			if err != nil {
				return nil, err
			}
			pc = append(pc, patternRule{re: re, rule: r})
		}
		return pc, nil

	case "additionalProperties":
		r, err := compile(arg, subPath(path, key))
		if err != nil {
			return nil, err
		}
		return additionalPropsCheck{r}, nil

	case "items":
		if _, ok := arg.(*value.List); ok {
			rules, err := compileList(arg, path, key)
			if err != nil {
				return nil, err
			}
			return tupleCheck(rules), nil
		}
		r, err := compile(arg, subPath(path, key))
		if err != nil {
			return nil, err
		}
		return itemsCheck{r}, nil

	case "additionalItems":
		r, err := compile(arg, subPath(path, key))
		if err != nil {
			return nil, err
		}
		return additionalItemsCheck{r}, nil
	}
	return nil, nil
}

// typeKinds maps each type name to the value kinds it admits.
var typeKinds = map[string][]value.Kind{
	"integer": {value.KindInt},
	"number":  {value.KindInt, value.KindFloat},
	"string":  {value.KindString},
	"object":  {value.KindObject},
	"array":   {value.KindList},
	"boolean": {value.KindBool},
	"null":    {value.KindNull},
}

func compileType(arg value.Value, path string) (check, error) {
	var names []value.Value
	switch t := arg.(type) {
	case value.String:
		names = append(names, t)
	case *value.List:
		names = t.Values()
	default:
		return nil, configErrorf(path, "type", "got %v, want string or list", arg.Kind())
	}
	kinds := mapset.New[value.Kind]()
	for _, elt := range names {
		s, ok := elt.(value.String)
		if !ok {
			return nil, configErrorf(path, "type", "got %v, want type name", elt.Kind())
		}
		ks, ok := typeKinds[string(s)]
		if !ok {
			return nil, configErrorf(path, "type", "unknown type %q", s)
		}
		kinds.Add(ks...)
	}
	return typeCheck{kinds}, nil
}

// compileList compiles each element of a list of schemas, the argument of the
// given keyword.
func compileList(arg value.Value, path, key string) ([]*Rule, error) {
	lst, ok := arg.(*value.List)
	if !ok {
		return nil, configErrorf(path, key, "got %v, want list", arg.Kind())
	}
	rules := make([]*Rule, lst.Len())
	for i, elt := range lst.All() {
		r, err := compile(elt, subPath(path, key, strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		rules[i] = r
	}
	return rules, nil
}

// compileBound checks that arg is a non-negative integer and returns its
// value. A number with a zero fraction, such as 2.0, is accepted. Bounds too
// large for an int64 are clamped, since no length can reach them.
func compileBound(arg value.Value) (int64, error) {
	if !arg.Kind().IsNumber() {
		return 0, fmt.Errorf("got %v, want integer", arg.Kind())
	} else if !value.IsMultiple(arg, value.NewInt(1)) {
		return 0, errors.New("bound is not an integer")
	} else if c, _ := value.Compare(arg, value.NewInt(0)); c < 0 {
		return 0, errors.New("bound is negative")
	} else if c, _ := value.Compare(arg, value.NewInt(math.MaxInt64)); c >= 0 {
		return math.MaxInt64, nil
	}
	r, _ := value.Rat(arg) // integral and in range, so its size is bounded
	return r.Num().Int64(), nil
}

var pathEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// subPath extends path with the given elements, escaped as in a JSON pointer.
func subPath(path string, elts ...string) string {
	var sb strings.Builder
	sb.WriteString(path)
	for _, elt := range elts {
		sb.WriteByte('/')
		sb.WriteString(pathEscaper.Replace(elt))
	}
	return sb.String()
}
