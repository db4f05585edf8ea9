// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package schema

import (
	"regexp"
	"unicode/utf8"

	"github.com/creachadair/jcheck/value"
	"github.com/creachadair/mds/mapset"
)

// typeCheck is satisfied by values whose kind is in the set.
type typeCheck struct{ kinds mapset.Set[value.Kind] }

func (t typeCheck) eval(v value.Value, _ *claims) bool { return t.kinds.Has(v.Kind()) }

// enumCheck is satisfied by values equal to one of its elements.
type enumCheck []value.Value

func (e enumCheck) eval(v value.Value, _ *claims) bool {
	for _, want := range e {
		if value.Equal(want, v) {
			return true
		}
	}
	return false
}

// requiredCheck is satisfied by objects having all the listed keys.
type requiredCheck []string

func (rc requiredCheck) eval(v value.Value, _ *claims) bool {
	obj, ok := v.(*value.Object)
	if !ok {
		return true
	}
	for _, key := range rc {
		if !obj.Has(key) {
			return false
		}
	}
	return true
}

// rangeCheck is satisfied by numbers on the permitted side of a bound.
type rangeCheck struct {
	bound     value.Value // an *Int or *Float
	upper     bool        // bound is a maximum rather than a minimum
	exclusive bool        // the bound itself is not permitted
}

func (rc rangeCheck) eval(v value.Value, _ *claims) bool {
	c, ok := value.Compare(v, rc.bound)
	if !ok {
		return true
	}
	if rc.upper {
		c = -c
	}
	if rc.exclusive {
		return c > 0
	}
	return c >= 0
}

// multipleCheck is satisfied by numbers that are an exact integer multiple of
// the divisor.
type multipleCheck struct{ div value.Value }

func (mc multipleCheck) eval(v value.Value, _ *claims) bool {
	if !v.Kind().IsNumber() {
		return true
	}
	return value.IsMultiple(v, mc.div)
}

// sizeCheck bounds the number of code points in a string, or the number of
// elements in a list.
type sizeCheck struct {
	bound   int64
	strings bool // if true, applies to strings; otherwise lists
	upper   bool // bound is a maximum rather than a minimum
}

func (sc sizeCheck) eval(v value.Value, _ *claims) bool {
	var n int64
	switch t := v.(type) {
	case value.String:
		if !sc.strings {
			return true
		}
		n = int64(utf8.RuneCountInString(string(t)))
	case *value.List:
		if sc.strings {
			return true
		}
		n = int64(t.Len())
	default:
		return true
	}
	if sc.upper {
		return n <= sc.bound
	}
	return n >= sc.bound
}

type allOfCheck []*Rule

func (a allOfCheck) eval(v value.Value, _ *claims) bool {
	for _, r := range a {
		if !r.match(v) {
			return false
		}
	}
	return true
}

type anyOfCheck []*Rule

func (a anyOfCheck) eval(v value.Value, _ *claims) bool {
	for _, r := range a {
		if r.match(v) {
			return true
		}
	}
	return false
}

type oneOfCheck []*Rule

func (o oneOfCheck) eval(v value.Value, _ *claims) bool {
	n := 0
	for _, r := range o {
		if r.match(v) {
			n++
			if n > 1 {
				return false
			}
		}
	}
	return n == 1
}

type notCheck struct{ rule *Rule }

func (nc notCheck) eval(v value.Value, _ *claims) bool { return !nc.rule.match(v) }

// propertiesCheck applies a schema to each object member whose key it names,
// and claims those members.
type propertiesCheck map[string]*Rule

func (pc propertiesCheck) eval(v value.Value, c *claims) bool {
	obj, ok := v.(*value.Object)
	if !ok {
		return true
	}
	for key, elt := range obj.All() {
		r, ok := pc[key]
		if !ok {
			continue
		} else if !r.match(elt) {
			return false
		}
		c.claimKey(key)
	}
	return true
}

type patternRule struct {
	re   *regexp.Regexp
	rule *Rule
}

// patternCheck applies every schema whose pattern matches some part of an
// object member's key, and claims the members with at least one match.
type patternCheck []patternRule

func (pc patternCheck) eval(v value.Value, c *claims) bool {
	obj, ok := v.(*value.Object)
	if !ok {
		return true
	}
	for key, elt := range obj.All() {
		matched := false
		for _, p := range pc {
			if !p.re.MatchString(key) {
				continue
			}
			matched = true
			if !p.rule.match(elt) {
				return false
			}
		}
		if matched {
			c.claimKey(key)
		}
	}
	return true
}

// additionalPropsCheck applies a schema to each unclaimed object member.
type additionalPropsCheck struct{ rule *Rule }

func (ac additionalPropsCheck) eval(v value.Value, c *claims) bool {
	obj, ok := v.(*value.Object)
	if !ok {
		return true
	}
	for key, elt := range obj.All() {
		if c.keyStatus(key) == Validated {
			continue
		} else if !ac.rule.match(elt) {
			return false
		}
		c.claimKey(key)
	}
	return true
}

// itemsCheck applies a schema to every list element, and claims them all.
type itemsCheck struct{ rule *Rule }

func (ic itemsCheck) eval(v value.Value, c *claims) bool {
	lst, ok := v.(*value.List)
	if !ok {
		return true
	}
	ok = true
	for i, elt := range lst.All() {
		c.claimIndex(i)
		if !ic.rule.match(elt) {
			ok = false
		}
	}
	return ok
}

// tupleCheck applies each schema to the list element at the same position,
// and claims the elements it checks.
type tupleCheck []*Rule

func (tc tupleCheck) eval(v value.Value, c *claims) bool {
	lst, ok := v.(*value.List)
	if !ok {
		return true
	}
	ok = true
	for i := range min(len(tc), lst.Len()) {
		c.claimIndex(i)
		if !tc[i].match(lst.At(i)) {
			ok = false
		}
	}
	return ok
}

// additionalItemsCheck applies a schema to each unclaimed list element.
type additionalItemsCheck struct{ rule *Rule }

func (ac additionalItemsCheck) eval(v value.Value, c *claims) bool {
	lst, ok := v.(*value.List)
	if !ok {
		return true
	}
	for i, elt := range lst.All() {
		if c.indexStatus(i) == Validated {
			continue
		} else if !ac.rule.match(elt) {
			return false
		}
		c.claimIndex(i)
	}
	return true
}
