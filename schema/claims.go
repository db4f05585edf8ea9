// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package schema

import "github.com/creachadair/mds/mapset"

// Status is the validation status of a member or element within a single
// application of a schema object.
type Status byte

// Constants defining the valid Status values.
const (
	Unvalidated Status = iota // not yet claimed by any keyword
	Validated                 // claimed by properties, patternProperties, or items
)

func (s Status) String() string {
	if s == Validated {
		return "validated"
	}
	return "unvalidated"
}

// claims records which members and elements of the value under a schema
// object have been claimed by its keywords. Claims are keyed by the position
// of the child within its parent rather than by the child value, since the
// same value may occur at several positions.
type claims struct {
	keys  mapset.Set[string]
	elems mapset.Set[int]
}

func newClaims() *claims {
	return &claims{keys: mapset.New[string](), elems: mapset.New[int]()}
}

func (c *claims) claimKey(key string) { c.keys.Add(key) }

func (c *claims) claimIndex(i int) { c.elems.Add(i) }

func (c *claims) keyStatus(key string) Status {
	if c.keys.Has(key) {
		return Validated
	}
	return Unvalidated
}

func (c *claims) indexStatus(i int) Status {
	if c.elems.Has(i) {
		return Validated
	}
	return Unvalidated
}
