// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package load reads JSON documents from files in several formats.
package load

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/creachadair/jcheck/value"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// A Format identifies the syntax of an input document.
type Format int

// Constants defining the supported formats.
const (
	JSON Format = iota // plain JSON
	JWCC               // JSON with comments and trailing commas
	YAML               // YAML 1.2
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case JWCC:
		return "JWCC"
	case YAML:
		return "YAML"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// FormatOf reports the format of the file at path, based on its extension.
// Files with an unrecognized extension are treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jwcc", ".hujson":
		return JWCC
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// File reads the contents of the file at path and parses it as a single
// document in the format reported by FormatOf.
func File(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Bytes(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Bytes parses data as a single document in the given format.
func Bytes(data []byte, f Format) (value.Value, error) {
	switch f {
	case JSON:
		return value.Parse(string(data))
	case JWCC:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("standardize: %w", err)
		}
		return value.Parse(string(std))
	case YAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, errors.New("empty document")
		}
		var c yamlConverter
		return c.convert(doc.Content[0])
	}
	return nil, fmt.Errorf("unknown format %v", f)
}

// maxAliasNodes bounds the number of values a document may produce by
// expanding aliases. Nested aliases grow exponentially in the size of the
// input, so a short document can otherwise expand without limit.
const maxAliasNodes = 1 << 20

// A yamlConverter converts YAML nodes into values.
type yamlConverter struct {
	inAlias  int // depth of alias expansion
	expanded int // values produced inside aliases
}

// convert converts a YAML node into a Value.
func (c *yamlConverter) convert(n *yaml.Node) (value.Value, error) {
	if c.inAlias > 0 {
		c.expanded++
		if c.expanded > maxAliasNodes {
			return nil, fmt.Errorf("line %d: alias expansion exceeds %d values", n.Line, maxAliasNodes)
		}
	}
	switch n.Kind {
	case yaml.AliasNode:
		c.inAlias++
		defer func() { c.inAlias-- }()
		return c.convert(n.Alias)

	case yaml.SequenceNode:
		lst := value.NewList()
		for _, elt := range n.Content {
			v, err := c.convert(elt)
			if err != nil {
				return nil, err
			}
			lst.Add(v)
		}
		return lst, nil

	case yaml.MappingNode:
		obj := value.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", key.Line)
			}
			v, err := c.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(key.Value, v)
		}
		return obj, nil

	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func fromScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null{}, nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return value.Bool(b), nil

	case "!!int":
		z, ok := new(big.Int).SetString(n.Value, 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		return value.NewBigInt(z), nil

	case "!!float":
		// Integers too large for an int64 are tagged as floats. Keep the exact
		// digits when the text is already a JSON number.
		text := strings.TrimPrefix(n.Value, "+")
		if z, err := value.ParseInt(text); err == nil {
			return z, nil
		} else if f, err := value.ParseFloat(text); err == nil {
			return f, nil
		}
		var x float64
		if err := n.Decode(&x); err != nil {
			return nil, err
		}
		f, err := value.FloatOf(x)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return f, nil
	}
	return value.String(n.Value), nil
}
