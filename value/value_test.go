// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/creachadair/jcheck"
	"github.com/creachadair/jcheck/value"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, text string) value.Value {
	t.Helper()
	v, err := value.Parse(text)
	if err != nil {
		t.Fatalf("Parse %q: unexpected error: %v", text, err)
	}
	return v
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		input string
		want  value.Kind
	}{
		{`null`, value.KindNull},
		{`true`, value.KindBool},
		{`false`, value.KindBool},
		{`0`, value.KindInt},
		{`-15`, value.KindInt},
		{`3.25`, value.KindFloat},
		{`1e3`, value.KindFloat},
		{`""`, value.KindString},
		{`"abc"`, value.KindString},
		{`[]`, value.KindList},
		{`{}`, value.KindObject},
	}
	for _, tc := range tests {
		if got := mustParse(t, tc.input).Kind(); got != tc.want {
			t.Errorf("Parse %q: got kind %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`null`, `null`},
		{` true `, `true`},
		{`-0`, `0`},
		{`12345678901234567890123`, `12345678901234567890123`},
		{`-0.0`, `0.0`},
		{`2.50`, `2.50`},
		{`1e3`, `1000`},
		{`1.5e-3`, `0.0015`},
		{`1.25E+2`, `125`},
		{`0.1`, `0.1`},
		{`"aA\n"`, `"aA\n"`},
		{`"\/"`, `"/"`},
		{`[1, [2, 3], {}]`, `[1,[2,3],{}]`},
		{`{"b": 1, "a": 2, "c": {"z": null, "y": false}}`, `{"a":2,"b":1,"c":{"y":false,"z":null}}`},
		{`{"a": 1, "a": 2}`, `{"a":2}`},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := value.JSON(v); got != tc.want {
			t.Errorf("JSON %q: got %s, want %s", tc.input, got, tc.want)
		}

		// The compact form must parse back to an equal value.
		w := mustParse(t, v.JSON())
		if !value.Equal(v, w) {
			t.Errorf("Reparse %q: got %s, want %s", tc.input, w.JSON(), v.JSON())
		}
	}
}

func TestNumericExactness(t *testing.T) {
	big1 := "123456789012345678901234567890"
	v := mustParse(t, big1)
	z, ok := v.(*value.Int)
	if !ok {
		t.Fatalf("Parse %q: got %T, want *value.Int", big1, v)
	}
	if got := z.Big().String(); got != big1 {
		t.Errorf("Big: got %s, want %s", got, big1)
	}
	if _, ok := z.Int64(); ok {
		t.Error("Int64: reported ok for an out-of-range value")
	}

	f := mustParse(t, "0.1").(*value.Float)
	if got, want := f.Rat(), big.NewRat(1, 10); got.Cmp(want) != 0 {
		t.Errorf("Rat: got %v, want %v", got, want)
	}
	coef, exp := f.Decimal()
	if coef.Int64() != 1 || exp != -1 {
		t.Errorf("Decimal: got %v, %d; want 1, -1", coef, exp)
	}

	if !value.Equal(mustParse(t, "2"), mustParse(t, "2.0")) {
		t.Error("Equal(2, 2.0) = false, want true")
	}
	if value.Equal(mustParse(t, "2"), mustParse(t, "2.01")) {
		t.Error("Equal(2, 2.01) = true, want false")
	}
	if c, ok := value.Compare(mustParse(t, "-1e400"), value.NewInt(0)); !ok || c >= 0 {
		t.Errorf("Compare(-1e400, 0): got %d, %v; want -1, true", c, ok)
	}
	if _, ok := value.Compare(value.String("1"), value.NewInt(1)); ok {
		t.Error("Compare(string, int): reported ok")
	}

	if _, err := value.FloatOf(0.5); err != nil {
		t.Errorf("FloatOf(0.5): unexpected error: %v", err)
	}
	if f, err := value.FloatOf(0); err != nil || f.JSON() != "0" {
		t.Errorf("FloatOf(0): got %v, %v", f, err)
	}
	if _, err := value.FloatOf(math.Inf(1)); err == nil {
		t.Error("FloatOf(+Inf): got nil error")
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() (value.Value, error)
	}{
		{"ExponentTooLarge", func() (value.Value, error) { return value.Parse("1e3000000000") }},
		{"ExponentTooSmall", func() (value.Value, error) { return value.Parse("[2.5E-3000000000]") }},
		{"BadIntegerText", func() (value.Value, error) {
			return value.FromTree(jcheck.NewTerminal(jcheck.Lexeme{Token: jcheck.Integer, Text: "1x"}))
		}},
		{"BadNumberText", func() (value.Value, error) {
			return value.FromTree(jcheck.NewTerminal(jcheck.Lexeme{Token: jcheck.Number, Text: "1.e5"}))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.run()
			var nerr *value.NumberError
			if !errors.As(err, &nerr) {
				t.Fatalf("Got (%v, %v), want *NumberError", v, err)
			}
			var terr *value.TranslationError
			if errors.As(err, &terr) {
				t.Errorf("Got %v, which should not be a *TranslationError", err)
			}
			t.Logf("Got expected error: %v", err)
		})
	}

	// The largest representable exponents are accepted.
	for _, text := range []string{"1e2147483647", "-7E-2147483648"} {
		if _, err := value.Parse(text); err != nil {
			t.Errorf("Parse %q: unexpected error: %v", text, err)
		}
	}
}

func TestHugeExponents(t *testing.T) {
	huge := mustParse(t, "1e900000000")
	negHuge := mustParse(t, "-25e900000000")
	tiny := mustParse(t, "3e-900000000")
	alsoHuge := mustParse(t, "10.0e899999999")

	cmpTests := []struct {
		a, b value.Value
		want int
	}{
		{huge, value.NewInt(0), 1},
		{value.NewInt(0), huge, -1},
		{negHuge, huge, -1},
		{negHuge, mustParse(t, "-1"), -1},
		{huge, alsoHuge, 0},
		{huge, mustParse(t, "1.0000000001e900000000"), -1},
		{tiny, value.NewInt(0), 1},
		{tiny, mustParse(t, "0.5"), -1},
		{tiny, mustParse(t, "30e-900000001"), 0},
		{mustParse(t, "-3e-900000000"), tiny, -1},
		{mustParse(t, "123456789012345678901234567890"), mustParse(t, "1.2345678901234567890123456789e29"), 0},
		{mustParse(t, "99"), mustParse(t, "1e2"), -1},
		{mustParse(t, "-100"), mustParse(t, "-1e2"), 0},
		{mustParse(t, "0.0"), mustParse(t, "-0"), 0},
	}
	for i, tc := range cmpTests {
		if got, ok := value.Compare(tc.a, tc.b); !ok || got != tc.want {
			t.Errorf("Compare [case %d]: got %d, %v; want %d, true", i, got, ok, tc.want)
		}
	}
	if !value.Equal(huge, alsoHuge) {
		t.Error("Equal(1e900000000, 10.0e899999999): got false, want true")
	}

	multTests := []struct {
		a, b value.Value
		want bool
	}{
		{huge, value.NewInt(7), false},
		{huge, value.NewInt(8), true},
		{huge, mustParse(t, "2e899999999"), true},
		{huge, mustParse(t, "0.3"), false},
		{huge, tiny, false},
		{negHuge, mustParse(t, "125"), true},
		{tiny, value.NewInt(1), false},
		{tiny, tiny, true},
		{mustParse(t, "6e-900000000"), tiny, true},
		{mustParse(t, "0.0075"), mustParse(t, "0.0001"), true},
		{mustParse(t, "4.5"), value.NewInt(3), false},
		{mustParse(t, "3"), mustParse(t, "1.5"), true},
		{mustParse(t, "4"), mustParse(t, "1.5"), false},
		{mustParse(t, "10"), mustParse(t, "2.5"), true},
		{mustParse(t, "0"), tiny, true},
		{value.NewInt(5), value.NewInt(0), false},
		{value.String("5"), value.NewInt(5), false},
	}
	for i, tc := range multTests {
		if got := value.IsMultiple(tc.a, tc.b); got != tc.want {
			t.Errorf("IsMultiple [case %d]: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestSmallIntsShared(t *testing.T) {
	if value.NewInt(7) != mustParse(t, "7") {
		t.Error("Small integers are not shared")
	}
	if value.NewInt(1000) == value.NewInt(1000) {
		t.Error("Large integers are unexpectedly shared")
	}
}

func TestEscaping(t *testing.T) {
	tests := []struct {
		input string // decoded text
		want  string // quoted form
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`a"b\c`, `"a\"b\\c"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"/ok", `"/ok"`},
		{"café \U0001F600", "\"café \U0001F600\""},
	}
	for _, tc := range tests {
		got := jcheck.Quote(tc.input)
		if got != tc.want {
			t.Errorf("Quote %q: got %s, want %s", tc.input, got, tc.want)
		}
		dec, err := jcheck.Unquote(got)
		if err != nil {
			t.Errorf("Unquote %s: unexpected error: %v", got, err)
		} else if dec != tc.input {
			t.Errorf("Unquote %s: got %q, want %q", got, dec, tc.input)
		}
	}
}

func TestUnicodeEscapes(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"\u00e9"`, "\u00e9"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"\ud83d"`, "\uFFFD"},
		{`"\ude00x"`, "\uFFFDx"},
		{`"\ud83dx\ude00"`, "\uFFFDx\uFFFD"},
		{`"\u0041\u0000"`, "A\x00"},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := value.AsString(v); got != tc.want {
			t.Errorf("Parse %s: got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := value.Parse(`{"a":}`)
	var serr *jcheck.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	}
	if serr.Location != (jcheck.LineCol{Line: 1, Column: 5}) {
		t.Errorf("Location: got %v, want 1:5", serr.Location)
	}

	_, err = value.Parse(`[1, @]`)
	var lerr *jcheck.LexError
	if !errors.As(err, &lerr) {
		t.Errorf("Parse: got %v, want *LexError", err)
	}
}

func TestFromTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		node jcheck.Node
	}{
		{"UnknownSymbol", jcheck.NewTree("bogus")},
		{"BadPair", jcheck.NewTree(jcheck.SymObject, jcheck.NewTree(jcheck.SymPair))},
		{"NonTerminal", jcheck.NewTree(jcheck.SymInteger)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := value.FromTree(tc.node)
			var terr *value.TranslationError
			if !errors.As(err, &terr) {
				t.Fatalf("FromTree: got (%v, %v), want *TranslationError", v, err)
			}
			t.Logf("Got expected error: %v", err)
		})
	}

	bad := jcheck.NewTerminal(jcheck.Lexeme{Token: jcheck.String, Text: `"\x"`})
	_, err := value.FromTree(bad)
	var ferr *jcheck.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("FromTree: got %v, want *FormatError", err)
	}
}

func TestPretty(t *testing.T) {
	v := mustParse(t, `{"b": {}, "a": [1, true, []], "c": {"d": "x"}}`)
	const want = `{
  "a": [
    1,
    true,
    []
  ],
  "b": {},
  "c": {
    "d": "x"
  }
}`
	if diff := cmp.Diff(want, value.Pretty(v, 2)); diff != "" {
		t.Errorf("Pretty (-want, +got):\n%s", diff)
	}

	const want4 = "[\n    null\n]"
	if got := value.Pretty(value.NewList(value.Null{}), 4); got != want4 {
		t.Errorf("Pretty: got %q, want %q", got, want4)
	}
	if got := value.Pretty(value.NewInt(5), 2); got != "5" {
		t.Errorf("Pretty: got %q, want 5", got)
	}
}

func TestKeyOrder(t *testing.T) {
	obj := value.NewObjectFunc(func(a, b string) int { return strings.Compare(b, a) })
	obj.Set("a", value.NewInt(1))
	obj.Set("c", value.NewInt(3))
	obj.Set("b", value.NewInt(2))
	if got, want := obj.JSON(), `{"c":3,"b":2,"a":1}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	obj.SetOrder(nil)
	if got, want := obj.JSON(), `{"a":1,"b":2,"c":3}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}

func TestObject(t *testing.T) {
	obj := value.NewObject()
	obj.Set("name", value.String("x"))
	obj.Set("flag", value.Bool(true))
	obj.Set("nil", nil)

	if got := obj.StringOr("name", "def"); got != "x" {
		t.Errorf("StringOr: got %q, want x", got)
	}
	if got := obj.StringOr("flag", "def"); got != "def" {
		t.Errorf("StringOr: got %q, want def", got)
	}
	if got := obj.BoolOr("flag", false); !got {
		t.Error("BoolOr: got false, want true")
	}
	if v, ok := obj.Get("nil"); !ok || v.Kind() != value.KindNull {
		t.Errorf("Get nil: got %v, %v; want null, true", v, ok)
	}
	if v, ok := obj.Remove("name"); !ok || value.AsString(v) != "x" {
		t.Errorf("Remove: got %v, %v", v, ok)
	}
	if obj.Has("name") || obj.Len() != 2 {
		t.Errorf("After Remove: Has=%v Len=%d", obj.Has("name"), obj.Len())
	}
	var keys []string
	for key := range obj.All() {
		keys = append(keys, key)
	}
	if diff := cmp.Diff([]string{"flag", "nil"}, keys); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	lst := value.NewList(value.NewInt(1), nil)
	lst.Add(value.String("z"))
	lst.Set(0, value.Bool(false))
	if got, want := lst.JSON(), `[false,null,"z"]`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
	if lst.Has(3) || !lst.Has(2) || lst.Has(-1) {
		t.Error("Has reports the wrong bounds")
	}
	if v := lst.Remove(1); v.Kind() != value.KindNull {
		t.Errorf("Remove: got %v, want null", v)
	}
	if got, want := lst.JSON(), `[false,"z"]`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}

func TestClone(t *testing.T) {
	orig := mustParse(t, `{"a": [1, {"b": 2}], "c": "d"}`)
	cp := orig.Clone()
	if !value.Equal(orig, cp) {
		t.Fatalf("Clone: got %s, want %s", cp.JSON(), orig.JSON())
	}

	// Modifying the copy must not affect the original.
	a, _ := value.AsObject(cp).Get("a")
	inner := value.AsList(a)
	inner.Add(value.NewInt(3))
	value.AsObject(inner.At(1)).Set("b", value.String("changed"))
	value.AsObject(cp).Set("e", value.Null{})

	if got, want := orig.JSON(), `{"a":[1,{"b":2}],"c":"d"}`; got != want {
		t.Errorf("Original changed: got %s, want %s", got, want)
	}
	if value.Equal(orig, cp) {
		t.Error("Equal: original and modified copy are equal")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{`null`, `null`, true},
		{`null`, `false`, false},
		{`true`, `true`, true},
		{`"a"`, `"a"`, true},
		{`"a"`, `"b"`, false},
		{`1`, `"1"`, false},
		{`1.50`, `1.5`, true},
		{`[1, 2]`, `[1, 2]`, true},
		{`[1, 2]`, `[2, 1]`, false},
		{`[1]`, `[1, 1]`, false},
		{`{"a": 1, "b": 2}`, `{"b": 2, "a": 1.0}`, true},
		{`{"a": 1}`, `{"b": 1}`, false},
		{`{"a": 1}`, `[1]`, false},
	}
	for _, tc := range tests {
		if got := value.Equal(mustParse(t, tc.a), mustParse(t, tc.b)); got != tc.want {
			t.Errorf("Equal(%s, %s): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"AsObject", func() { value.AsObject(value.NewList()) }},
		{"AsList", func() { value.AsList(value.String("x")) }},
		{"AsString", func() { value.AsString(value.NewInt(1)) }},
		{"AsBool", func() { value.AsBool(value.Null{}) }},
		{"AsNumber", func() { value.AsNumber(value.Bool(true)) }},
		{"Len", func() { value.Len(value.NewInt(3)) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mtest.MustPanic(t, tc.f)
			uerr, ok := p.(*value.UnsupportedError)
			if !ok {
				t.Fatalf("Panic value: got %T, want *UnsupportedError", p)
			}
			if uerr.Op != tc.name {
				t.Errorf("Op: got %q, want %q", uerr.Op, tc.name)
			}
			t.Logf("Got expected panic: %v", uerr)
		})
	}

	if n := value.Len(value.String("héllo")); n != 5 {
		t.Errorf("Len: got %d, want 5", n)
	}
}

func TestToValue(t *testing.T) {
	v := value.ToValue(map[string]any{
		"s":   "str",
		"b":   true,
		"i":   -3,
		"u":   uint64(1 << 63),
		"f":   0.25,
		"n":   nil,
		"l":   []any{1, "two", []value.Value{value.Null{}}},
		"big": new(big.Int).Lsh(big.NewInt(1), 70),
	})
	const want = `{"b":true,"big":1180591620717411303424,"f":0.25,"i":-3,` +
		`"l":[1,"two",[null]],"n":null,"s":"str","u":9223372036854775808}`
	if got := v.JSON(); got != want {
		t.Errorf("ToValue: got %s, want %s", got, want)
	}

	mtest.MustPanic(t, func() { value.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { value.ToValue(func() {}) })
}
