// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"cmp"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// An Int is an arbitrary-precision JSON integer. Int values are immutable.
type Int struct{ z *big.Int }

const (
	smallMin = -256
	smallMax = 255
)

// small holds the shared values for integers in [smallMin, smallMax].
var small [smallMax - smallMin + 1]*Int

func init() {
	for i := range small {
		small[i] = &Int{z: big.NewInt(int64(i + smallMin))}
	}
}

// NewInt returns an Int with value n.
func NewInt(n int64) *Int {
	if smallMin <= n && n <= smallMax {
		return small[n-smallMin]
	}
	return &Int{z: big.NewInt(n)}
}

// NewBigInt returns an Int with value z. The Int does not retain z.
func NewBigInt(z *big.Int) *Int {
	if z.IsInt64() {
		return NewInt(z.Int64())
	}
	return &Int{z: new(big.Int).Set(z)}
}

// ParseInt parses s as a base-10 integer with an optional leading sign.
// A malformed input is reported as a [*NumberError].
func ParseInt(s string) (*Int, error) {
	if !intRE.MatchString(s) {
		return nil, &NumberError{Text: s, Err: errors.New("not an integer")}
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &NumberError{Text: s, Err: errors.New("not an integer")}
	}
	if z.IsInt64() {
		return NewInt(z.Int64()), nil
	}
	return &Int{z: z}, nil
}

func (*Int) Kind() Kind       { return KindInt }
func (z *Int) Clone() Value   { return z }
func (z *Int) JSON() string   { return z.z.String() }
func (z *Int) String() string { return z.z.String() }
func (*Int) isValue()         {}

// Big returns a copy of the value of z.
func (z *Int) Big() *big.Int { return new(big.Int).Set(z.z) }

// Int64 returns the value of z and true, or 0 and false if z does not fit in
// an int64.
func (z *Int) Int64() (int64, bool) {
	if z.z.IsInt64() {
		return z.z.Int64(), true
	}
	return 0, false
}

// Rat returns the value of z as a fraction.
func (z *Int) Rat() *big.Rat { return new(big.Rat).SetInt(z.z) }

// A Float is an exact decimal JSON number, the value coef × 10^exp. A Float
// keeps the precision of the text it was parsed from, so "2.50" is rendered
// back as "2.50". Float values are immutable.
type Float struct {
	coef *big.Int
	exp  int
}

// NewFloat returns a Float with value coef × 10^exp. The Float does not
// retain coef.
func NewFloat(coef *big.Int, exp int) *Float {
	return &Float{coef: new(big.Int).Set(coef), exp: exp}
}

// ParseFloat parses s as a JSON number: an optional minus sign, integer
// digits, an optional fraction, and an optional exponent. A malformed input,
// or one whose exponent does not fit in 32 bits, is reported as a
// [*NumberError].
func ParseFloat(s string) (*Float, error) {
	if !floatRE.MatchString(s) {
		return nil, &NumberError{Text: s, Err: errors.New("not a number")}
	}
	mant, exps, hasExp := strings.Cut(strings.ToLower(s), "e")
	whole, frac, _ := strings.Cut(mant, ".")
	coef, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, &NumberError{Text: s, Err: errors.New("not a number")}
	}
	exp := int64(-len(frac))
	if hasExp {
		e, err := strconv.ParseInt(exps, 10, 32)
		if err != nil {
			return nil, &NumberError{Text: s, Err: errors.New("exponent out of range")}
		}
		exp += e
	}
	return &Float{coef: coef, exp: int(exp)}, nil
}

// FloatOf returns a Float with the value of f. It reports an error if f is
// not finite, since JSON has no literal for NaN or infinities.
func FloatOf(f float64) (*Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New("non-finite number")
	}
	return ParseFloat(strconv.FormatFloat(f, 'g', -1, 64))
}

var (
	intRE   = regexp.MustCompile(`^-?[0-9]+$`)
	floatRE = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)
)

func (*Float) Kind() Kind     { return KindFloat }
func (f *Float) Clone() Value { return f }
func (f *Float) JSON() string { return f.String() }
func (*Float) isValue()       {}

// Decimal returns the coefficient and exponent of f. The caller receives a
// copy of the coefficient.
func (f *Float) Decimal() (*big.Int, int) { return new(big.Int).Set(f.coef), f.exp }

// Rat returns the value of f as a fraction. The size of the result grows
// with the magnitude of the exponent; use Compare and IsMultiple to relate
// numbers without building it.
func (f *Float) Rat() *big.Rat {
	r := new(big.Rat).SetInt(f.coef)
	if f.exp == 0 {
		return r
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(f.exp))), nil)
	if f.exp > 0 {
		return r.Mul(r, new(big.Rat).SetInt(p))
	}
	return r.Quo(r, new(big.Rat).SetInt(p))
}

// String renders f in plain decimal notation, without an exponent.
func (f *Float) String() string {
	digits := new(big.Int).Abs(f.coef).String()
	var sb strings.Builder
	if f.coef.Sign() < 0 {
		sb.WriteByte('-')
	}
	switch {
	case f.exp >= 0:
		sb.WriteString(digits)
		if f.coef.Sign() != 0 {
			sb.WriteString(strings.Repeat("0", f.exp))
		}
	case len(digits) <= -f.exp:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -f.exp-len(digits)))
		sb.WriteString(digits)
	default:
		dot := len(digits) + f.exp
		sb.WriteString(digits[:dot])
		sb.WriteByte('.')
		sb.WriteString(digits[dot:])
	}
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Rat returns the numeric value of v as a fraction, and true; or nil and
// false if v is not a number.
func Rat(v Value) (*big.Rat, bool) {
	switch t := v.(type) {
	case *Int:
		return t.Rat(), true
	case *Float:
		return t.Rat(), true
	}
	return nil, false
}

// Compare compares the numeric values of a and b, returning -1, 0, or +1 as
// a is less than, equal to, or greater than b. The second result is false if
// either argument is not a number.
//
// The cost of Compare depends on the number of digits in a and b, and not on
// the size of their exponents.
func Compare(a, b Value) (int, bool) {
	ca, ea, ok := decimal(a)
	if !ok {
		return 0, false
	}
	cb, eb, ok := decimal(b)
	if !ok {
		return 0, false
	}
	sa, sb := ca.Sign(), cb.Sign()
	if sa != sb || sa == 0 {
		return cmp.Compare(sa, sb), true
	}

	// With the same sign, the magnitude with the higher leading digit wins.
	if pa, pb := ea+numDigits(ca), eb+numDigits(cb); pa != pb {
		if pa < pb {
			return -sa, true
		}
		return sa, true
	}

	// The leading digits line up, so the exponents differ by no more than the
	// number of digits and the coefficients can be aligned directly.
	if ea > eb {
		ca = scale(ca, ea-eb)
	} else if eb > ea {
		cb = scale(cb, eb-ea)
	}
	return ca.Cmp(cb), true
}

// IsMultiple reports whether a is an integer multiple of b. It reports false
// if either argument is not a number, or if b is zero. Like Compare, its cost
// does not depend on the size of the exponents.
func IsMultiple(a, b Value) bool {
	ca, ea, ok := decimal(a)
	if !ok {
		return false
	}
	cb, eb, ok := decimal(b)
	if !ok || cb.Sign() == 0 {
		return false
	} else if ca.Sign() == 0 {
		return true
	}
	x := new(big.Int).Abs(ca)
	y := new(big.Int).Abs(cb)

	// a/b = (x/y) × 10^e
	e := ea - eb
	if e < 0 {
		if -e > numDigits(x) {
			return false // 0 < |a/b| < 1
		}
		return new(big.Int).Rem(x, scale(y, -e)).Sign() == 0
	}

	// y must divide x × 10^e. Once the factors y shares with x are removed,
	// only 2s and 5s may remain, neither more than e times.
	r := new(big.Int).Quo(y, new(big.Int).GCD(nil, nil, x, y))
	twos := r.TrailingZeroBits()
	r.Rsh(r, twos)
	var fives uint
	five, rem := big.NewInt(5), new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(r, five, rem)
		if m.Sign() != 0 {
			break
		}
		r, fives = q, fives+1
	}
	return r.IsInt64() && r.Int64() == 1 && twos <= uint(e) && fives <= uint(e)
}

// decimal returns the value of a number as coef × 10^exp.
func decimal(v Value) (*big.Int, int, bool) {
	switch t := v.(type) {
	case *Int:
		return t.z, 0, true
	case *Float:
		return t.coef, t.exp, true
	}
	return nil, 0, false
}

// numDigits returns the number of decimal digits in the magnitude of z.
func numDigits(z *big.Int) int {
	if z.Sign() < 0 {
		return len(z.Text(10)) - 1
	}
	return len(z.Text(10))
}

// scale returns z × 10^n for n >= 0.
func scale(z *big.Int, n int) *big.Int {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	return p.Mul(p, z)
}
