// File: number.go
// Title: Numeric Helpers
// Description: Implements the Number newtype and the package-level helpers
//              Abs, Ceil, Floor, Round, Sign, Times and Mod.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package numx

import (
	"math"
	"strconv"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
)

// MaxCount is the largest repeat count Times accepts. Every integer up to
// it is exactly representable as a float64.
const MaxCount = 1 << 53

// Number is a float64 carrying the numx helpers as methods
type Number float64

// Float64 returns n as a float64
func (n Number) Float64() float64 {
	return float64(n)
}

// String formats n with the fewest digits that represent it exactly
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Abs returns the magnitude of n
func (n Number) Abs() Number {
	return Number(Abs(float64(n)))
}

// Ceil returns the smallest integer greater than or equal to n
func (n Number) Ceil() Number {
	return Number(Ceil(float64(n)))
}

// Floor returns the largest integer less than or equal to n
func (n Number) Floor() Number {
	return Number(Floor(float64(n)))
}

// Round returns the integer nearest to n, ties toward positive infinity
func (n Number) Round() Number {
	return Number(Round(float64(n)))
}

// Sign returns 1, -1 or 0
func (n Number) Sign() int {
	return Sign(float64(n))
}

// Times invokes fn n times and returns n, so calls can be chained
func (n Number) Times(fn func()) (Number, error) {
	_, err := Times(float64(n), fn)
	return n, err
}

// MustTimes is like Times but panics on an invalid count or nil callback
func (n Number) MustTimes(fn func()) Number {
	result, err := n.Times(fn)
	if err != nil {
		panic(err)
	}
	return result
}

// Mod returns the Euclidean remainder of n divided by base
func (n Number) Mod(base Number) (Number, error) {
	r, err := Mod(float64(n), float64(base))
	return Number(r), err
}

// MustMod is like Mod but panics when base is not a positive finite number
func (n Number) MustMod(base Number) Number {
	result, err := n.Mod(base)
	if err != nil {
		panic(err)
	}
	return result
}

// Abs returns the magnitude of x. Abs(-0) is 0.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Ceil returns the smallest integer greater than or equal to x.
// Ceil(-1.2) is -1.
func Ceil(x float64) float64 {
	return math.Ceil(x)
}

// Floor returns the largest integer less than or equal to x.
// Floor(-1.2) is -2.
func Floor(x float64) float64 {
	return math.Floor(x)
}

// Round returns the integer nearest to x. A fractional part of exactly 0.5
// rounds toward positive infinity, so Round(x) equals Ceil(x) for ties.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	// x-f is exact for every finite x
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// Sign returns 1 if x > 0, -1 if x < 0 and 0 otherwise. There is no
// tolerance around zero; NaN yields 0.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Times invokes fn exactly n times on the calling goroutine and returns n.
// Each call returns before the next one starts. n must be an integer in
// [0, MaxCount] and fn must not be nil; otherwise fn is never called and an
// error is returned together with n.
func Times(n float64, fn func()) (float64, error) {
	if !validCount(n) {
		return n, mdwerrors.NumxInvalidCount(n)
	}
	if fn == nil {
		return n, mdwerrors.NumxNilCallback()
	}

	count := uint64(n)
	for i := uint64(0); i < count; i++ {
		fn()
	}
	return n, nil
}

func validCount(n float64) bool {
	// NaN fails every comparison
	return n >= 0 && n <= MaxCount && n == math.Trunc(n)
}

// Mod returns the Euclidean remainder of x divided by base, in [0, base).
// Negative x wraps around: Mod(-3, 8) is 5. base must be positive and
// finite; otherwise 0 and an error are returned. A non-finite x yields NaN.
func Mod(x, base float64) (float64, error) {
	if !(base > 0) || math.IsInf(base, 1) {
		return 0, mdwerrors.NumxInvalidBase(base)
	}

	r := math.Mod(x, base)
	if r < 0 {
		r += base
		// A tiny negative remainder can round up to base itself
		if r >= base {
			r = 0
		}
	}
	return r, nil
}
