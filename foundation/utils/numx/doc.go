// File: doc.go
// Title: Package Documentation for numx
// Description: Package numx provides small numeric helpers over float64:
//              absolute value, ceiling, floor, half-up rounding, sign,
//              repeated invocation and Euclidean modulo.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package numx provides numeric helpers callable on a number or with a number.
//
// Overview
//
// Go does not allow methods on float64, so every helper exists twice: as a
// method of the Number newtype and as a package-level function over float64.
// Both forms compute the same result.
//
//	numx.Number(-1.2).Floor()   // -2
//	numx.Floor(-1.2)            // -2
//
//	n, _ := numx.Number(-3).Mod(8) // 5
//
// Nothing is registered globally; the helpers are only visible to packages
// that import numx.
//
// Rounding
//
// Ceil, Floor and Round return integral values as floating point numbers,
// as math.Ceil does. Round breaks ties toward positive infinity, so 4.5
// rounds to 5 and -4.5 rounds to -4. This differs from math.Round, which
// rounds ties away from zero.
//
// Domain errors
//
// Times and Mod are partial. Times rejects counts that are negative,
// fractional, not finite or above MaxCount, and a nil callback. Mod rejects
// a base that is not a positive finite number. Both return errors built by
// foundation/core/errors with the codes NUMX_INVALID_COUNT,
// NUMX_NIL_CALLBACK and NUMX_INVALID_BASE. MustTimes and MustMod panic
// instead and are meant for literal arguments.
//
// Non-finite inputs to the other helpers propagate as IEEE 754 defines:
// Abs(NaN) is NaN and Ceil(+Inf) is +Inf. Sign(NaN) is 0.
//
// Concurrency
//
// The helpers keep no state and are safe to call from any number of
// goroutines. Times invokes its callback on the calling goroutine, one call
// after another.
package numx
