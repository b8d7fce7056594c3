// ============================================================================
// numx - Numeric Extensions
// ============================================================================
//
// Package:     harness
// Description: Registry of numx operations addressable by name
// Author:      Mike Stoffels
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package harness

import (
	"sort"
	"strings"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
	"github.com/msto63/numx/foundation/utils/numx"
)

// ApplyFunc evaluates an operation. calls is the number of callback
// invocations and is only non-zero for times.
type ApplyFunc func(x, arg float64) (result float64, calls int, err error)

// Operation describes a numx helper that can be run from a case file or the CLI
type Operation struct {
	Name  string
	Arity int // numeric arguments including the receiver
	Usage string
	Apply ApplyFunc
}

var operations = map[string]Operation{
	"abs":   unary("abs", "magnitude of x", numx.Abs),
	"ceil":  unary("ceil", "smallest integer >= x", numx.Ceil),
	"floor": unary("floor", "largest integer <= x", numx.Floor),
	"round": unary("round", "nearest integer, ties toward +Inf", numx.Round),
	"sign": {
		Name:  "sign",
		Arity: 1,
		Usage: "1, -1 or 0",
		Apply: func(x, _ float64) (float64, int, error) {
			return float64(numx.Sign(x)), 0, nil
		},
	},
	"times": {
		Name:  "times",
		Arity: 1,
		Usage: "invoke a counting callback n times, returns n",
		Apply: func(n, _ float64) (float64, int, error) {
			calls := 0
			result, err := numx.Times(n, func() { calls++ })
			return result, calls, err
		},
	},
	"mod": {
		Name:  "mod",
		Arity: 2,
		Usage: "Euclidean remainder of x by base, in [0, base)",
		Apply: func(x, base float64) (float64, int, error) {
			r, err := numx.Mod(x, base)
			return r, 0, err
		},
	},
}

func unary(name, usage string, fn func(float64) float64) Operation {
	return Operation{
		Name:  name,
		Arity: 1,
		Usage: usage,
		Apply: func(x, _ float64) (float64, int, error) {
			return fn(x), 0, nil
		},
	}
}

// Lookup returns the operation registered under name (case-insensitive)
func Lookup(name string) (Operation, error) {
	op, ok := operations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Operation{}, mdwerrors.NumxUnknownOperation(name)
	}
	return op, nil
}

// Operations returns all registered operations sorted by name
func Operations() []Operation {
	result := make([]Operation, 0, len(operations))
	for _, op := range operations {
		result = append(result, op)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
