package harness

import (
	"math"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
)

// Equals compares actual and expected by value and returns an
// ASSERTION_FAILED error describing the mismatch. NaN equals NaN.
func Equals(actual, expected float64, description string) error {
	if actual == expected || (math.IsNaN(actual) && math.IsNaN(expected)) {
		return nil
	}
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleHarness).
		Operation("equals").
		Messagef("%s: got %v, want %v", description, actual, expected).
		Detail("actual", actual).
		Detail("expected", expected).
		Build()
}
