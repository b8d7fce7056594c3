// File: standards.go
// Title: Error Standards for the numx Foundation
// Description: Module identifiers and standardized error codes shared by all
//              numx packages, plus the lookups that derive a code from a
//              module and operation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-02 v0.2.0: Codes for numx operations, harness and config

package errors

import (
	"strings"

	mdwerror "github.com/msto63/numx/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleNumx    = "numx"
	ModuleHarness = "harness"
	ModuleConfig  = "config"
)

// Standardized error codes
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - numx
	CodeNumxInvalidCount     = "NUMX_INVALID_COUNT"
	CodeNumxInvalidBase      = "NUMX_INVALID_BASE"
	CodeNumxNilCallback      = "NUMX_NIL_CALLBACK"
	CodeNumxUnknownOperation = "NUMX_UNKNOWN_OPERATION"
	CodeNumxOperationFailed  = "NUMX_OPERATION_FAILED"
)

// getModuleErrorCode derives a code when a builder was given none
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleNumx:
		return getNumxErrorCode(operation)
	case ModuleHarness:
		return string(mdwerror.CodeAssertionFailed)
	case ModuleConfig:
		return string(mdwerror.CodeInvalidConfig)
	default:
		return CodeOperationFailed
	}
}

func getNumxErrorCode(operation string) string {
	switch strings.ToLower(operation) {
	case "times":
		return CodeNumxInvalidCount
	case "mod":
		return CodeNumxInvalidBase
	case "lookup":
		return CodeNumxUnknownOperation
	default:
		return CodeNumxOperationFailed
	}
}

func getOperationErrorCode(module string) string {
	if module == ModuleNumx {
		return CodeNumxOperationFailed
	}
	return CodeOperationFailed
}
