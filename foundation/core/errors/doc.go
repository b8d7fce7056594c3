// Package errors provides standardized error construction for numx packages.
//
// Package: errors
// Title: Standardized Error Construction
// Description: Wraps core/error with a fluent builder and module-aware
//              constructors so every package reports failures with the same
//              code, severity and detail conventions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Every error built here carries the "module" and, when set, "operation"
// details. Codes are derived from the module and operation when the builder
// is not given one:
//
//	err := errors.NewErrorBuilder(errors.ModuleNumx).
//		Operation("mod").
//		Detail("base", 0.0).
//		Build() // code NUMX_INVALID_BASE
//
// The numx operations use the convenience constructors NumxInvalidCount,
// NumxNilCallback and NumxInvalidBase for their domain errors.
package errors
