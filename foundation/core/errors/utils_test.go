// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, standard constructors and numx
//              domain errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02

package errors

import (
	"errors"
	"fmt"
	"math"
	"testing"

	mdwerror "github.com/msto63/numx/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
		if err.Operation() != "test_op" {
			t.Errorf("Expected Operation() 'test_op', got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").Operation("test_op").Build()
		if err.Error() != "testmodule.test_op failed" {
			t.Errorf("Expected auto message, got %q", err.Error())
		}

		err = NewErrorBuilder("testmodule").Build()
		if err.Error() != "testmodule operation failed" {
			t.Errorf("Expected auto message without operation, got %q", err.Error())
		}
	})

	t.Run("auto-generated code", func(t *testing.T) {
		tests := []struct {
			module    string
			operation string
			want      mdwerror.Code
		}{
			{ModuleNumx, "times", CodeNumxInvalidCount},
			{ModuleNumx, "mod", CodeNumxInvalidBase},
			{ModuleNumx, "lookup", CodeNumxUnknownOperation},
			{ModuleNumx, "abs", CodeNumxOperationFailed},
			{ModuleHarness, "equals", mdwerror.CodeAssertionFailed},
			{ModuleConfig, "load", mdwerror.CodeInvalidConfig},
			{"other", "x", CodeOperationFailed},
		}

		for _, tt := range tests {
			err := NewErrorBuilder(tt.module).Operation(tt.operation).Build()
			if err.Code() != tt.want {
				t.Errorf("%s.%s code = %v, want %v", tt.module, tt.operation, err.Code(), tt.want)
			}
		}
	})
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *mdwerror.Error
		code     mdwerror.Code
		severity mdwerror.Severity
	}{
		{"invalid input", InvalidInput(ModuleNumx, "abs", "x", "number"), CodeInvalidInput, mdwerror.SeverityLow},
		{"invalid format", InvalidFormat(ModuleHarness, "cases.ini", ".yaml"), CodeInvalidFormat, mdwerror.SeverityMedium},
		{"operation failed", OperationFailed(ModuleNumx, "abs", errors.New("boom")), CodeNumxOperationFailed, mdwerror.SeverityHigh},
		{"out of range", OutOfRange(ModuleNumx, "times", -1, 0, math.MaxInt), CodeOutOfRange, mdwerror.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.severity)
			}
		})
	}
}

func TestNumxErrors(t *testing.T) {
	t.Run("invalid count", func(t *testing.T) {
		err := NumxInvalidCount(-2)
		if !mdwerror.HasCode(err, CodeNumxInvalidCount) {
			t.Errorf("Expected code %s, got %v", CodeNumxInvalidCount, err.Code())
		}
		if err.Details()["count"] != -2.0 {
			t.Errorf("Expected count detail -2, got %v", err.Details()["count"])
		}
		if !IsModuleOperation(err, ModuleNumx, "times") {
			t.Error("Expected numx.times error")
		}
	})

	t.Run("nil callback", func(t *testing.T) {
		err := NumxNilCallback()
		if err.Code() != CodeNumxNilCallback {
			t.Errorf("Expected code %s, got %v", CodeNumxNilCallback, err.Code())
		}
	})

	t.Run("invalid base", func(t *testing.T) {
		err := NumxInvalidBase(0)
		if err.Code() != CodeNumxInvalidBase {
			t.Errorf("Expected code %s, got %v", CodeNumxInvalidBase, err.Code())
		}
		if err.Error() != "modulo base must be positive and finite, got 0" {
			t.Errorf("Unexpected message %q", err.Error())
		}
		if err.Code().Category() != "numeric" {
			t.Errorf("Expected numeric category, got %q", err.Code().Category())
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		err := NumxUnknownOperation("sqrt")
		if err.Error() != `unknown operation "sqrt"` {
			t.Errorf("Unexpected message %q", err.Error())
		}
	})
}

func TestExtractors(t *testing.T) {
	wrapped := fmt.Errorf("check: %w", NumxInvalidBase(-8))

	if got := ExtractModule(wrapped); got != ModuleNumx {
		t.Errorf("ExtractModule() = %q, want %q", got, ModuleNumx)
	}
	if got := ExtractOperation(wrapped); got != "mod" {
		t.Errorf("ExtractOperation() = %q, want mod", got)
	}

	plain := errors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails() on a plain error should be nil")
	}
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("extractors on a plain error should return empty strings")
	}
}
