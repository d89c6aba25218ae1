// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-15 v0.2.0: Chain-aware code lookup tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrap standard error", func(t *testing.T) {
		base := errors.New("disk full")
		err := Wrap(base, "save failed")
		if err.Error() != "save failed: disk full" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("wrap keeps code and details", func(t *testing.T) {
		base := New("token rejected").WithCode(CodeParseSyntax).WithDetail("index", 3)
		err := Wrap(base, "import failed")
		if err.Code() != CodeParseSyntax {
			t.Errorf("Code() = %v, want %v", err.Code(), CodeParseSyntax)
		}
		if err.Details()["index"] != 3 {
			t.Errorf("Details()[index] = %v, want 3", err.Details()["index"])
		}
	})
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNotFound, SeverityLow},
		{CodeInvalidOperation, SeverityLow},
		{CodeParseSyntax, SeverityMedium},
		{CodeIOError, SeverityHigh},
		{CodeInvariantViolation, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("explicit severity wins", func(t *testing.T) {
		err := New("x").WithSeverity(SeverityHigh).WithCode(CodeNotFound)
		if err.Severity() != SeverityHigh {
			t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
		}
	})
}

func TestHasCode(t *testing.T) {
	inner := New("no such layer").WithCode(CodeNotFound)
	outer := fmt.Errorf("toggle: %w", Wrap(inner, "edit rejected").WithCode(CodeInvalidOperation))

	if !HasCode(outer, CodeNotFound) {
		t.Error("HasCode should find the inner code through the chain")
	}
	if !HasCode(outer, CodeInvalidOperation) {
		t.Error("HasCode should find the outer code")
	}
	if HasCode(outer, CodeIOError) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if GetCode(outer) != CodeInvalidOperation {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeInvalidOperation)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of a plain error should be CodeUnknown")
	}
}

func TestIsByCode(t *testing.T) {
	sentinel := New("").WithCode(CodeParseIncomplete)
	err := Wrap(New("ran out of tokens").WithCode(CodeParseIncomplete), "import")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should match by code")
	}
	if errors.Is(New("other"), New("")) {
		t.Error("CodeUnknown must never match")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("bad position").
		WithCode(CodeNotFound).
		WithOperation("document.Move").
		WithDetail("src", "c:1/4")

	s := err.String()
	for _, want := range []string{"bad position", "NOT_FOUND", "document.Move", "src=c:1/4"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "NOT_FOUND" || decoded["operation"] != "document.Move" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}

func TestCodeIsValid(t *testing.T) {
	if !CodeParseSyntax.IsValid() {
		t.Error("CodeParseSyntax should be valid")
	}
	if Code("DATABASE_ERROR").IsValid() {
		t.Error("unknown code should be invalid")
	}
}
