// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/bundlr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_match_error",
			code:    errors.ErrNoMatch,
			message: "no rule matches a.txt",
			wantStr: "[NO_MATCH] no rule matches a.txt",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no sources given",
			wantStr: "[INVALID_INPUT] no sources given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if err.Error() != tt.wantStr {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("not found")

	err := errors.Wrapf(cause, errors.ErrResolve, "failed to resolve %s", "missing.txt")
	if err.Error() != "[RESOLVE] failed to resolve missing.txt: not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}

	if errors.Wrap(nil, errors.ErrResolve, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	inner := errors.New(errors.ErrNoMatch, "no rule")
	outer := errors.Wrap(inner, errors.ErrTransform, "transform pass failed")
	plain := fmt.Errorf("context: %w", outer)

	if !errors.IsErrorCode(plain, errors.ErrTransform) {
		t.Error("expected outer code through fmt wrapping")
	}
	if !errors.IsErrorCode(plain, errors.ErrNoMatch) {
		t.Error("expected inner code to be found")
	}
	if errors.IsErrorCode(plain, errors.ErrPersist) {
		t.Error("unexpected code match")
	}
	if errors.IsErrorCode(stderrors.New("x"), errors.ErrUnknown) {
		t.Error("plain errors carry no code")
	}
	if got := errors.GetErrorCode(plain); got != errors.ErrTransform {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrTransform)
	}
	if got := errors.GetErrorCode(stderrors.New("x")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrResolve, "boom").
		WithDetail("index", 2).
		WithDetails(map[string]interface{}{"source": "b.js", "pass": "resolve"})

	details := errors.GetErrorDetails(err)
	if details["index"] != 2 || details["source"] != "b.js" || details["pass"] != "resolve" {
		t.Errorf("unexpected details: %v", details)
	}
	if errors.GetErrorDetails(stderrors.New("x")) != nil {
		t.Error("plain errors have no details")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrCompact, "one")
	if !stderrors.Is(err, errors.New(errors.ErrCompact, "two")) {
		t.Error("errors with the same code should match with errors.Is")
	}
	if stderrors.Is(err, errors.New(errors.ErrPersist, "one")) {
		t.Error("errors with different codes should not match")
	}
}
