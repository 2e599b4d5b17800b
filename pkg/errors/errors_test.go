package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidMatrix, "cost(%d,%d) must be 0", 1, 1)

	if err.Code != ErrCodeInvalidMatrix {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidMatrix)
	}
	if err.Message != "cost(1,1) must be 0" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_MATRIX: cost(1,1) must be 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "matrix file %s", "cities.txt")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause with errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	want := "FILE_NOT_FOUND: matrix file cities.txt: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidWorkers, "worker count must be positive")

	if !Is(err, ErrCodeInvalidWorkers) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with %w.
	wrapped := fmt.Errorf("solve: %w", err)
	if !Is(wrapped, ErrCodeInvalidWorkers) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "missing")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input")
	if got := UserMessage(err); got != "bad input" {
		t.Errorf("UserMessage = %q, want %q", got, "bad input")
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}
