// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()
	cause := errors.New("no such file or directory")
	err := NewErrorContext().
		WithOperation("read lock file").
		WithResource("poetry.lock").
		Wrap(cause).
		Build()

	want := "failed to read lock file: poetry.lock: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := NewErrorContext().WithOperation("parse lock file").Wrap(cause).BuildError()

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestActionableError_FormatSuggestions(t *testing.T) {
	t.Parallel()
	err := NewErrorContext().
		WithOperation("write overlay").
		WithSuggestion("Check permissions").
		WithSuggestion("Pass --out").
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "• Check permissions") || !strings.Contains(got, "• Pass --out") {
		t.Errorf("suggestions missing from:\n%s", got)
	}
}

func TestActionableError_FormatVerboseChain(t *testing.T) {
	t.Parallel()
	inner := errors.New("inner")
	middle := fmt.Errorf("middle: %w", inner)
	err := NewErrorContext().WithOperation("fetch package source").Wrap(middle).Build()

	quiet := err.Format(false)
	if strings.Contains(quiet, "Error chain:") {
		t.Error("non-verbose output contains error chain")
	}

	loud := err.Format(true)
	if !strings.Contains(loud, "Error chain:") || !strings.Contains(loud, "2. inner") {
		t.Errorf("verbose output missing chain:\n%s", loud)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()
	if err := NewErrorContext().WithResource("x").Build(); err != nil {
		t.Errorf("Build() without operation = %v, want nil", err)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	t.Parallel()
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
