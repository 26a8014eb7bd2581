// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"overlock-cli/internal/config"
	"overlock-cli/internal/pin"
	"overlock-cli/internal/testutil"
)

const testLock = `[[package]]
name = "requests"
version = "2.31.0"

[[package]]
name = "foo"
version = "0.1.0"

[package.source]
type = "url"
url = "https://example.com/foo.zip"

[[package]]
name = "bar"
version = "1.0.0"

[package.source]
type = "git"
url = "git://x"
reference = "main"
resolved_reference = "deadbeef"
`

// withTestConfig swaps the package config for the duration of one test.
func withTestConfig(t *testing.T, c *config.Config) {
	t.Helper()
	original := cfg
	cfg = c
	t.Cleanup(func() { cfg = original })
}

func fakeTools(t *testing.T, urlScript, gitScript string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Parallelism: 2,
		Prefetch: config.PrefetchConfig{
			URLTool: testutil.WriteFakeTool(t, dir, "nix-prefetch-url", urlScript),
			GitTool: testutil.WriteFakeTool(t, dir, "nix-prefetch-git", gitScript),
		},
	}
}

func TestRunLock_WritesOverlay(t *testing.T) {
	withTestConfig(t, fakeTools(t,
		`echo abc123`,
		`printf '{"url":"%s","rev":"%s","sha256":"zzz"}\n' "$3" "$5"`))

	dir := t.TempDir()
	lockPath := filepath.Join(dir, "poetry.lock")
	outPath := filepath.Join(dir, "poetry-git-overlay.nix")
	testutil.MustWriteFile(t, lockPath, testLock)

	var out bytes.Buffer
	if err := runLock(context.Background(), &out, lockPath, outPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.String(); got != "Wrote "+outPath+"\n" {
		t.Errorf("stdout = %q", got)
	}

	overlay := testutil.MustReadFile(t, outPath)
	for _, want := range []string{
		"{ pkgs }:\nfinal: prev: {\n",
		"foo = prev.foo.overridePythonAttrs",
		`url = "https://example.com/foo.zip";`,
		`sha256 = "abc123";`,
		"bar = prev.bar.overridePythonAttrs",
		`rev = "deadbeef";`,
		`sha256 = "zzz";`,
	} {
		if !strings.Contains(overlay, want) {
			t.Errorf("overlay missing %q:\n%s", want, overlay)
		}
	}

	// The index-resolved package needs no overlay entry.
	if strings.Contains(overlay, "requests") {
		t.Errorf("overlay mentions index package:\n%s", overlay)
	}

	// Fragments follow lock order.
	if strings.Index(overlay, "foo =") > strings.Index(overlay, "bar =") {
		t.Errorf("fragments out of lock order:\n%s", overlay)
	}
}

func TestRunLock_Idempotent(t *testing.T) {
	withTestConfig(t, fakeTools(t,
		`echo abc123`,
		`printf '{"url":"%s","rev":"%s","sha256":"zzz"}\n' "$3" "$5"`))

	dir := t.TempDir()
	lockPath := filepath.Join(dir, "poetry.lock")
	outPath := filepath.Join(dir, "overlay.nix")
	testutil.MustWriteFile(t, lockPath, testLock)

	var out bytes.Buffer
	if err := runLock(context.Background(), &out, lockPath, outPath); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := testutil.MustReadFile(t, outPath)

	if err := runLock(context.Background(), &out, lockPath, outPath); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := testutil.MustReadFile(t, outPath)

	if first != second {
		t.Error("re-run produced different output for identical input")
	}
}

func TestRunLock_NoPinnablePackages(t *testing.T) {
	withTestConfig(t, fakeTools(t, `exit 1`, `exit 1`))

	dir := t.TempDir()
	lockPath := filepath.Join(dir, "poetry.lock")
	outPath := filepath.Join(dir, "overlay.nix")
	testutil.MustWriteFile(t, lockPath, "[[package]]\nname = \"requests\"\nversion = \"2.31.0\"\n")

	var out bytes.Buffer
	if err := runLock(context.Background(), &out, lockPath, outPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "{ pkgs }:\nfinal: prev: {\n}\n"
	if got := testutil.MustReadFile(t, outPath); got != want {
		t.Errorf("overlay = %q, want %q", got, want)
	}
}

func TestRunLock_FetchFailureAbortsRun(t *testing.T) {
	withTestConfig(t, fakeTools(t,
		`echo "error: unable to download" >&2; exit 7`,
		`printf '{"url":"%s","rev":"%s","sha256":"zzz"}\n' "$3" "$5"`))

	dir := t.TempDir()
	lockPath := filepath.Join(dir, "poetry.lock")
	outPath := filepath.Join(dir, "overlay.nix")
	testutil.MustWriteFile(t, lockPath, testLock)

	var out bytes.Buffer
	err := runLock(context.Background(), &out, lockPath, outPath)
	if err == nil {
		t.Fatal("expected error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 7 {
		t.Errorf("Code = %d, want 7", exitErr.Code)
	}

	// All-or-nothing: nothing may be written on failure.
	if _, statErr := os.Stat(outPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("overlay exists after failed run (stat err %v)", statErr)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRunLock_MalformedGitOutputIsFatal(t *testing.T) {
	withTestConfig(t, fakeTools(t,
		`echo abc123`,
		`echo "this is not json"`))

	dir := t.TempDir()
	lockPath := filepath.Join(dir, "poetry.lock")
	outPath := filepath.Join(dir, "overlay.nix")
	testutil.MustWriteFile(t, lockPath, testLock)

	var out bytes.Buffer
	err := runLock(context.Background(), &out, lockPath, outPath)
	if err == nil {
		t.Fatal("expected error")
	}

	var malformed *pin.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(outPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("overlay exists after fatal render error")
	}
}

func TestRunLock_MissingLockfile(t *testing.T) {
	withTestConfig(t, config.DefaultConfig())

	dir := t.TempDir()
	var out bytes.Buffer
	err := runLock(context.Background(), &out,
		filepath.Join(dir, "poetry.lock"), filepath.Join(dir, "overlay.nix"))
	if err == nil {
		t.Fatal("expected error for missing lock file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}
