package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/clipact/action"
)

const testPage = `
body:
  - tag: input
    id: input
    value: hello
  - tag: button
    id: copy-btn
    attrs:
      data-clipboard-target: "#input"
  - tag: button
    id: plain-btn
    attrs:
      data-clipboard-text: abc
  - tag: button
    id: broken-btn
    attrs:
      data-clipboard-target: "#missing"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-file", cfgPath, "--backend", "memory"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestErrRefused_CanBeExtracted(t *testing.T) {
	wrapped := fmt.Errorf("copy: %w", ErrRefused)
	if !errors.Is(wrapped, ErrRefused) {
		t.Fatal("expected errors.Is to find ErrRefused in wrapped error")
	}
}

func TestCopy_Text(t *testing.T) {
	out, err := execute(t, "copy", "--text", "héllo")
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got, want := out, "copy: 5 characters\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestCut_Target(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	out, err := execute(t, "--page", page, "cut", "--target", "#input")
	if err != nil {
		t.Fatalf("cut: %v", err)
	}
	if got, want := out, "cut: 5 characters\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestCopy_ConfigErrors(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	cases := []struct {
		name string
		args []string
		want error
	}{
		{name: "both sources", args: []string{"--page", page, "copy", "--text", "x", "--target", "#input"}, want: action.ErrMultipleSources},
		{name: "no source", args: []string{"copy"}, want: action.ErrMissingSources},
	}
	for _, tc := range cases {
		_, err := execute(t, tc.args...)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestCopy_UnknownTarget(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	_, err := execute(t, "--page", page, "copy", "--target", "#nope")
	if err == nil || !strings.Contains(err.Error(), `no element matches "#nope"`) {
		t.Fatalf("error: got %v, want no element matches", err)
	}
}

func TestTrigger(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	cases := []struct {
		selector string
		want     string
	}{
		{selector: "#copy-btn", want: "copy: 5 characters\n"},
		{selector: "#plain-btn", want: "copy: 3 characters\n"},
	}
	for _, tc := range cases {
		out, err := execute(t, "--page", page, "trigger", tc.selector)
		if err != nil {
			t.Fatalf("trigger %s: %v", tc.selector, err)
		}
		if out != tc.want {
			t.Fatalf("trigger %s: got %q, want %q", tc.selector, out, tc.want)
		}
	}
}

func TestTrigger_UsesDefaultAction(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	cfgPath := writeFile(t, "config.yaml", "action:\n  default: cut\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config-file", cfgPath, "--backend", "memory", "--page", page, "trigger", "#copy-btn"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if got, want := out.String(), "cut: 5 characters\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestTrigger_Misconfigured(t *testing.T) {
	page := writeFile(t, "page.yaml", testPage)
	_, err := execute(t, "--page", page, "trigger", "#broken-btn")
	if !errors.Is(err, action.ErrInvalidTarget) {
		t.Fatalf("error: got %v, want %v", err, action.ErrInvalidTarget)
	}
}

func TestTrigger_NeedsPage(t *testing.T) {
	if _, err := execute(t, "trigger", "#copy-btn"); err == nil {
		t.Fatal("expected error without a page")
	}
}

func TestSupported_Memory(t *testing.T) {
	out, err := execute(t, "supported")
	if err != nil {
		t.Fatalf("supported: %v", err)
	}
	if got, want := out, "copy: true\ncut: true\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestSupported_UnknownAction(t *testing.T) {
	out, err := execute(t, "supported", "paste")
	if err != nil {
		t.Fatalf("supported: %v", err)
	}
	if got, want := out, "paste: false\n"; got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestRoot_InvalidBackend(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config-file", filepath.Join(t.TempDir(), "c.yaml"), "--backend", "pigeon", "copy", "--text", "x"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestRoot_ShowConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := filepath.Join(home, ".config", "clipact", "config.yaml") + "\n"
	if out.String() != want {
		t.Fatalf("output: got %q, want %q", out.String(), want)
	}
}

func TestOpenClipboard_AutoIgnoresNonTerminal(t *testing.T) {
	if got := terminal(&bytes.Buffer{}); got != nil {
		t.Fatalf("terminal(buffer): got %v, want nil", got)
	}
}

func TestDemoPage_Loads(t *testing.T) {
	if !strings.Contains(demoPage, "data-clipboard-target") {
		t.Fatal("embedded demo page has no triggers")
	}
}
