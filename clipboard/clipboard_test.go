package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestMemory_RoundTrip(t *testing.T) {
	var m Memory
	if err := m.WriteText("abc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := m.ReadText()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "abc" {
		t.Fatalf("read: got %q, want %q", got, "abc")
	}
	if m.Writes() != 1 {
		t.Fatalf("writes: got %d, want 1", m.Writes())
	}
}

func TestOSC52_WritesSystemClipboardSequence(t *testing.T) {
	var out bytes.Buffer
	c := NewOSC52(&out)
	if err := c.WriteText("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "\x1b]52;c;") {
		t.Fatalf("sequence prefix: got %q", got)
	}
	if !strings.Contains(got, base64.StdEncoding.EncodeToString([]byte("hello"))) {
		t.Fatalf("sequence payload: got %q", got)
	}
	if _, err := c.ReadText(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("read: got %v, want ErrUnsupported", err)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	var out bytes.Buffer

	c, err := Open("memory", nil)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Fatalf("open memory: got %T", c)
	}

	c, err = Open(" OSC52 ", &out)
	if err != nil {
		t.Fatalf("open osc52: %v", err)
	}
	if _, ok := c.(*OSC52); !ok {
		t.Fatalf("open osc52: got %T", c)
	}

	if _, err := Open("osc52", nil); err == nil {
		t.Fatalf("open osc52 without writer: expected error")
	}
	if _, err := Open("carrier-pigeon", nil); err == nil {
		t.Fatalf("open unknown: expected error")
	}
}

func TestOpen_AutoFallsBackToOSC52(t *testing.T) {
	if !SystemUnsupported() {
		t.Skip("system clipboard available; fallback not exercised")
	}
	var out bytes.Buffer
	c, err := Open("auto", &out)
	if err != nil {
		t.Fatalf("open auto: %v", err)
	}
	if _, ok := c.(*OSC52); !ok {
		t.Fatalf("open auto: got %T, want *OSC52", c)
	}
	if _, err := Open("auto", nil); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("open auto without writer: got %v, want ErrUnsupported", err)
	}
}

func TestSystem_RoundTrip(t *testing.T) {
	if SystemUnsupported() {
		t.Skip("clipboard not available in this environment")
	}

	const text = "echo hello world"
	if err := (System{}).WriteText(text); err != nil {
		t.Skipf("clipboard write unavailable: %v", err)
	}
	got, err := (System{}).ReadText()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != text {
		t.Fatalf("read: got %q, want %q", got, text)
	}
}
