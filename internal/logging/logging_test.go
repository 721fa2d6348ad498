package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reveal.log")

	Setup(true, path)
	t.Cleanup(func() { _ = Close() })

	if !Enabled {
		t.Fatal("expected logging to be enabled")
	}
	Debug.Printf("hello %s", "world")
	Bridge.Printf("request %d", 7)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello world") {
		t.Errorf("debug line missing from %q", out)
	}
	if !strings.Contains(out, "[bridge] request 7") {
		t.Errorf("bridge line missing from %q", out)
	}
}

func TestSetupDisabled(t *testing.T) {
	Setup(false, "")
	if Enabled {
		t.Error("expected logging to be disabled")
	}
	// Must be safe to use when disabled
	Debug.Printf("discarded")
	Bridge.Printf("discarded")
}
