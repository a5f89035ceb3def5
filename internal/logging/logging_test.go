package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"", "text", "JSON", "logfmt"} {
		if _, err := ParseFormat(ok); err != nil {
			t.Errorf("ParseFormat(%q): %v", ok, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	logger, closer, err := New(Options{File: path, Level: "info", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("activity started", "activity", "spelling")
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"activity":"spelling"`) {
		t.Errorf("missing structured field in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestNewWithoutFile(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Fatal("expected error")
	}
}
