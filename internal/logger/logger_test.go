package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestSetup_JSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup("warn", FormatJSON, &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer Setup("info", FormatConsole, os.Stderr)

	Info("hidden %d", 1)
	Warn("shown %s", "here")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["message"] != "shown here" {
		t.Errorf("message = %v, want 'shown here'", entry["message"])
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want 'warn'", entry["level"])
	}
	if entry["app"] != "ocr-translator" {
		t.Errorf("app = %v, want 'ocr-translator'", entry["app"])
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	if err := Setup("loud", FormatJSON, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestL_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup("debug", FormatJSON, &buf); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer Setup("info", FormatConsole, os.Stderr)

	L().Debug().Str("attempt", "abc").Msg("submit")

	if !strings.Contains(buf.String(), `"attempt":"abc"`) {
		t.Errorf("output missing attempt field: %q", buf.String())
	}
}
