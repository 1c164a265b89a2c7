package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info().Msg("hidden")
	l.Warn().Str("component", "test").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"component":"test"`) {
		t.Fatalf("output: %s", out)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("", false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug().Msg("debug")
	l.Info().Msg("info")
	if strings.Contains(buf.String(), `"debug"`) || !strings.Contains(buf.String(), `"info"`) {
		t.Fatalf("output: %s", buf.String())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New("loud", false, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", true, &buf)
	if err != nil {
		t.Fatal(err)
	}
	l.Info().Int("column", 3).Msg("ai move selected")
	if !strings.Contains(buf.String(), "ai move selected") || !strings.Contains(buf.String(), "column") {
		t.Fatalf("output: %q", buf.String())
	}
}
