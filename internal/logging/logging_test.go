package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, false)

	lg.Infof("game", "started %d", 1)
	lg.Errorf("audio", "decode: %v", "bad header")
	lg.Debugf("game", "hidden")

	out := buf.String()
	if !strings.Contains(out, "[INFO] game: started 1") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] audio: decode: bad header") {
		t.Errorf("missing error line in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written with debug disabled: %q", out)
	}
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, true)
	lg.Debugf("particle", "live=%d", 3)
	if !strings.Contains(buf.String(), "[DEBUG] particle: live=3") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
	if !lg.DebugEnabled() {
		t.Error("expected DebugEnabled")
	}
}

func TestNilLogger(t *testing.T) {
	var lg *Logger
	lg.Infof("x", "no panic")
}
