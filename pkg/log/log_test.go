package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written without debug level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("expected info message, got %q", out)
	}

	buf.Reset()
	l = NewWithOutput(&buf, true)
	l.Debugf("trace %s", "on")
	if !strings.Contains(buf.String(), "trace on") {
		t.Errorf("expected debug message, got %q", buf.String())
	}
}
