package logo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	set := NewSceneSet(false)
	d := &Driver{cfg: Config{Debug: true}, backend: &recordBackend{}}
	d.frame.Scene = set.Select(0)
	d.debugLog(frameStats{commandCount: 4})

	out := buf.String()
	if !strings.Contains(out, "scene=logo") || !strings.Contains(out, "commands=4") {
		t.Errorf("debug record = %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
