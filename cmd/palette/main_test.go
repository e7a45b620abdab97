package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hue-palette/internal/ui"
)

func setup(t *testing.T, env map[string]string) *bytes.Buffer {
	t.Helper()
	for _, k := range []string{
		"PALETTE_FORMAT", "PALETTE_SIZE", "PALETTE_SATURATION", "PALETTE_LIGHTNESS",
		"PALETTE_VERIFY", "PALETTE_PREVIEW", "PALETTE_METRICS_FILE", "LOG_LEVEL",
	} {
		t.Setenv(k, env[k])
	}

	var logs bytes.Buffer
	prev := ui.Output
	ui.Output = &logs
	t.Cleanup(func() {
		ui.Output = prev
		ui.SetLevel("warn")
	})
	return &logs
}

func TestRunDefaultTable(t *testing.T) {
	logs := setup(t, nil)

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 256 {
		t.Fatalf("got %d lines, want 256", len(lines))
	}
	if lines[0] != "0xFF0000," || lines[128] != "0x00FFFF," || lines[255] != "0xFF0006," {
		t.Errorf("unexpected entries: %q %q %q", lines[0], lines[128], lines[255])
	}
	if logs.Len() != 0 {
		t.Errorf("default run should be quiet on the log stream, got %q", logs.String())
	}
}

func TestRunTwiceIsByteIdentical(t *testing.T) {
	setup(t, nil)

	var a, b bytes.Buffer
	if err := run(&a); err != nil {
		t.Fatal(err)
	}
	if err := run(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two runs produced different output")
	}
}

func TestRunPNGWithVerifyAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.prom")
	logs := setup(t, map[string]string{
		"PALETTE_FORMAT":       "png",
		"PALETTE_VERIFY":       "true",
		"PALETTE_METRICS_FILE": path,
		"LOG_LEVEL":            "info",
	})

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := png.Decode(&out); err != nil {
		t.Fatalf("output is not a png: %v", err)
	}
	if !strings.Contains(logs.String(), "round-trip ok across 256 colors") {
		t.Errorf("missing verify line in logs:\n%s", logs.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("metrics textfile: %v", err)
	}
	if !strings.Contains(string(data), "palette_colors_total 256") {
		t.Errorf("metrics textfile missing color count:\n%s", data)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	setup(t, map[string]string{"PALETTE_SIZE": "0"})

	var out bytes.Buffer
	err := run(&out)
	if err == nil || !strings.Contains(err.Error(), "size must be between") {
		t.Fatalf("run() = %v, want size validation error", err)
	}
	if out.Len() != 0 {
		t.Error("nothing should be written when config is invalid")
	}
}

type brokenStdout struct{}

var errClosed = errors.New("stdout closed")

func (brokenStdout) Write([]byte) (int, error) { return 0, errClosed }

func TestRunWriteFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.prom")
	setup(t, map[string]string{"PALETTE_METRICS_FILE": path})

	err := run(brokenStdout{})
	if !errors.Is(err, errClosed) {
		t.Fatalf("run() = %v, want wrapped %v", err, errClosed)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("metrics textfile: %v", readErr)
	}
	if !strings.Contains(string(data), "palette_write_errors_total 1") {
		t.Errorf("write error not recorded:\n%s", data)
	}
}

func TestRunPreviewGoesToLogStream(t *testing.T) {
	logs := setup(t, map[string]string{
		"PALETTE_PREVIEW": "true",
		"PALETTE_SIZE":    "8",
	})

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "\n") != 8 {
		t.Errorf("stdout should hold only the 8 entries, got %q", out.String())
	}
	if !strings.Contains(ui.StripAnsi(logs.String()), "0xFF0000") {
		t.Errorf("preview missing from log stream:\n%s", logs.String())
	}
}
