package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveWrite(t *testing.T) {
	r := New()
	r.ObserveWrite(256, 2560, nil)
	r.ObserveWrite(10, 40, errors.New("broken pipe"))

	if got := testutil.ToFloat64(r.ColorsTotal); got != 266 {
		t.Errorf("colors = %v, want 266", got)
	}
	if got := testutil.ToFloat64(r.BytesTotal); got != 2600 {
		t.Errorf("bytes = %v, want 2600", got)
	}
	if got := testutil.ToFloat64(r.WriteErrorsTotal); got != 1 {
		t.Errorf("write errors = %v, want 1", got)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveWrite(5, 0, nil)
	if got := testutil.ToFloat64(b.ColorsTotal); got != 0 {
		t.Errorf("second recorder saw %v colors, want 0", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.ObserveWrite(256, 2560, nil)
	r.ObserveVerify(0.12)
	r.Finish(time.Now().Add(-time.Second))

	path := filepath.Join(t.TempDir(), "palette.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		"palette_colors_total 256",
		"palette_bytes_written_total 2560",
		"palette_write_errors_total 0",
		"palette_max_hue_error_degrees 0.12",
		"palette_run_duration_seconds",
		"palette_last_run_timestamp_seconds",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	r := New()
	path := filepath.Join(t.TempDir(), "missing", "palette.prom")
	if err := r.WriteTextfile(path); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestGathererListsMetrics(t *testing.T) {
	n, err := testutil.GatherAndCount(New().Gatherer())
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("gathered %d metrics, want 6", n)
	}
}
