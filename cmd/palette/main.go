package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"hue-palette/internal/config"
	"hue-palette/internal/metrics"
	"hue-palette/internal/palette"
	"hue-palette/internal/ui"

	"github.com/joho/godotenv"
)

const (
	version = "v1.0.0"
	tagline = "hue sweep color tables"
)

func main() {
	// Load .env file if it exists
	// Plain environment variables work the same without one
	_ = godotenv.Load()

	if err := run(os.Stdout); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
}

// run writes the configured palette to stdout. Everything else goes to
// ui.Output so stdout can be redirected straight into a source file.
func run(stdout io.Writer) error {
	started := time.Now()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	ui.SetLevel(cfg.LogLevel)
	if cfg.Preview {
		ui.EmitBanner(version, tagline)
	}

	rec := metrics.New()
	defer flushMetrics(rec, cfg.MetricsFile, started)

	g := cfg.Generator()
	format := cfg.OutputFormat()
	ui.LogStatus("debug", fmt.Sprintf("sweeping %d hues at saturation %g, lightness %g",
		g.Size, g.Saturation, g.Lightness))

	sum, err := palette.Write(stdout, g, format)
	rec.ObserveWrite(sum.Count, sum.Bytes, err)
	if err != nil {
		return fmt.Errorf("write palette: %w", err)
	}
	ui.LogWritten(format.String(), sum.Count, sum.Bytes, sum.Digest)

	if cfg.Verify {
		rep, err := palette.Verify(g)
		rec.ObserveVerify(rep.MaxHueError)
		if err != nil {
			return err
		}
		ui.LogStatus("success", fmt.Sprintf("round-trip ok across %d colors", rep.Entries))
		ui.LogMetric("max hue error", fmt.Sprintf("%.3f", rep.MaxHueError), "degrees")
		ui.LogMetric("max saturation error", fmt.Sprintf("%.4f", rep.MaxSatError), "")
		ui.LogMetric("max lightness error", fmt.Sprintf("%.4f", rep.MaxLightError), "")
	}

	if cfg.Preview {
		ui.PrintSwatches(g.Colors())
	}
	return nil
}

func flushMetrics(rec *metrics.Recorder, path string, started time.Time) {
	if path == "" {
		return
	}
	rec.Finish(started)
	if err := rec.WriteTextfile(path); err != nil {
		ui.LogStatus("warning", err.Error())
		return
	}
	ui.LogStatus("debug", "metrics written to "+path)
}
