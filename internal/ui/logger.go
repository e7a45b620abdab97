package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Output receives all status lines. Stdout is reserved for the palette itself.
var Output io.Writer = color.Error

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)
	clrAccent = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Log levels, lowest first
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelQuiet
)

var level = LevelWarn

// SetLevel sets the minimum level that is printed. Unknown names mean info.
func SetLevel(name string) {
	level = ParseLevel(name)
}

// ParseLevel converts a level name to one of the Level constants.
func ParseLevel(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet", "off", "none":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

func categoryLevel(category string) int {
	switch category {
	case "debug":
		return LevelDebug
	case "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	if categoryLevel(category) < level {
		return
	}
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrDim.Sprint(message)
	}

	fmt.Fprintf(Output, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogSection creates a section header
func LogSection(title string) {
	if level > LevelInfo {
		return
	}
	fill := 50 - VisibleWidth(title)
	if fill < 3 {
		fill = 3
	}
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", fill)))
}

// LogMetric displays a metric value
func LogMetric(name string, value interface{}, unit string) {
	if level > LevelInfo {
		return
	}
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))
	fmt.Fprintf(Output, "%s  %s  %s: %s %s\n",
		ts,
		clrDim.Sprint("◈"),
		clrSubtle.Sprint(name),
		clrAccent.Sprintf("%v", value),
		clrDim.Sprint(unit))
}

// formatBytes converts bytes to human-readable format
func formatBytes(b int64) string {
	if b < 1024 {
		return fmt.Sprintf("%dB", b)
	}
	if b < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
}

// LogWritten summarises a finished write
func LogWritten(format string, colors int, bytes int64, digest string) {
	LogStatus("success", fmt.Sprintf("wrote %d colors as %s (%s)", colors, format, formatBytes(bytes)))
	LogStatus("debug", "blake2b-256 "+digest)
}
