package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	// fatih/color only looks at stdout, but everything here goes to stderr.
	if forceColor {
		color.NoColor = false
	} else if noColor || !isTerminal(os.Stderr) {
		color.NoColor = true
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return color.New(color.FgHiRed, color.Bold).Sprintf(format, a...)
}

// Info returns informational styled text
func Info(format string, a ...interface{}) string {
	return color.New(color.FgHiYellow).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return color.New(color.FgRed).Sprintf(format, a...)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
