package ui

import (
	"fmt"
	"os"
)

var bannerEmitted = false

// FormatBannerLine returns the title/version/tagline line
func FormatBannerLine(version, tagline string) string {
	title := "◆ HUE PALETTE"

	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			Heading(title),
			Info(version),
			Muted("—"),
			AccentDim(tagline))
	}
	return fmt.Sprintf("%s %s — %s", title, version, tagline)
}

// EmitBanner displays the banner once, only when stderr is a terminal
func EmitBanner(version, tagline string) {
	if bannerEmitted || !isTerminal(os.Stderr) {
		return
	}

	fmt.Fprintln(Output)
	fmt.Fprintln(Output, FormatBannerLine(version, tagline))
	fmt.Fprintln(Output)
	bannerEmitted = true
}

// ResetBanner allows banner to be shown again (for testing)
func ResetBanner() {
	bannerEmitted = false
}
