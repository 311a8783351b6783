package uout

import (
	"fmt"
	"io"

	figure "github.com/common-nighthawk/go-figure"
)

// BannerOptions configures the startup banner.
type BannerOptions struct {
	ShowBanner  bool
	ShowVersion bool
}

// DefaultBannerOptions returns the default banner configuration.
func DefaultBannerOptions() BannerOptions {
	return BannerOptions{ShowBanner: true, ShowVersion: true}
}

// PrintBanner writes the ucn startup banner to w.
func PrintBanner(w io.Writer, version string, opts BannerOptions) {
	if w == nil {
		return
	}

	if !opts.ShowBanner {
		if opts.ShowVersion {
			fmt.Fprintf(w, "ucn v%s\n", version)
		}
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, GetASCIILogo())
	if opts.ShowVersion {
		fmt.Fprintf(w, "ucn v%s\n", version)
	}
	fmt.Fprintln(w)
}

// GetASCIILogo renders the "ucn" ASCII art logo.
func GetASCIILogo() string {
	return figure.NewFigure("ucn", "standard", true).String()
}

// GetCompactBanner returns a single-line banner for non-TTY output.
func GetCompactBanner(version string) string {
	return fmt.Sprintf("ucn v%s", version)
}

// ShouldShowBanner reports whether the full banner should render: never
// with --no-banner, only ever in a TTY.
func ShouldShowBanner(isTTY bool, noBannerFlag bool) bool {
	if noBannerFlag {
		return false
	}
	return isTTY
}
