package uout

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY returns true if the writer is connected to a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// GetTerminalWidth returns the terminal width, or 80 as default.
func GetTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// progressChrome is the space a progress bar's spinner/percentage/padding
// takes up alongside its description, reserved when sizing a label.
const progressChrome = 20

// TruncateLabel shortens a progress-bar label — typically a relative file
// path being indexed — to fit the writer's terminal width. The tail is kept
// since a path's filename, not its leading directories, is what a reader
// scans for.
func TruncateLabel(w io.Writer, label string) string {
	maxLen := GetTerminalWidth(w) - progressChrome
	if maxLen < 10 || len(label) <= maxLen {
		return label
	}
	return "…" + label[len(label)-maxLen+1:]
}
