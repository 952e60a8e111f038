package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetupColors picks the color profile for output written to f. Colors are
// dropped when NO_COLOR is set or f is not a terminal.
func SetupColors(f *os.File) {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(f) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(f).EnvColorProfile())
}

// Warn writes the single-line diagnostic shown when a command fails
func Warn(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", Render("Prefix", "smartcd:"), Render("Warning", message))
}
