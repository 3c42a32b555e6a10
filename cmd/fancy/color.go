package fancy

import (
	"io"
	"os"

	"github.com/arthur-debert/fancy/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// colorEnabled resolves a render.color mode for output written to w
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// diagRenderer returns a lipgloss renderer for diagnostics written to w
func diagRenderer(mode string, w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if colorEnabled(mode, w) {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
