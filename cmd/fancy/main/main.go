package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/fancy/cmd/fancy"
	"github.com/arthur-debert/fancy/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := fancy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// markup errors were already printed as diagnostics
		if !errors.IsGrammarError(err) {
			errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}

		// usage mistakes come from cobra and carry no code
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
