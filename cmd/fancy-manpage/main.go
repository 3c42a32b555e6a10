package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fancy/cmd/fancy"
	"github.com/arthur-debert/fancy/internal/version"
)

func main() {
	rootCmd := fancy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FANCY",
		Section: "1",
		Source:  "fancy " + version.Version,
		Manual:  "fancy manual",
	}

	// one page per command when a directory is given
	if len(os.Args) > 1 {
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
