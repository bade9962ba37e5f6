package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkmirror/cmd/linkmirror"
	"github.com/arthur-debert/linkmirror/internal/version"
	"github.com/spf13/cobra/doc"
)

// Packaging helper: writes the top level man page to stdout
func main() {
	header := &doc.GenManHeader{
		Title:   "LINKMIRROR",
		Section: "1",
		Source:  "linkmirror " + version.Version,
		Manual:  "linkmirror manual",
	}

	if err := doc.GenMan(linkmirror.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
