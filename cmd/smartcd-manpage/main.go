package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/smartcd/cmd/smartcd"
	"github.com/arthur-debert/smartcd/internal/version"
)

func main() {
	rootCmd := smartcd.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SMARTCD",
		Section: "1",
		Source:  "smartcd " + version.Version,
		Manual:  "smartcd manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
