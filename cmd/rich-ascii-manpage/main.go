package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/sffjunkie/rich-ascii/cmd/rich-ascii/commands"
	"github.com/sffjunkie/rich-ascii/internal/version"
)

func main() {
	rootCmd := commands.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RICH-ASCII",
		Section: "1",
		Source:  "rich-ascii " + version.Version,
		Manual:  "rich-ascii manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
