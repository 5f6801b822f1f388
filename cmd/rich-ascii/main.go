package main

import (
	"os"

	"github.com/sffjunkie/rich-ascii/cmd/rich-ascii/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
