package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCommand(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
