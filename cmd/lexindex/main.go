// Package main provides the entry point for the lexindex CLI.
package main

import (
	"os"

	"github.com/ordinalab/lexindex/cmd/lexindex/cmd"
	"github.com/ordinalab/lexindex/internal/exitcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(exitcode.FromError(err))
	}
}
