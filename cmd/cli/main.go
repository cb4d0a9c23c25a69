// Package main is the entry point for the dovela CLI.
package main

import (
	"os"

	"dovela/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
