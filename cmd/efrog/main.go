// Package main is the entry point for the efrog CLI tool.
package main

import (
	"os"

	"github.com/efrogs/rarity/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
