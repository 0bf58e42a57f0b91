package main

import (
	"os"

	"github.com/meridian-sim/tradewinds/internal/adapters/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
