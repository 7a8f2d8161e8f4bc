package main

import (
	"os"

	"github.com/lintconv/lintconv/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
