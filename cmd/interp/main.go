package main

import (
	"os"

	"github.com/agenthands/interp/cmd/interp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
