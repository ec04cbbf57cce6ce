package main

import (
	"os"

	"github.com/hamb0n-3/sigscan/cmd/sigscan/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
