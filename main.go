package main

import (
	"os"

	"github.com/username/dopconv/src/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
