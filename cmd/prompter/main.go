package main

import (
	"os"

	"tableflip.dev/prompter/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
