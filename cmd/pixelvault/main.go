package main

import (
	"os"

	"pixelvault/cmd/pixelvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
