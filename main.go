package main

import (
	"os"

	"github.com/spurkit/spur/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
