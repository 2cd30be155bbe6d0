package main

import (
	"os"

	"github.com/msto63/nearestrlc/cmd/nearestrlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
