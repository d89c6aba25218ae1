package main

import (
	"os"

	"github.com/msto63/layerdeck/cmd/layerdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
