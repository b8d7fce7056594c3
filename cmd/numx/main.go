package main

import (
	"os"

	"github.com/msto63/numx/cmd/numx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
