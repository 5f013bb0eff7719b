package main

import (
	"os"

	"github.com/go-umbra/umbra/cmd/umbra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
