package main

import (
	"os"

	"github.com/bianoble/hasher/cmd/hasher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
