package main

import (
	"os"

	"github.com/msto63/sable/cmd/sable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
