package main

import (
	"os"

	"github.com/gwagwa/travelgo-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
