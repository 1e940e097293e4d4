package main

import (
	"os"

	"github.com/riverfjs/metricify-go/cmd/metricify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
