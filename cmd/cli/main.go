package main

import (
	"os"

	"github.com/papecode/nfc-card-demo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
