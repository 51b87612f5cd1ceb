package main

import (
	"os"

	"github.com/safevoice-org/voicebridge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
