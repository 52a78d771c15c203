// Package main generates a .env.example file from the configuration
// defaults. Run it whenever a config key is added or renamed:
//
//	go run ./cmd/envexample > .env.example
package main

import (
	"fmt"
	"os"

	"github.com/dcc-platform/healthgate/internal/platform/config"
)

func main() {
	if _, err := fmt.Print(config.ExampleEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
