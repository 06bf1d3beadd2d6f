// ABOUTME: Entry point for fittrack CLI.
// ABOUTME: Loads .env overrides and invokes the root Cobra command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; used for FITTRACK_SYNC_* overrides in development
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
