// Package main provides the tensor3 CLI.
package main

import (
	"os"
)

var version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
