// Package main implements the metadesc command, which serves the meta
// description API and offers one-shot generation, migration and token
// commands for operators.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
