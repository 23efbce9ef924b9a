// Package main is the entry point of filestamp.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/filestamp/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Injected via ldflags
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
