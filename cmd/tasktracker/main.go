// Package main is the entry point for the tasktracker service.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen11/go-task-tracker/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
