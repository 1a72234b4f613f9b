// Package main provides the entry point for wld.
//
// wld controls WLED smart lights from the terminal: it keeps a named
// device registry in ~/.wld.toml and sends power, brightness, and status
// requests to the devices over their local HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/timrogers/wld/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
