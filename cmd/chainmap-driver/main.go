// Package main provides the entry point for chainmap-driver.
//
// chainmap-driver repeatedly constructs a chained hash map and assigns a
// single entry through its index operation:
//
//	chainmap-driver run [repeat]
package main

import (
	"os"

	"github.com/yndnr/chainmap/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		command.PrintError("%v", err)
		os.Exit(1)
	}
}
