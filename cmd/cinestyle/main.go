// cinestyle is the command line interface to the style matching engine.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/CineStyle-Engine/internal/interfaces/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
