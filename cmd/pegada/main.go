// Command pegada is the ecological footprint calculator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rmacedo/pegada/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
