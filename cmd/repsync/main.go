// Command repsync imports workout programs from documents into Hevy.
package main

import (
	"os"

	"github.com/custodia-labs/repsync-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
