// Command counsel routes UC/CSU transfer questions to specialist counselors.
package main

import (
	"os"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/cli"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
