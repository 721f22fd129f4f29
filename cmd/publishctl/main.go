// Command publishctl publishes a submission from the shell without going
// through the HTTP form.
package main

import (
	"os"

	"github.com/quickpost/publisher/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
