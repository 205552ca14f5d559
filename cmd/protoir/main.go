// Command protoir loads and validates protocol IR documents, mirroring
// the teacher's cmd/typemux entry point but replacing code generation
// with the core's own operations: validate, describe, diff.
package main

import (
	"os"

	"github.com/protoir/protoir/cmd/protoir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
