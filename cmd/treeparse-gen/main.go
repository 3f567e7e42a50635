// Command treeparse-gen generates parsers turning decoded JSON trees into
// typed Go values.
//
// Usage:
//
//	treeparse-gen gen --roots treeparse/store.Order --output ./parsers
//	treeparse-gen analyze --roots treeparse/store.Order --format yaml
//	treeparse-gen check
//	treeparse-gen watch
//
// Settings may also come from treeparse.yaml and TREEPARSE_* variables.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"treeparse/cmd/treeparse-gen/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		if errors.Is(err, commands.ErrOutOfDate) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(2)
	}
}
