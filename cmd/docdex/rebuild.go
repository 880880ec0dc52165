package main

import (
	"fmt"

	"docdex"
)

// Run executes the rebuild-index command.
func (c *RebuildIndexCmd) Run(deps *Dependencies) error {
	n, err := deps.Indexer.Rebuild(deps.Ctx, deps.Documents)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents.\n", n)
	return nil
}
