package main

import (
	"fmt"

	"docdex"
)

// Run executes the reset-store command.
func (c *ResetStoreCmd) Run(deps *Dependencies) error {
	if err := deps.Documents.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Store reset.")
	return nil
}
