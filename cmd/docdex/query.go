package main

import (
	"fmt"

	"docdex"
	"docdex/search"
)

// Exit codes for query outcomes.
const (
	exitNoMatch   = 1
	exitAmbiguous = 2
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	result, err := deps.Engine.Search(deps.Ctx, c.Terms)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	switch result.Kind {
	case search.Unique:
		fmt.Fprintln(deps.Stdout, result.Text)
		return nil

	case search.Ambiguous:
		fmt.Fprintln(deps.Stdout, "The following documents matched the given terms. Please be more specific.")
		for _, h := range result.Candidates {
			fmt.Fprintf(deps.Stdout, "  %s\n", h.Name())
		}
		return &ExitError{Code: exitAmbiguous}

	default:
		fmt.Fprintln(deps.Stdout, "No documents matched the given terms.")
		return &ExitError{Code: exitNoMatch}
	}
}
