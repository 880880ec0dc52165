package main

import (
	"fmt"

	"docdex"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	result, err := deps.Crawler.Crawl(deps.Ctx, c.SeedURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl complete: %d visited, %d saved, %d skipped, %d failed.\n",
		result.Visited, result.Saved, result.Skipped, result.Failed)
	return nil
}
