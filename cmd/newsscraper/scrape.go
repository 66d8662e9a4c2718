package main

import (
	"fmt"

	"github.com/fwojciec/newsscraper"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.ResetAndReplace(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsscraper.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles", result.Saved)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	for _, f := range result.Failures {
		fmt.Fprintf(deps.Stderr, "  #%d %s: %v\n", f.Position, f.Link, f.Err)
	}

	return nil
}
