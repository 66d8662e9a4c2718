package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/newsscraper"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, newsscraper.ArticleFilter{
		Limit:        c.Limit,
		PopulateNote: c.Notes,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsscraper.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsscraper scrape' to fetch some.")
		return nil
	}

	if !c.Notes {
		fmt.Fprintln(deps.Stdout, newsscraper.FormatArticles(articles))
		return nil
	}

	for i, a := range articles {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprint(deps.Stdout, newsscraper.FormatArticles([]*newsscraper.Article{a}))
		fmt.Fprintln(deps.Stdout)
		if a.Note == nil {
			continue
		}
		keys := make([]string, 0, len(a.Note.Fields))
		for k := range a.Note.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "> %s: %s\n", k, a.Note.Fields[k])
		}
	}

	return nil
}
