package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/newsscraper"
)

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	fields, err := parseFields(c.Fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsscraper.ErrorMessage(err))
		return err
	}

	article, err := deps.Attacher.AttachNote(deps.Ctx, c.ID, fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsscraper.ErrorMessage(err))
		return err
	}

	noteID := ""
	if article.NoteID != nil {
		noteID = *article.NoteID
	}
	fmt.Fprintf(deps.Stdout, "Attached note %s to article %s\n", noteID, article.ID)
	return nil
}

// parseFields turns key=value pairs into note fields. Later pairs win.
func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, newsscraper.Errorf(newsscraper.EINVALID, "invalid field %q, expected key=value", pair)
		}
		fields[key] = value
	}
	return fields, nil
}
