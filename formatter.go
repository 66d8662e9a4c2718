package newsscraper

import "strings"

// FormatArticles formats articles for terminal display.
// Uses title if available, falls back to link.
// Articles are separated by blank lines.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.Title
		if header == "" {
			header = a.Link
		}
		part := "## " + header + "\n" + a.ID
		if a.Link != "" && a.Link != header {
			part += "\n" + a.Link
		}
		if a.Text != "" {
			part += "\n" + a.Text
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "\n\n")
}
