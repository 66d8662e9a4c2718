// Package goquery implements newsscraper.Extractor using CSS selectors.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsscraper"
)

var _ newsscraper.Extractor = (*ArticleExtractor)(nil)

// Selectors describes where article fields live on a listing page.
// Title and Text are paths of direct-child selectors starting at the
// article block; every segment must match for the field to be non-empty.
type Selectors struct {
	Article string
	Title   []string
	Text    []string
}

// DefaultSelectors returns the layout of the opensource.org news listing.
func DefaultSelectors() Selectors {
	return Selectors{
		Article: "article",
		Title:   []string{"header", "h2", "a"},
		Text:    []string{"div.content", "div.field", "div.field-items", "div.field-item", "p"},
	}
}

// ArticleExtractor extracts candidate articles from a listing page.
// It is a pure function of its input and never touches the network.
type ArticleExtractor struct {
	baseURL   string
	selectors Selectors
}

// Option configures an ArticleExtractor.
type Option func(*ArticleExtractor)

// WithSelectors overrides the default selectors.
func WithSelectors(s Selectors) Option {
	return func(e *ArticleExtractor) {
		e.selectors = s
	}
}

// NewArticleExtractor creates an extractor that prefixes every extracted
// href with baseURL.
func NewArticleExtractor(baseURL string, opts ...Option) *ArticleExtractor {
	e := &ArticleExtractor{
		baseURL:   baseURL,
		selectors: DefaultSelectors(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns one candidate per article block, in
// document order. Ranging over the result again walks the parsed tree
// again; the HTML is parsed only once.
func (e *ArticleExtractor) Extract(html string) (iter.Seq[newsscraper.Candidate], error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsscraper.Errorf(newsscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	return func(yield func(newsscraper.Candidate) bool) {
		blocks := doc.Find(e.selectors.Article)
		for i := range blocks.Length() {
			if !yield(e.candidate(blocks.Eq(i))) {
				return
			}
		}
	}, nil
}

// candidate extracts the three fields of a block independently, so a
// missing segment only empties the field that needs it.
func (e *ArticleExtractor) candidate(block *goquery.Selection) newsscraper.Candidate {
	anchor := childPath(block, e.selectors.Title)

	var link string
	if href, ok := anchor.Attr("href"); ok {
		link = e.baseURL + href
	}

	return newsscraper.Candidate{
		Title: strings.TrimSpace(anchor.Text()),
		Text:  strings.TrimSpace(childPath(block, e.selectors.Text).Text()),
		Link:  link,
	}
}

// childPath follows a chain of direct-child selectors. An empty selection
// at any step yields an empty selection.
func childPath(sel *goquery.Selection, path []string) *goquery.Selection {
	for _, segment := range path {
		sel = sel.ChildrenFiltered(segment)
	}
	return sel
}
