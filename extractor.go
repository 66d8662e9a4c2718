package newsscraper

import "iter"

// Candidate is an article record produced by an Extractor before it is
// persisted. Fields are empty when the page does not provide them.
type Candidate struct {
	Title string
	Text  string
	Link  string
}

// Extractor extracts candidate articles from a listing page.
type Extractor interface {
	// Extract parses raw HTML and returns a sequence with one candidate per
	// article block. The sequence is finite and may be ranged over more
	// than once.
	Extract(html string) (iter.Seq[Candidate], error)
}
