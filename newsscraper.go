// Package newsscraper provides a small news scraping service. It fetches a
// listing page, extracts article records using CSS selectors, stores them,
// and lets users attach notes to stored articles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package newsscraper
