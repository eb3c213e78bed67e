// Package wikisite turns a Wikipedia article into a downloadable single-page
// website. The article is fetched and cleaned, a language model writes the
// page, and an image model fills in the hero image when the article has none.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, goquery/, zip/).
package wikisite
