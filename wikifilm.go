// Package wikifilm locates the Wikipedia article for a film or TV show
// and extracts its content as a structured, sanitized document: infobox
// key/value data, lead section, body sections, and a table of contents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mediawiki/, goquery/, http/).
package wikifilm
