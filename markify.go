// Package markify converts HTML documents to Markdown.
//
// It layers a small rendering policy on top of a generic HTML-to-Markdown
// engine: headings are always ATX style and start on a fresh line, links are
// limited to http, https and file targets with escaped paths, and embedded
// data URI images are either truncated or written out as files.
//
// This package contains the domain types, interfaces and the pure rendering
// rules. Implementations live in subdirectories named after their primary
// dependency (e.g., htmltomarkdown/, goquery/, http/, fs/).
package markify
