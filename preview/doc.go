// Package preview renders mdir documents for a terminal.
//
// Headings, list markers and tables are styled with a Theme; paragraphs
// and list items are word-wrapped to the configured width with reflow.
// Image paths can be emitted as OSC 8 hyperlinks.
package preview
