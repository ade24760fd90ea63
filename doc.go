// Package mdir converts Markdown documents to and from a small intermediate
// representation (IR).
//
// The IR is a closed set of block nodes (Heading, Paragraph, BulletList,
// NumberedList, Table and Image) plus an optional front-matter block written
// as an HTML comment. Parsing is a single forward scan over the input lines;
// rendering is its inverse for the supported node set, so
// Parse(Render(doc)) reproduces doc for every document without numbered-list
// prefixes that differ from 1..n.
//
// Core properties:
//   - Pure parse and render functions, safe for concurrent use
//   - Sealed node set with a visitor for exhaustive handling
//   - Cursor-based reconstruction of domain records
//   - Strict table-to-mapping extraction (Table.AsDict)
//
// Example:
//
//	doc, err := mdir.Parse("<!--\ntitle: Report\n-->\n\n# Summary\n\nAll good.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := mdir.Render(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Domain records plug in through Convertible (record to nodes) and
// Decoder (nodes to record). CursorDecoder implementations can be adapted
// to Decoder with FromCursor.
package mdir
