// Package mdhtml exports mdir documents as HTML fragments through goldmark.
package mdhtml

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"pkt.systems/mdir"
)

var extensionNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Options controls the HTML export.
type Options struct {
	// Extensions names goldmark extensions to enable. Empty selects GFM.
	// Unknown names are ignored.
	Extensions []string
	// FrontMatterMeta emits one <meta> element per front-matter field ahead
	// of the body.
	FrontMatterMeta bool
	// HeadingIDs adds generated id attributes to headings.
	HeadingIDs bool
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
}

// Validate rejects malformed extension names.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Extensions, validation.Each(validation.Match(extensionNameRe))),
	)
}

// Convert renders doc to HTML. The body goes through the canonical
// Markdown renderer first, so the HTML reflects exactly what Render would
// write to disk.
func Convert(doc *mdir.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("mdhtml: document is nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("mdhtml: %w", err)
	}
	body, err := mdir.Render(&mdir.Document{Nodes: doc.Nodes})
	if err != nil {
		return nil, fmt.Errorf("mdhtml: %w", err)
	}
	var buf bytes.Buffer
	if opts.FrontMatterMeta {
		writeMeta(&buf, doc.FrontMatter)
	}
	if err := newEngine(opts).Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("mdhtml: convert: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMeta(buf *bytes.Buffer, fields mdir.Fields) {
	for _, f := range fields {
		fmt.Fprintf(buf, "<meta name=\"%s\" content=\"%s\">\n", html.EscapeString(f.Key), html.EscapeString(f.Value))
	}
}

func newEngine(opts Options) goldmark.Markdown {
	var parserOptions []parser.Option
	if opts.HeadingIDs {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}
	var rendererOptions []renderer.Option
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, ghtml.WithHardWraps())
	}
	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(parserOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithParserOptions(parserOptions...))
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"typographer":   extension.Typographer,
}

// collectExtensions resolves names against the registry. The table
// extension is always present since tables are part of the document model.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}
	extenders := []goldmark.Extender{extension.Table}
	seen := map[string]struct{}{"table": {}, "tables": {}}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}

// ExtensionNames returns the recognised extension names.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
