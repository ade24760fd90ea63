package mdir

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	numberedItemRe   = regexp.MustCompile(`^\d+\.\s`)
	tableSeparatorRe = regexp.MustCompile(`^\|[\s\-\|]*\|$`)
	imageRe          = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)`)
)

// Parser converts Markdown text into a Document. The zero value is ready
// to use and safe for concurrent use.
type Parser struct{}

// Parse implements the parse step of a conversion pipeline.
func (Parser) Parse(text string) (*Document, error) {
	return Parse(text)
}

// Parse converts Markdown text into a Document. It fails with a
// *ParseError on an empty heading or a malformed image line; no partial
// document is returned.
func Parse(text string) (*Document, error) {
	lines := splitLines(text)
	frontMatter, i := parseFrontMatter(lines)
	p := lineParser{lines: lines, i: i}
	nodes, err := p.body()
	if err != nil {
		return nil, err
	}
	return &Document{FrontMatter: frontMatter, Nodes: nodes}, nil
}

// ParseBytes validates src with ValidateInput and parses it.
func ParseBytes(src []byte) (*Document, error) {
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	return Parse(string(src))
}

// ParseReader reads r to the end and parses the result with ParseBytes.
func ParseReader(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	return ParseBytes(src)
}

type lineParser struct {
	lines []string
	i     int
}

func (p *lineParser) body() ([]Node, error) {
	var nodes []Node
	for p.i < len(p.lines) {
		line := p.lines[p.i]
		switch {
		case strings.HasPrefix(line, "#"):
			h, err := p.heading(line)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, h)
		case isBulletLine(line):
			nodes = append(nodes, p.bulletList())
		case numberedItemRe.MatchString(line):
			nodes = append(nodes, p.numberedList())
		case strings.HasPrefix(line, "|"):
			nodes = append(nodes, p.table())
		case strings.HasPrefix(line, "!["):
			img, err := p.image(line)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, img)
		case strings.TrimSpace(line) != "":
			nodes = append(nodes, p.paragraph())
		default:
			p.i++
		}
	}
	return nodes, nil
}

func (p *lineParser) heading(line string) (Heading, error) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	text := strings.TrimSpace(line[level:])
	if text == "" {
		return Heading{}, &ParseError{Line: p.i + 1, Msg: "empty heading"}
	}
	p.i++
	return Heading{Level: level, Text: text}, nil
}

func (p *lineParser) bulletList() BulletList {
	var items []string
	for p.i < len(p.lines) && isBulletLine(p.lines[p.i]) {
		items = append(items, strings.TrimSpace(p.lines[p.i][2:]))
		p.i++
	}
	return BulletList{Items: items}
}

func (p *lineParser) numberedList() NumberedList {
	var items []string
	for p.i < len(p.lines) {
		loc := numberedItemRe.FindStringIndex(p.lines[p.i])
		if loc == nil {
			break
		}
		items = append(items, strings.TrimSpace(p.lines[p.i][loc[1]:]))
		p.i++
	}
	return NumberedList{Items: items}
}

func (p *lineParser) table() Table {
	t := Table{Headers: splitRow(p.lines[p.i])}
	p.i++
	if p.i < len(p.lines) && tableSeparatorRe.MatchString(p.lines[p.i]) {
		p.i++
	}
	for p.i < len(p.lines) && strings.HasPrefix(p.lines[p.i], "|") {
		t.Rows = append(t.Rows, splitRow(p.lines[p.i]))
		p.i++
	}
	return t
}

func (p *lineParser) image(line string) (Image, error) {
	m := imageRe.FindStringSubmatch(line)
	if m == nil {
		return Image{}, &ParseError{Line: p.i + 1, Msg: "invalid image syntax"}
	}
	p.i++
	return Image{Alt: m[1], Path: m[2]}, nil
}

func (p *lineParser) paragraph() Paragraph {
	var parts []string
	for p.i < len(p.lines) {
		line := p.lines[p.i]
		if strings.TrimSpace(line) == "" || startsBlock(line) {
			break
		}
		parts = append(parts, line)
		p.i++
	}
	return Paragraph{Text: strings.TrimSpace(strings.Join(parts, " "))}
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

// startsBlock reports whether line opens a non-paragraph node.
func startsBlock(line string) bool {
	return strings.HasPrefix(line, "#") ||
		isBulletLine(line) ||
		numberedItemRe.MatchString(line) ||
		strings.HasPrefix(line, "|") ||
		strings.HasPrefix(line, "![")
}

// splitRow splits a table line on '|' and drops the fields outside the
// first and last pipe.
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return []string{}
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, c := range parts {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// splitLines splits on "\n", "\r\n" and "\r". A final terminator does not
// produce an empty trailing line. A leading byte order mark is dropped.
func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
