package mdir

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return doc
}

func diffDocs(want, got *Document) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

func TestParseNodeKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []Node
	}{
		{
			name: "heading levels",
			src:  "# One\n### Three  \n",
			want: []Node{Heading{Level: 1, Text: "One"}, Heading{Level: 3, Text: "Three"}},
		},
		{
			name: "heading without space",
			src:  "#tag\n",
			want: []Node{Heading{Level: 1, Text: "tag"}},
		},
		{
			name: "paragraph joins lines",
			src:  "first line\nsecond line\n\nthird\n",
			want: []Node{Paragraph{Text: "first line second line"}, Paragraph{Text: "third"}},
		},
		{
			name: "paragraph stops at block",
			src:  "intro\n- a\n* b\n",
			want: []Node{Paragraph{Text: "intro"}, BulletList{Items: []string{"a", "b"}}},
		},
		{
			name: "emphasis is not a bullet",
			src:  "*bold* text\n",
			want: []Node{Paragraph{Text: "*bold* text"}},
		},
		{
			name: "numbered list drops numbering",
			src:  "3. c\n10. d\n",
			want: []Node{NumberedList{Items: []string{"c", "d"}}},
		},
		{
			name: "blank line splits lists",
			src:  "- a\n\n- b\n",
			want: []Node{BulletList{Items: []string{"a"}}, BulletList{Items: []string{"b"}}},
		},
		{
			name: "table with separator and ragged rows",
			src:  "| k | v |\n|---|---|\n| a | 1 |\n| b | 2 | 3 |\n| c |\n",
			want: []Node{Table{
				Headers: []string{"k", "v"},
				Rows:    [][]string{{"a", "1"}, {"b", "2", "3"}, {"c"}},
			}},
		},
		{
			name: "table without separator",
			src:  "| k | v |\n| a | 1 |\n",
			want: []Node{Table{Headers: []string{"k", "v"}, Rows: [][]string{{"a", "1"}}}},
		},
		{
			name: "table row without closing pipe loses last cell",
			src:  "| k | v\n",
			want: []Node{Table{Headers: []string{"k"}}},
		},
		{
			name: "bullet wins over table",
			src:  "- |x|\n",
			want: []Node{BulletList{Items: []string{"|x|"}}},
		},
		{
			name: "image with trailing text",
			src:  "![alt text](img/a.png) caption\n",
			want: []Node{Image{Alt: "alt text", Path: "img/a.png"}},
		},
		{
			name: "image with empty alt",
			src:  "![](a.png)\n",
			want: []Node{Image{Path: "a.png"}},
		},
		{
			name: "crlf line endings",
			src:  "# T\r\n\r\nbody\r\nmore\r\n",
			want: []Node{Heading{Level: 1, Text: "T"}, Paragraph{Text: "body more"}},
		},
		{
			name: "empty input",
			src:  "",
			want: nil,
		},
		{
			name: "only blank lines",
			src:  "\n  \n\t\n",
			want: nil,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := mustParse(t, tc.src)
			if diff := diffDocs(&Document{Nodes: tc.want}, doc); diff != "" {
				t.Fatalf("unexpected document (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<!--\ntitle: X\n-->\n\n# h\n")
	want := &Document{
		FrontMatter: Fields{{Key: "title", Value: "X"}},
		Nodes:       []Node{Heading{Level: 1, Text: "h"}},
	}
	if diff := diffDocs(want, doc); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}
}

func TestParseFrontMatterEdges(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want *Document
	}{
		{
			name: "value keeps later colons",
			src:  "<!--\nurl: http://example.com\n  spaced  :  value  \nno separator\n-->\nBody\n",
			want: &Document{
				FrontMatter: Fields{{Key: "url", Value: "http://example.com"}, {Key: "spaced", Value: "value"}},
				Nodes:       []Node{Paragraph{Text: "Body"}},
			},
		},
		{
			name: "duplicate key keeps first position",
			src:  "<!--\na: 1\nb: 2\na: 3\n-->\n",
			want: &Document{FrontMatter: Fields{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}},
		},
		{
			name: "unclosed block consumes input",
			src:  "<!--\na: b\n# h\n",
			want: &Document{FrontMatter: Fields{{Key: "a", Value: "b"}}},
		},
		{
			name: "byte order mark",
			src:  "\ufeff<!--\na: b\n-->\n# h\n",
			want: &Document{
				FrontMatter: Fields{{Key: "a", Value: "b"}},
				Nodes:       []Node{Heading{Level: 1, Text: "h"}},
			},
		},
		{
			name: "comment after body is a paragraph",
			src:  "# h\n<!--\na: b\n-->\n",
			want: &Document{Nodes: []Node{Heading{Level: 1, Text: "h"}, Paragraph{Text: "<!-- a: b -->"}}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := diffDocs(tc.want, mustParse(t, tc.src)); diff != "" {
				t.Fatalf("unexpected document (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{name: "empty heading", src: "#\n", line: 1, msg: "empty heading"},
		{name: "whitespace heading", src: "intro\n\n###   \n", line: 3, msg: "empty heading"},
		{name: "unterminated image", src: "![alt](missing", line: 1, msg: "invalid image syntax"},
		{name: "empty image path", src: "# ok\n![alt]()\n", line: 2, msg: "invalid image syntax"},
		{name: "heading after front matter", src: "<!--\na: b\n-->\n\n#\n", line: 5, msg: "empty heading"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse(tc.src)
			if doc != nil {
				t.Fatalf("expected no document, got %#v", doc)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Line != tc.line || perr.Msg != tc.msg {
				t.Fatalf("got line %d %q, want line %d %q", perr.Line, perr.Msg, tc.line, tc.msg)
			}
		})
	}
}

func TestParseBytesRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	_, err := ParseBytes([]byte("# ok\n\xff\n"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Fatalf("expected *ParseError on line 2, got %v", err)
	}

	doc, err := ParseBytes([]byte("# ok\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()
	doc, err := ParseReader(strings.NewReader("- a\n- b\n"))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	want := &Document{Nodes: []Node{BulletList{Items: []string{"a", "b"}}}}
	if diff := diffDocs(want, doc); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}
	if _, err := ParseReader(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
}

func TestParserValue(t *testing.T) {
	t.Parallel()
	var p Parser
	doc, err := p.Parse("![a](b)\n")
	if err != nil {
		t.Fatalf("Parser.Parse: %v", err)
	}
	if got := doc.Nodes[0]; got != (Image{Alt: "a", Path: "b"}) {
		t.Fatalf("unexpected node %#v", got)
	}
}
