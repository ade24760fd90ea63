package mdir

import (
	"testing"
)

func TestDetectFrontMatter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want FrontMatterFormat
	}{
		{name: "comment", src: "<!--\ntitle: Post\n-->\n# Hello\n", want: FrontMatterComment},
		{name: "comment with bom", src: "\ufeff<!--\ntitle: Post\n-->\n", want: FrontMatterComment},
		{name: "yaml", src: "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n", want: FrontMatterYAML},
		{name: "toml", src: "+++\ntitle = \"Post\"\n+++\n\n# Hello\n", want: FrontMatterTOML},
		{name: "json", src: ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n", want: FrontMatterJSON},
		{name: "crlf yaml", src: "---\r\ntitle: Post\r\n---\r\n", want: FrontMatterYAML},
		{name: "unclosed", src: "---\ntitle: Post\n\n# Hello\n", want: FrontMatterNone},
		{name: "delimiter without metadata", src: "---\n# Keep\n---\n\nTail\n", want: FrontMatterNone},
		{name: "not at start", src: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n", want: FrontMatterNone},
		{name: "empty", src: "", want: FrontMatterNone},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectFrontMatter([]byte(tc.src)); got != tc.want {
				t.Fatalf("DetectFrontMatter = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseFrontMatterSkipsBlankLines(t *testing.T) {
	t.Parallel()
	lines := []string{"<!--", "a: 1", "", "b:2", "-->", "", "  ", "body"}
	fields, next := parseFrontMatter(lines)
	if next != 7 {
		t.Fatalf("next = %d, want 7", next)
	}
	if fields.Value("a") != "1" || fields.Value("b") != "2" || fields.Len() != 2 {
		t.Fatalf("unexpected fields %v", fields)
	}
	if _, next := parseFrontMatter([]string{"# h"}); next != 0 {
		t.Fatalf("document without front matter starts at %d", next)
	}
}

func TestEmptyFrontMatterBlock(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<!--\n-->\n\nbody\n")
	if doc.FrontMatter.Len() != 0 {
		t.Fatalf("unexpected fields %v", doc.FrontMatter)
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0] != (Paragraph{Text: "body"}) {
		t.Fatalf("unexpected nodes %#v", doc.Nodes)
	}
}
