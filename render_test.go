package mdir

import (
	"errors"
	"strings"
	"testing"
)

func sampleDocument() *Document {
	return &Document{
		FrontMatter: Fields{{Key: "title", Value: "Report"}, {Key: "date", Value: "2024-06-15"}},
		Nodes: []Node{
			Heading{Level: 1, Text: "Title"},
			Paragraph{Text: "Hello world"},
			BulletList{Items: []string{"a", "b"}},
			NumberedList{Items: []string{"x", "y"}},
			Table{Headers: []string{"k", "v"}, Rows: [][]string{{"a", "1"}, {"b", "2", "3"}}},
			Image{Alt: "alt", Path: "img.png"},
		},
	}
}

func TestRenderAllNodeKinds(t *testing.T) {
	t.Parallel()
	got, err := Render(sampleDocument())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := strings.Join([]string{
		"<!--",
		"title: Report",
		"date: 2024-06-15",
		"-->",
		"",
		"# Title",
		"",
		"Hello world",
		"",
		"- a",
		"- b",
		"",
		"1. x",
		"2. y",
		"",
		"| k | v |",
		"| ---- | ---- |",
		"| a | 1 |",
		"| b | 2 | 3 |",
		"",
		"![alt](img.png)",
		"",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected render:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	t.Parallel()
	for _, doc := range []*Document{nil, {}, {FrontMatter: Fields{}}} {
		got, err := Render(doc)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got != "" {
			t.Fatalf("expected empty output, got %q", got)
		}
	}
}

func TestRenderNilNode(t *testing.T) {
	t.Parallel()
	_, err := Render(&Document{Nodes: []Node{Paragraph{Text: "ok"}, nil}})
	if !errors.Is(err, ErrNilNode) {
		t.Fatalf("expected ErrNilNode, got %v", err)
	}
}

func TestRenderRenumbersNumberedLists(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "5. first\n9. second\n12. third\n")
	got, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "1. first\n2. second\n3. third\n\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	again := mustParse(t, got)
	if diff := diffDocs(doc, again); diff != "" {
		t.Fatalf("reparse changed items (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	docs := []*Document{
		{},
		{FrontMatter: Fields{{Key: "title", Value: "Only front matter"}}},
		{
			FrontMatter: Fields{{Key: "id", Value: "E001"}, {Key: "url", Value: "https://example.com/a:b"}},
			Nodes: []Node{
				Heading{Level: 2, Text: "Section"},
				Paragraph{Text: "First paragraph."},
				Paragraph{Text: "Second paragraph with | pipe."},
				BulletList{Items: []string{"one", "two", "three"}},
				Table{Headers: []string{"Key", "Value"}, Rows: [][]string{{"a", "1"}, {"b", "2"}}},
				Image{Alt: "diagram", Path: "img/diagram.png"},
				Heading{Level: 6, Text: "Deep"},
			},
		},
		{
			Nodes: []Node{
				BulletList{Items: []string{"a"}},
				BulletList{Items: []string{"b"}},
				Table{Headers: []string{"h"}, Rows: [][]string{{"x", "y", "z"}, {"only"}}},
				Table{Headers: []string{"next"}},
			},
		},
	}
	for i, doc := range docs {
		out, err := Render(doc)
		if err != nil {
			t.Fatalf("doc %d: Render: %v", i, err)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("doc %d: Parse(%q): %v", i, out, err)
		}
		if diff := diffDocs(doc, back); diff != "" {
			t.Fatalf("doc %d: round trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRenderWithNormalizer(t *testing.T) {
	t.Parallel()
	calls := 0
	upper := NormalizerFunc(func(s string) string {
		calls++
		return strings.ToUpper(s)
	})
	r := NewRenderer(WithNormalizer(upper))
	got, err := r.Render(&Document{Nodes: []Node{Paragraph{Text: "quiet"}, Paragraph{Text: "still"}}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "QUIET\n\nSTILL\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected a single normalizer call, got %d", calls)
	}

	plain := NewRenderer(WithNormalizer(nil))
	got, err = plain.Render(&Document{Nodes: []Node{Paragraph{Text: "quiet"}}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "quiet\n\n" {
		t.Fatalf("nil normalizer should be identity, got %q", got)
	}
}

func TestCollapseBlankLines(t *testing.T) {
	t.Parallel()
	got, err := Render(sampleDocument(), WithNormalizer(CollapseBlankLines))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(got, "![alt](img.png)\n") || strings.HasSuffix(got, "\n\n") {
		t.Fatalf("expected a single trailing newline, got %q", got)
	}
	if again := CollapseBlankLines.Normalize(got); again != got {
		t.Fatalf("normalizer is not idempotent:\n%q\n%q", got, again)
	}
	back, err := Parse(got)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := diffDocs(sampleDocument(), back); diff != "" {
		t.Fatalf("normalized output parses differently (-want +got):\n%s", diff)
	}

	cases := map[string]string{
		"":                    "",
		"\n\n":                "",
		"a\n\n\n\nb\n\n":      "a\n\nb\n",
		"\n  \na\r\n \r\nb":   "a\n\nb\n",
		"- \n\n\n1. x\n\n\n\n": "- \n\n1. x\n",
	}
	for in, want := range cases {
		if got := CollapseBlankLines.Normalize(in); got != want {
			t.Fatalf("CollapseBlankLines(%q) = %q, want %q", in, got, want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderTo(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	if err := RenderTo(&b, &Document{Nodes: []Node{Heading{Level: 1, Text: "x"}}}); err != nil {
		t.Fatalf("RenderTo: %v", err)
	}
	if b.String() != "# x\n\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
	if err := RenderTo(failingWriter{}, sampleDocument()); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected writer error, got %v", err)
	}
	if err := RenderTo(nil, sampleDocument()); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderPointerNodes(t *testing.T) {
	t.Parallel()
	got, err := Render(&Document{Nodes: []Node{&Heading{Level: 1, Text: "x"}, &Paragraph{Text: "y"}}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "# x\n\ny\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
	var missing *Image
	if _, err := Render(&Document{Nodes: []Node{missing}}); !errors.Is(err, ErrNilNode) {
		t.Fatalf("expected ErrNilNode for nil pointer, got %v", err)
	}
}
