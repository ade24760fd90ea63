package mdir

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer serializes Documents to Markdown. It is immutable and safe for
// concurrent use.
type Renderer struct {
	cfg renderConfig
}

// NewRenderer returns a Renderer configured by opts.
func NewRenderer(opts ...RenderOption) *Renderer {
	return &Renderer{cfg: newRenderConfig(opts)}
}

// Render serializes doc with a renderer configured by opts.
func Render(doc *Document, opts ...RenderOption) (string, error) {
	return NewRenderer(opts...).Render(doc)
}

// RenderTo writes the serialization of doc to w.
func RenderTo(w io.Writer, doc *Document, opts ...RenderOption) error {
	return NewRenderer(opts...).RenderTo(w, doc)
}

// Render serializes doc. Every block, including the front matter, ends with
// a newline followed by a blank line. The only failure is a nil node.
func (r *Renderer) Render(doc *Document) (string, error) {
	if doc == nil {
		return r.normalizer().Normalize(""), nil
	}
	var b strings.Builder
	if len(doc.FrontMatter) > 0 {
		writeFrontMatter(&b, doc.FrontMatter)
	}
	bw := blockWriter{b: &b}
	for i, n := range doc.Nodes {
		if n = Value(n); n == nil {
			return "", fmt.Errorf("render: node %d: %w", i, ErrNilNode)
		}
		if err := n.Accept(bw); err != nil {
			return "", fmt.Errorf("render: node %d: %w", i, err)
		}
		b.WriteByte('\n')
	}
	return r.normalizer().Normalize(b.String()), nil
}

// RenderTo writes the serialization of doc to w.
func (r *Renderer) RenderTo(w io.Writer, doc *Document) error {
	if w == nil {
		return fmt.Errorf("render: writer is nil")
	}
	out, err := r.Render(doc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

func (r *Renderer) normalizer() Normalizer {
	if r == nil || r.cfg.normalizer == nil {
		return identity
	}
	return r.cfg.normalizer
}

func writeFrontMatter(b *strings.Builder, fields Fields) {
	b.WriteString(frontMatterOpen)
	b.WriteByte('\n')
	for _, f := range fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	b.WriteString(frontMatterClose)
	b.WriteString("\n\n")
}

// blockWriter renders one node per Visit call, each terminated by a newline.
type blockWriter struct {
	b *strings.Builder
}

func (w blockWriter) VisitHeading(h Heading) error {
	w.b.WriteString(strings.Repeat("#", h.Level))
	w.b.WriteByte(' ')
	w.b.WriteString(h.Text)
	w.b.WriteByte('\n')
	return nil
}

func (w blockWriter) VisitParagraph(p Paragraph) error {
	w.b.WriteString(p.Text)
	w.b.WriteByte('\n')
	return nil
}

func (w blockWriter) VisitBulletList(l BulletList) error {
	for _, item := range l.Items {
		w.b.WriteString("- ")
		w.b.WriteString(item)
		w.b.WriteByte('\n')
	}
	return nil
}

func (w blockWriter) VisitNumberedList(l NumberedList) error {
	for i, item := range l.Items {
		w.b.WriteString(strconv.Itoa(i + 1))
		w.b.WriteString(". ")
		w.b.WriteString(item)
		w.b.WriteByte('\n')
	}
	return nil
}

func (w blockWriter) VisitTable(t Table) error {
	w.row(t.Headers)
	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = "----"
	}
	w.row(sep)
	for _, r := range t.Rows {
		w.row(r)
	}
	return nil
}

func (w blockWriter) row(cells []string) {
	w.b.WriteString("| ")
	w.b.WriteString(strings.Join(cells, " | "))
	w.b.WriteString(" |\n")
}

func (w blockWriter) VisitImage(img Image) error {
	w.b.WriteString("![")
	w.b.WriteString(img.Alt)
	w.b.WriteString("](")
	w.b.WriteString(img.Path)
	w.b.WriteString(")\n")
	return nil
}
