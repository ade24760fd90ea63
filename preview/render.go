package preview

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/mdir"
)

const (
	bulletMarker  = "• "
	cellSeparator = " │ "
	ruleSeparator = "─┼─"
	ruleRune      = "─"
)

// Render writes a terminal preview of doc to w. Blocks are separated by a
// blank line and every line fits the configured width, except for table
// rows when the table has more columns than the width can hold.
func Render(w io.Writer, doc *mdir.Document, opts ...Option) error {
	if w == nil {
		return errors.New("preview: writer is nil")
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	out, err := render(doc, cfg)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("preview: write: %w", err)
	}
	return nil
}

// String is Render into a string.
func String(doc *mdir.Document, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	return render(doc, cfg)
}

func render(doc *mdir.Document, cfg Config) (string, error) {
	if doc == nil {
		return "", nil
	}
	p := &printer{cfg: cfg, styles: cfg.Theme.Styles()}
	var blocks []string
	if cfg.FrontMatter && doc.FrontMatter.Len() > 0 {
		blocks = append(blocks, p.frontMatter(doc.FrontMatter))
	}
	for i, n := range doc.Nodes {
		if n = mdir.Value(n); n == nil {
			return "", fmt.Errorf("preview: node %d: %w", i, mdir.ErrNilNode)
		}
		if err := n.Accept(p); err != nil {
			return "", fmt.Errorf("preview: node %d: %w", i, err)
		}
		if block := p.take(); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return "", nil
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// printer renders one node per Visit call into lines.
type printer struct {
	cfg    Config
	styles Styles
	lines  []string
}

func (p *printer) take() string {
	out := strings.Join(p.lines, "\n")
	p.lines = p.lines[:0]
	return out
}

func (p *printer) wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}

func (p *printer) frontMatter(fields mdir.Fields) string {
	for _, f := range fields {
		room := p.cfg.Width - ansi.PrintableRuneWidth(f.Key) - 2
		value := truncateWithEllipsis(f.Value, room)
		p.lines = append(p.lines, p.styles.FrontMatterKey.Render(f.Key)+": "+p.styles.FrontMatterValue.Render(value))
	}
	return p.take()
}

func (p *printer) VisitHeading(h mdir.Heading) error {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > len(p.styles.Heading) {
		level = len(p.styles.Heading)
	}
	style := p.styles.Heading[level-1]
	for _, line := range p.wrap(strings.Repeat("#", h.Level)+" "+h.Text, p.cfg.Width) {
		p.lines = append(p.lines, style.Render(line))
	}
	return nil
}

func (p *printer) VisitParagraph(para mdir.Paragraph) error {
	for _, line := range p.wrap(para.Text, p.cfg.Width) {
		p.lines = append(p.lines, p.styles.Text.Render(line))
	}
	return nil
}

func (p *printer) VisitBulletList(l mdir.BulletList) error {
	for _, item := range l.Items {
		p.item(bulletMarker, item)
	}
	return nil
}

func (p *printer) VisitNumberedList(l mdir.NumberedList) error {
	digits := len(strconv.Itoa(len(l.Items)))
	for i, item := range l.Items {
		marker := padding.String(strconv.Itoa(i+1)+".", uint(digits+1)) + " "
		p.item(marker, item)
	}
	return nil
}

// item writes a list entry with a hanging indent under its marker.
func (p *printer) item(marker, text string) {
	markerWidth := ansi.PrintableRuneWidth(marker)
	lines := p.wrap(text, p.cfg.Width-markerWidth)
	for i, line := range lines {
		lines[i] = p.styles.Text.Render(line)
	}
	p.lines = append(p.lines, p.styles.ListMarker.Render(marker)+lines[0])
	if len(lines) > 1 {
		rest := indent.String(strings.Join(lines[1:], "\n"), uint(markerWidth))
		p.lines = append(p.lines, strings.Split(rest, "\n")...)
	}
}

func (p *printer) VisitTable(t mdir.Table) error {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}
	widths := columnWidths(t, cols, p.cfg.Width-len([]rune(cellSeparator))*(cols-1))
	p.lines = append(p.lines, p.row(t.Headers, widths, p.styles.TableHeader))
	rule := make([]string, cols)
	for i, w := range widths {
		rule[i] = strings.Repeat(ruleRune, w)
	}
	p.lines = append(p.lines, p.styles.TableBorder.Render(strings.Join(rule, ruleSeparator)))
	for _, row := range t.Rows {
		p.lines = append(p.lines, p.row(row, widths, p.styles.Text))
	}
	return nil
}

func (p *printer) row(cells []string, widths []int, style Style) string {
	out := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			out[i] = style.Render(truncateWithEllipsis(cell, w))
		} else {
			out[i] = style.Render(fitCell(cell, w))
		}
	}
	return strings.TrimRight(strings.Join(out, p.styles.TableBorder.Render(cellSeparator)), " ")
}

// columnWidths sizes each column to its widest cell, then narrows the
// widest columns one cell at a time until the total fits avail.
func columnWidths(t mdir.Table, cols, avail int) []int {
	widths := make([]int, cols)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := ansi.PrintableRuneWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}
	total := 0
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
		total += widths[i]
	}
	for total > avail {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 1 {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

func (p *printer) VisitImage(img mdir.Image) error {
	label := "[image]"
	if img.Alt != "" {
		label = "[image: " + img.Alt + "]"
	}
	label = truncateWithEllipsis(label, p.cfg.Width)
	room := p.cfg.Width - ansi.PrintableRuneWidth(label) - 1
	if room < 1 {
		p.lines = append(p.lines, p.styles.ImageAlt.Render(label))
		p.lines = append(p.lines, p.link(img.Path, p.cfg.Width))
		return nil
	}
	p.lines = append(p.lines, p.styles.ImageAlt.Render(label)+" "+p.link(img.Path, room))
	return nil
}

func (p *printer) link(target string, room int) string {
	shown := p.styles.ImageURL.Render(fitPath(target, room))
	if p.cfg.OSC8 {
		return hyperlink(target, shown)
	}
	return shown
}
