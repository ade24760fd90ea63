package mdir

// Document is a parsed Markdown document: optional front matter followed by
// body nodes in source order.
type Document struct {
	FrontMatter Fields
	Nodes       []Node
}

// NewDocument returns a Document over copies of frontMatter and nodes.
func NewDocument(frontMatter Fields, nodes ...Node) *Document {
	return &Document{
		FrontMatter: frontMatter.Clone(),
		Nodes:       valueNodes(nodes),
	}
}

// Cursor returns a cursor over the document body.
func (d *Document) Cursor() *Cursor {
	return NewCursor(d.Nodes, d.FrontMatter)
}

// Headings returns every heading of the given level.
func (d *Document) Headings(level int) []Heading {
	var out []Heading
	for _, n := range d.Nodes {
		if h, ok := Value(n).(Heading); ok && h.Level == level {
			out = append(out, h)
		}
	}
	return out
}

// FirstHeading returns the first heading of the given level.
func (d *Document) FirstHeading(level int) (Heading, bool) {
	for _, n := range d.Nodes {
		if h, ok := Value(n).(Heading); ok && h.Level == level {
			return h, true
		}
	}
	return Heading{}, false
}

// FirstTable returns the first table in the body.
func (d *Document) FirstTable() (Table, bool) {
	for _, n := range d.Nodes {
		if t, ok := Value(n).(Table); ok {
			return t, true
		}
	}
	return Table{}, false
}

// BulletListAfter returns the items of the bullet list immediately
// following the heading with the given text and level.
func (d *Document) BulletListAfter(text string, level int) ([]string, bool) {
	for i, n := range d.Nodes {
		h, ok := Value(n).(Heading)
		if !ok || h.Level != level || h.Text != text || i+1 >= len(d.Nodes) {
			continue
		}
		if list, ok := Value(d.Nodes[i+1]).(BulletList); ok {
			return list.Items, true
		}
	}
	return nil, false
}
