package mdir

import (
	"fmt"
	"strings"
)

// Cursor reads a node sequence front to back. Its position only moves
// forward; Fork starts an independent cursor over what is left.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	nodes       []Node
	frontMatter Fields
	pos         int
}

// NewCursor returns a cursor over copies of nodes and frontMatter.
func NewCursor(nodes []Node, frontMatter Fields) *Cursor {
	return &Cursor{
		nodes:       valueNodes(nodes),
		frontMatter: frontMatter.Clone(),
	}
}

// Done reports whether every node has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.nodes) }

// Pos returns the number of consumed nodes.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying sequence.
func (c *Cursor) Len() int { return len(c.nodes) }

// FrontMatter returns a copy of the attached front matter.
func (c *Cursor) FrontMatter() Fields { return c.frontMatter.Clone() }

// Remaining returns a copy of the unconsumed nodes.
func (c *Cursor) Remaining() []Node {
	return append([]Node(nil), c.nodes[c.pos:]...)
}

// Peek returns the current node without consuming it.
func (c *Cursor) Peek() (Node, bool) {
	if c.Done() {
		return nil, false
	}
	return c.nodes[c.pos], true
}

// Next consumes and returns the current node.
func (c *Cursor) Next() (Node, error) {
	if c.Done() {
		return nil, &CursorError{Op: "next", Pos: c.pos, Err: ErrEndOfSequence}
	}
	n := c.nodes[c.pos]
	c.pos++
	return n, nil
}

// Expect consumes the current node if it is of kind k.
func (c *Cursor) Expect(k NodeKind) (Node, error) {
	n, ok := c.Peek()
	if !ok || kindOf(n) != k {
		return nil, &CursorError{
			Op:       "expect",
			Pos:      c.pos,
			Expected: k,
			Actual:   kindOf(n),
			Err:      ErrUnexpectedNode,
		}
	}
	c.pos++
	return n, nil
}

// NodeValue is the set of concrete node types.
type NodeValue interface {
	Heading | Paragraph | BulletList | NumberedList | Table | Image
	Node
}

// ExpectAs consumes the current node if it has type T.
func ExpectAs[T NodeValue](c *Cursor) (T, error) {
	var zero T
	n, ok := c.Peek()
	t, match := n.(T)
	if !ok || !match {
		return zero, &CursorError{
			Op:       "expect",
			Pos:      c.pos,
			Expected: zero.Kind(),
			Actual:   kindOf(n),
			Err:      ErrUnexpectedNode,
		}
	}
	c.pos++
	return t, nil
}

// TakeWhile consumes and returns the longest run of nodes matching pred.
func (c *Cursor) TakeWhile(pred func(Node) bool) []Node {
	var out []Node
	for !c.Done() && pred(c.nodes[c.pos]) {
		out = append(out, c.nodes[c.pos])
		c.pos++
	}
	return out
}

// SkipUntil consumes nodes until pred matches the current node, which is
// left unconsumed. It reports whether such a node was found.
func (c *Cursor) SkipUntil(pred func(Node) bool) bool {
	for !c.Done() {
		if pred(c.nodes[c.pos]) {
			return true
		}
		c.pos++
	}
	return false
}

// CollectParagraphText consumes consecutive paragraphs and joins their text
// with a blank line. It returns "" when the current node is not a
// Paragraph.
func (c *Cursor) CollectParagraphText() string {
	paras := c.TakeWhile(IsKind(KindParagraph))
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.(Paragraph).Text
	}
	return strings.Join(texts, "\n\n")
}

// TableAsDict consumes a Table and returns Table.AsDict.
func (c *Cursor) TableAsDict(ignoreExtraColumns bool) (Fields, error) {
	t, err := ExpectAs[Table](c)
	if err != nil {
		return nil, err
	}
	return t.AsDict(ignoreExtraColumns)
}

// Fork returns a cursor over the unconsumed nodes with a copy of the front
// matter. The two cursors advance independently.
func (c *Cursor) Fork() *Cursor {
	return NewCursor(c.nodes[c.pos:], c.frontMatter)
}

func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor{pos=%d len=%d}", c.pos, len(c.nodes))
}
