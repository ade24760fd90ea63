package mdir

import "fmt"

// NodeKind identifies a node variant.
type NodeKind uint8

const (
	// KindInvalid is the zero NodeKind; no node reports it.
	KindInvalid NodeKind = iota
	// KindHeading identifies Heading nodes.
	KindHeading
	// KindParagraph identifies Paragraph nodes.
	KindParagraph
	// KindBulletList identifies BulletList nodes.
	KindBulletList
	// KindNumberedList identifies NumberedList nodes.
	KindNumberedList
	// KindTable identifies Table nodes.
	KindTable
	// KindImage identifies Image nodes.
	KindImage
)

var kindNames = [...]string{
	KindInvalid:      "invalid",
	KindHeading:      "heading",
	KindParagraph:    "paragraph",
	KindBulletList:   "bullet_list",
	KindNumberedList: "numbered_list",
	KindTable:        "table",
	KindImage:        "image",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}

// Node is a block of the intermediate representation. The set of
// implementations is closed: only the types in this package satisfy it.
// Values are canonical; pointers to the variants are accepted and
// dereferenced by Value wherever nodes enter a Document or Cursor.
type Node interface {
	Kind() NodeKind
	// Accept dispatches to the visitor method for the node's variant.
	Accept(v NodeVisitor) error
	node()
}

// NodeVisitor has one method per node variant. Implementations are
// checked by the compiler when a variant is added.
type NodeVisitor interface {
	VisitHeading(Heading) error
	VisitParagraph(Paragraph) error
	VisitBulletList(BulletList) error
	VisitNumberedList(NumberedList) error
	VisitTable(Table) error
	VisitImage(Image) error
}

// Heading is an ATX heading. Level counts the leading '#' markers.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of plain text lines joined by single spaces.
type Paragraph struct {
	Text string
}

// BulletList is a run of "- " or "* " items.
type BulletList struct {
	Items []string
}

// NumberedList is a run of "N. " items. Source numbering is not kept.
type NumberedList struct {
	Items []string
}

// Image is a standalone "![alt](path)" line.
type Image struct {
	Alt  string
	Path string
}

func (Heading) Kind() NodeKind      { return KindHeading }
func (Paragraph) Kind() NodeKind    { return KindParagraph }
func (BulletList) Kind() NodeKind   { return KindBulletList }
func (NumberedList) Kind() NodeKind { return KindNumberedList }
func (Table) Kind() NodeKind        { return KindTable }
func (Image) Kind() NodeKind        { return KindImage }

func (n Heading) Accept(v NodeVisitor) error      { return v.VisitHeading(n) }
func (n Paragraph) Accept(v NodeVisitor) error    { return v.VisitParagraph(n) }
func (n BulletList) Accept(v NodeVisitor) error   { return v.VisitBulletList(n) }
func (n NumberedList) Accept(v NodeVisitor) error { return v.VisitNumberedList(n) }
func (n Table) Accept(v NodeVisitor) error        { return v.VisitTable(n) }
func (n Image) Accept(v NodeVisitor) error        { return v.VisitImage(n) }

func (Heading) node()      {}
func (Paragraph) node()    {}
func (BulletList) node()   {}
func (NumberedList) node() {}
func (Table) node()        {}
func (Image) node()        {}

// IsKind returns a predicate matching nodes of kind k, for use with
// Cursor.TakeWhile and Cursor.SkipUntil.
func IsKind(k NodeKind) func(Node) bool {
	return func(n Node) bool {
		return kindOf(n) == k
	}
}

func kindOf(n Node) NodeKind {
	if n = Value(n); n == nil {
		return KindInvalid
	}
	return n.Kind()
}

// Value returns n with pointer variants such as *Heading dereferenced.
// Nil interfaces and nil pointers yield nil. Parsed documents only hold
// values; Value lets hand-built node slices use pointers too.
func Value(n Node) Node {
	switch v := n.(type) {
	case *Heading:
		if v == nil {
			return nil
		}
		return *v
	case *Paragraph:
		if v == nil {
			return nil
		}
		return *v
	case *BulletList:
		if v == nil {
			return nil
		}
		return *v
	case *NumberedList:
		if v == nil {
			return nil
		}
		return *v
	case *Table:
		if v == nil {
			return nil
		}
		return *v
	case *Image:
		if v == nil {
			return nil
		}
		return *v
	default:
		return n
	}
}

func valueNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Value(n)
	}
	return out
}
