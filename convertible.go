package mdir

// Convertible is implemented by records that project onto the IR.
// ToNodes must not perform I/O.
type Convertible interface {
	ToNodes() []Node
}

// FrontMatterProvider is implemented by Convertible records that supply a
// front-matter block when serialized.
type FrontMatterProvider interface {
	Convertible
	ToFrontMatter() Fields
}

// Decoder reconstructs a T from a node sequence and its front matter.
// Missing or malformed structure is reported as a *ValidationError or a
// *CursorError, never replaced by a default.
type Decoder[T any] interface {
	DecodeNodes(nodes []Node, frontMatter Fields) (T, error)
}

// CursorDecoder reconstructs a T by reading from a Cursor.
type CursorDecoder[T any] interface {
	DecodeCursor(c *Cursor) (T, error)
}

// DecodeFunc adapts a function to Decoder.
type DecodeFunc[T any] func(nodes []Node, frontMatter Fields) (T, error)

// DecodeNodes calls f.
func (f DecodeFunc[T]) DecodeNodes(nodes []Node, frontMatter Fields) (T, error) {
	return f(nodes, frontMatter)
}

// CursorFunc adapts a cursor-reading function to both CursorDecoder and
// Decoder.
type CursorFunc[T any] func(c *Cursor) (T, error)

// DecodeCursor calls f.
func (f CursorFunc[T]) DecodeCursor(c *Cursor) (T, error) { return f(c) }

// DecodeNodes calls f with a new Cursor over nodes and frontMatter.
func (f CursorFunc[T]) DecodeNodes(nodes []Node, frontMatter Fields) (T, error) {
	return f(NewCursor(nodes, frontMatter))
}

// CursorAdapter exposes a CursorDecoder as a Decoder.
type CursorAdapter[T any] struct {
	Decoder CursorDecoder[T]
}

// DecodeNodes builds a Cursor over nodes and frontMatter and delegates to
// the wrapped CursorDecoder.
func (a CursorAdapter[T]) DecodeNodes(nodes []Node, frontMatter Fields) (T, error) {
	return a.Decoder.DecodeCursor(NewCursor(nodes, frontMatter))
}

// FromCursor adapts d to Decoder.
func FromCursor[T any](d CursorDecoder[T]) Decoder[T] {
	return CursorAdapter[T]{Decoder: d}
}

// ToDocument builds the Document for v. Front matter comes from
// v.ToFrontMatter when v implements FrontMatterProvider.
func ToDocument(v Convertible) *Document {
	doc := &Document{Nodes: v.ToNodes()}
	if p, ok := v.(FrontMatterProvider); ok {
		doc.FrontMatter = p.ToFrontMatter().Clone()
	}
	return doc
}

// Decode reconstructs a T from doc using dec.
func Decode[T any](doc *Document, dec Decoder[T]) (T, error) {
	if doc == nil {
		var zero T
		return zero, Missing("document")
	}
	return dec.DecodeNodes(doc.Nodes, doc.FrontMatter)
}
