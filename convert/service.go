package convert

import (
	"context"

	"pkt.systems/mdir"
)

// Service loads and saves Markdown documents through a Storage. Parse and
// decode failures are reported with the validation category; storage and
// render failures with the command category.
type Service struct {
	storage  Storage
	renderer *mdir.Renderer
	parser   DocumentParser
	logger   Logger
}

// New validates cfg and returns a Service.
func New(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(err)
	}
	cfg = cfg.withDefaults()
	return &Service{
		storage:  cfg.Storage,
		renderer: cfg.Renderer,
		parser:   cfg.Parser,
		logger:   cfg.Logger,
	}, nil
}

// LoadDocument reads path and parses it.
func (s *Service) LoadDocument(ctx context.Context, path string) (*mdir.Document, error) {
	text, err := s.storage.Read(ctx, path)
	if err != nil {
		s.logger.Error("storage read failed", "path", path, "error", err)
		return nil, wrapReadError(err, path)
	}
	doc, err := s.parser.Parse(text)
	if err != nil {
		s.logger.Warn("parse failed", "path", path, "error", err)
		return nil, wrapParseError(err, path)
	}
	s.logger.Debug("document loaded", "path", path, "nodes", len(doc.Nodes), "front_matter", doc.FrontMatter.Len())
	return doc, nil
}

// SaveDocument renders doc and writes it to path.
func (s *Service) SaveDocument(ctx context.Context, path string, doc *mdir.Document) error {
	out, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("render failed", "path", path, "error", err)
		return wrapRenderError(err, path)
	}
	if err := s.storage.Write(ctx, path, out); err != nil {
		s.logger.Error("storage write failed", "path", path, "error", err)
		return wrapWriteError(err, path)
	}
	s.logger.Debug("document saved", "path", path, "bytes", len(out))
	return nil
}

// Save converts v to a Document, including front matter when v provides
// it, and writes it to path.
func (s *Service) Save(ctx context.Context, path string, v mdir.Convertible) error {
	return s.SaveDocument(ctx, path, mdir.ToDocument(v))
}

// Reformat parses src and writes its canonical rendering to dst. src and
// dst may be the same path.
func (s *Service) Reformat(ctx context.Context, src, dst string) error {
	doc, err := s.LoadDocument(ctx, src)
	if err != nil {
		return err
	}
	return s.SaveDocument(ctx, dst, doc)
}

// Load reads path and reconstructs a T with dec.
func Load[T any](ctx context.Context, s *Service, path string, dec mdir.Decoder[T]) (T, error) {
	var zero T
	doc, err := s.LoadDocument(ctx, path)
	if err != nil {
		return zero, err
	}
	v, err := mdir.Decode(doc, dec)
	if err != nil {
		s.logger.Warn("decode failed", "path", path, "error", err)
		return zero, wrapDecodeError(err, path)
	}
	return v, nil
}
