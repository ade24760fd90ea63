package convert

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pkt.systems/mdir"
)

// DocumentParser turns Markdown text into a Document. mdir.Parser satisfies
// it.
type DocumentParser interface {
	Parse(text string) (*mdir.Document, error)
}

// Config wires a Service. Storage is required; the rest default to the
// core parser, a plain renderer and a no-op logger.
type Config struct {
	Storage  Storage
	Renderer *mdir.Renderer
	Parser   DocumentParser
	Logger   Logger
}

// Validate reports missing required collaborators.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Storage, validation.Required.Error("storage is required")),
	)
}

func (c Config) withDefaults() Config {
	if c.Renderer == nil {
		c.Renderer = mdir.NewRenderer()
	}
	if c.Parser == nil {
		c.Parser = mdir.Parser{}
	}
	if c.Logger == nil {
		c.Logger = NoOp()
	}
	return c
}
