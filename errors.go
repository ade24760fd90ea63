package mdir

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfSequence reports a cursor read past the last node.
	ErrEndOfSequence = errors.New("end of node sequence")
	// ErrUnexpectedNode reports a cursor expectation that did not match.
	ErrUnexpectedNode = errors.New("unexpected node")
	// ErrNilNode reports a nil Node handed to the renderer.
	ErrNilNode = errors.New("nil node")
)

// ParseError reports malformed Markdown. Line is 1-based; zero means the
// error is not tied to a line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Msg)
	}
	return "parse: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a structural violation found while extracting
// data from the IR. Element names what is missing or malformed.
type ValidationError struct {
	Element string
	Msg     string
}

func (e *ValidationError) Error() string {
	if e.Element == "" {
		return "validation: " + e.Msg
	}
	return fmt.Sprintf("validation: %s: %s", e.Element, e.Msg)
}

// Missing returns a ValidationError for an absent required element.
func Missing(element string) *ValidationError {
	return &ValidationError{Element: element, Msg: "required element is missing"}
}

// Invalid returns a ValidationError for a malformed element.
func Invalid(element, format string, args ...any) *ValidationError {
	return &ValidationError{Element: element, Msg: fmt.Sprintf(format, args...)}
}

// CursorError reports a Cursor used against a node sequence it does not
// match. Err is ErrEndOfSequence or ErrUnexpectedNode.
type CursorError struct {
	Op       string
	Pos      int
	Expected NodeKind
	Actual   NodeKind
	Err      error
}

func (e *CursorError) Error() string {
	if errors.Is(e.Err, ErrUnexpectedNode) {
		actual := "end of sequence"
		if e.Actual != KindInvalid {
			actual = e.Actual.String()
		}
		return fmt.Sprintf("cursor %s at %d: expected %s, got %s", e.Op, e.Pos, e.Expected, actual)
	}
	return fmt.Sprintf("cursor %s at %d: %v", e.Op, e.Pos, e.Err)
}

func (e *CursorError) Unwrap() error { return e.Err }
