package mdir

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns a *ParseError wrapping ErrInvalidUTF8 or
// ErrBinaryInput when src is not text. The error carries the line of the
// first offending byte. The control-byte ratio is measured over the whole
// input and reports no line.
func ValidateInput(src []byte) error {
	line := 1
	var total, control int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return &ParseError{Line: line, Msg: ErrInvalidUTF8.Error(), Err: ErrInvalidUTF8}
		}
		if r == 0 {
			return &ParseError{Line: line, Msg: ErrBinaryInput.Error(), Err: ErrBinaryInput}
		}
		total += size
		if isControlRune(r) {
			control++
		}
		if r == '\n' {
			line++
		}
		i += size
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return &ParseError{Msg: ErrBinaryInput.Error(), Err: ErrBinaryInput}
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' || r == '\f' || r == '\v' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
