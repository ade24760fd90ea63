package mdir

import (
	"bytes"
	"strings"
)

const (
	frontMatterOpen  = "<!--"
	frontMatterClose = "-->"
)

// FrontMatterFormat identifies the front-matter flavour at the start of a
// document.
type FrontMatterFormat uint8

const (
	// FrontMatterNone means the document has no recognised front matter.
	FrontMatterNone FrontMatterFormat = iota
	// FrontMatterComment is the native "<!--" ... "-->" block.
	FrontMatterComment
	// FrontMatterYAML is a "---" delimited block.
	FrontMatterYAML
	// FrontMatterTOML is a "+++" delimited block.
	FrontMatterTOML
	// FrontMatterJSON is a ";;;" delimited block.
	FrontMatterJSON
)

func (f FrontMatterFormat) String() string {
	switch f {
	case FrontMatterComment:
		return "comment"
	case FrontMatterYAML:
		return "yaml"
	case FrontMatterTOML:
		return "toml"
	case FrontMatterJSON:
		return "json"
	default:
		return "none"
	}
}

// DetectFrontMatter reports which front-matter flavour src starts with.
// Foreign flavours (YAML, TOML, JSON) are only reported when the block is
// closed and its first line looks like metadata.
func DetectFrontMatter(src []byte) FrontMatterFormat {
	src = trimBOM(src)
	open, next := nextLine(src, 0)
	if bytes.HasPrefix(open, []byte(frontMatterOpen)) {
		return FrontMatterComment
	}
	format, delim := openingDelimiter(open)
	if format == FrontMatterNone {
		return FrontMatterNone
	}
	second, _ := nextLine(src, next)
	if !metadataLikely(second) {
		return FrontMatterNone
	}
	if !hasClosingDelimiter(src, next, delim) {
		return FrontMatterNone
	}
	return format
}

// parseFrontMatter reads the comment block at the start of lines and
// returns the fields and the index of the first line after the block and
// any blank lines that follow it. A missing close marker consumes the rest
// of the input.
func parseFrontMatter(lines []string) (Fields, int) {
	i := 0
	if len(lines) == 0 || !strings.HasPrefix(lines[0], frontMatterOpen) {
		return nil, 0
	}
	var fields Fields
	i++
	for i < len(lines) && !strings.HasPrefix(lines[i], frontMatterClose) {
		if key, value, ok := strings.Cut(lines[i], ":"); ok {
			fields.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		i++
	}
	if i < len(lines) {
		i++
	}
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return fields, i
}

func openingDelimiter(line []byte) (FrontMatterFormat, []byte) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return FrontMatterYAML, []byte("---")
	case bytes.Equal(trimmed, []byte("+++")):
		return FrontMatterTOML, []byte("+++")
	case bytes.Equal(trimmed, []byte(";;;")):
		return FrontMatterJSON, []byte(";;;")
	default:
		return FrontMatterNone, nil
	}
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func hasClosingDelimiter(src []byte, start int, delim []byte) bool {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return true
		}
		idx = next
	}
	return false
}

// nextLine returns the line starting at start without its terminator and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	end := start + i
	return trimCR(src[start:end]), end + 1
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
