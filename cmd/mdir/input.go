package main

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdir/convert"
)

const stdinName = "<stdin>"

// maxRemoteBytes caps http(s) inputs.
var maxRemoteBytes int64 = convert.DefaultMaxHTTPBytes

// inputKind classifies a command-line input argument.
type inputKind int

const (
	inputStdin inputKind = iota
	inputFile
	inputRemote
)

// classifyInput resolves raw to its kind and, for files, a local path.
// "-" is stdin; http(s) URLs are remote; file:// URLs and everything else
// are local paths.
func classifyInput(raw string) (inputKind, string, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return 0, "", errors.New("empty input argument")
	case "-":
		return inputStdin, "", nil
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputRemote, raw, nil
		case "file":
			p := u.Path
			if p == "" {
				p = u.Host
			}
			if unescaped, err := url.PathUnescape(p); err == nil {
				p = unescaped
			}
			return inputFile, expandPath(p), nil
		}
	}
	return inputFile, expandPath(raw), nil
}

// readInput reads one input completely.
func readInput(raw string, stdin io.Reader) ([]byte, error) {
	kind, target, err := classifyInput(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case inputStdin:
		if stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		return io.ReadAll(stdin)
	case inputRemote:
		text, err := convert.HTTPStorage{MaxBytes: maxRemoteBytes}.Read(context.Background(), target)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	default:
		return os.ReadFile(target)
	}
}

// readInputs reads and concatenates args in order. No args reads stdin.
func readInputs(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var out []byte
	for _, raw := range args {
		data, err := readInput(raw, stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}

// localPath returns the filesystem path behind raw, or false for stdin and
// remote inputs.
func localPath(raw string) (string, bool) {
	kind, target, err := classifyInput(raw)
	if err != nil || kind != inputFile {
		return "", false
	}
	return target, true
}

// openOutput returns stdout for "" and "-", otherwise a created file with
// its parent directories.
func openOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path = strings.TrimSpace(path); path == "" || path == "-" {
		return stdout, nil, nil
	}
	full := expandPath(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(full)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// expandPath resolves a leading ~ and makes path absolute when possible.
func expandPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + rest
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
