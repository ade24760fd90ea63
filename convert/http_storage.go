package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrReadOnly is returned by storages that cannot write.
var ErrReadOnly = errors.New("storage is read-only")

// DefaultMaxHTTPBytes caps HTTPStorage response bodies when MaxBytes is zero.
const DefaultMaxHTTPBytes = 8 << 20

// HTTPStorage reads documents over HTTP(S). Paths are resolved against
// BaseURL; absolute http(s) URLs are used as given. Writes fail with
// ErrReadOnly.
type HTTPStorage struct {
	BaseURL  string
	Client   *http.Client
	MaxBytes int64
}

func (s HTTPStorage) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("http storage: parse %q: %w", path, err)
	}
	if s.BaseURL != "" {
		base, err := url.Parse(s.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("http storage: parse base %q: %w", s.BaseURL, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return nil, fmt.Errorf("http storage: unsupported scheme %q", ref.Scheme)
	}
	return ref, nil
}

// Read fetches path and returns the response body.
func (s HTTPStorage) Read(ctx context.Context, path string) (string, error) {
	target, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", fmt.Errorf("http storage: build request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http storage: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("http storage: %s: status %s", target, resp.Status)
	}
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxHTTPBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", fmt.Errorf("http storage: read body: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("http storage: %s: body exceeds %d bytes", target, limit)
	}
	return string(data), nil
}

// Write always fails.
func (s HTTPStorage) Write(ctx context.Context, path, content string) error {
	return fmt.Errorf("http storage: %s: %w", path, ErrReadOnly)
}
