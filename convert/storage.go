package convert

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Storage reads and writes Markdown text by path.
type Storage interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, content string) error
}

// FileStorage stores documents on the local filesystem. Relative paths are
// resolved against Root when it is set.
type FileStorage struct {
	Root string
}

func (s FileStorage) resolve(path string) string {
	if s.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}

// Read returns the file content.
func (s FileStorage) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the file content, creating parent directories as needed.
func (s FileStorage) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full := s.resolve(path)
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(full, []byte(content), 0o644)
}

// MemoryStorage keeps documents in memory. It is safe for concurrent use.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMemoryStorage returns a MemoryStorage seeded with files.
func NewMemoryStorage(files map[string]string) *MemoryStorage {
	m := &MemoryStorage{files: make(map[string]string, len(files))}
	for k, v := range files {
		m.files[k] = v
	}
	return m
}

// Read returns the stored content or an error wrapping fs.ErrNotExist.
func (m *MemoryStorage) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("memory storage: %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

// Write stores content under path.
func (m *MemoryStorage) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = make(map[string]string)
	}
	m.files[path] = content
	return nil
}

// Paths returns the stored paths in sorted order.
func (m *MemoryStorage) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.files))
	for k := range m.files {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
