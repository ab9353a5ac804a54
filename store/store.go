// Package store writes rendered recipes and their images to the output
// directory and lists what has been saved there.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Store manages one output directory of markdown documents and images.
type Store struct {
	dir  string
	http *resty.Client
}

// Entry is one saved recipe document.
type Entry struct {
	Title string
	Path  string
}

// New returns a store rooted at dir. The directory is created on the
// first write, not here, so read-only commands never create it.
func New(dir string) *Store {
	return &Store{
		dir:  dir,
		http: resty.New(),
	}
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// HTTPClient exposes the image-download client so tests can install a mock
// transport.
func (s *Store) HTTPClient() *resty.Client {
	return s.http
}

// SaveMarkdown writes content to <dir>/<name>.md, overwriting any previous
// version of the same document.
func (s *Store) SaveMarkdown(name, content string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown file: %w", err)
	}
	return path, nil
}

// SaveImage downloads imageURL into <dir>/<filename>. A failed download
// leaves no partial file behind.
func (s *Store) SaveImage(ctx context.Context, imageURL, filename string) (string, error) {
	if imageURL == "" {
		return "", fmt.Errorf("recipe has no image")
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}

	res, err := s.http.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("download image: status %d", res.StatusCode())
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, res.Body(), 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return path, nil
}

// List returns the saved documents sorted by title. Titles come from the
// front-matter header, falling back to the filename.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read recipe directory: %w", err)
	}

	var entries []Entry
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		path := filepath.Join(s.dir, file.Name())
		entries = append(entries, Entry{
			Title: documentTitle(path, file.Name()),
			Path:  path,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Title < entries[j].Title })
	return entries, nil
}

// Read returns the content of a saved document.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read recipe file: %w", err)
	}
	return string(data), nil
}

func (s *Store) ensureDir() error {
	if s.dir == "" || s.dir == "." {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", s.dir, err)
	}
	return nil
}

// documentTitle extracts the "title:" front-matter field, or falls back to
// a heading line, or the bare filename.
func documentTitle(path, filename string) string {
	fallback := strings.TrimSuffix(filename, ".md")

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if title, ok := strings.CutPrefix(line, "title:"); ok {
			return strings.TrimSpace(title)
		}
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return fallback
}
