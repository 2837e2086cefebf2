// Package source provides file acquisition for the loader: resolving a file
// name against a project root and reading its content.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("file not found")

type Source interface {
	// Read returns the full content of name. It returns an error wrapping
	// ErrNotFound when the file does not exist.
	Read(name string) (string, error)
}

// Dir reads files relative to Root. Absolute names are used as-is.
type Dir struct {
	Root string
}

func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

func (d *Dir) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Root, name)
}

func (d *Dir) Read(name string) (string, error) {
	path := d.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Map serves content from memory, keyed by name.
type Map map[string]string

func (m Map) Read(name string) (string, error) {
	content, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return content, nil
}
