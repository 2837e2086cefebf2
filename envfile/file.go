package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// File is an env file kept as raw lines so that edits leave every line
// other than the one being set untouched.
type File struct {
	path  string
	lines []string
}

func New(path string) *File {
	return &File{path: path}
}

// Load reads path. A missing file yields an empty document.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(path), nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	f := New(path)
	content := strings.TrimSuffix(string(data), "\n")
	if content != "" {
		f.lines = strings.Split(content, "\n")
	}
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) String() string {
	if len(f.lines) == 0 {
		return ""
	}
	return strings.Join(f.lines, "\n") + "\n"
}

func (f *File) Result() Result {
	return Parse(f.String())
}

// Get returns the value the loader would apply for key.
func (f *File) Get(key string) (string, bool) {
	v, ok := f.Result().Map()[key]
	return v, ok
}

// Set rewrites the last line declaring key, or appends a new line.
func (f *File) Set(key, value string) error {
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("invalid key %q: surrounding whitespace is not allowed", key)
	}
	if !ValidKey(key) {
		return fmt.Errorf("invalid key %q: key name must start with a letter", key)
	}
	if value == "" {
		return fmt.Errorf("missing value for %s", key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("value for %s must be a single line", key)
	}

	line := key + "=" + quote(value)
	if idx := f.lastIndex(key); idx >= 0 {
		f.lines[idx] = line
		return nil
	}
	f.lines = append(f.lines, line)
	return nil
}

// Delete removes every line declaring key.
func (f *File) Delete(key string) bool {
	kept := f.lines[:0]
	deleted := false
	for _, l := range f.lines {
		if len(l) > 0 && splitLine(l).key == key {
			deleted = true
			continue
		}
		kept = append(kept, l)
	}
	f.lines = kept
	return deleted
}

func (f *File) Save() error {
	if err := os.WriteFile(f.path, []byte(f.String()), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *File) lastIndex(key string) int {
	for i := len(f.lines) - 1; i >= 0; i-- {
		if len(f.lines[i]) > 0 && splitLine(f.lines[i]).key == key {
			return i
		}
	}
	return -1
}

// quote wraps values whose surrounding whitespace or quotes would otherwise
// be lost on the next parse.
func quote(value string) string {
	if strings.TrimSpace(value) != value || unquote(value) != value {
		if strings.HasPrefix(value, `"`) || strings.HasSuffix(value, `"`) {
			return "'" + value + "'"
		}
		return `"` + value + `"`
	}
	return value
}
