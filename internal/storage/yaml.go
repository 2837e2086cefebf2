package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLFile is a YAML document on disk. Decoding is strict: unknown fields
// are rejected.
type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (y *YAMLFile) Path() string {
	return y.path
}

func (y *YAMLFile) Exists() bool {
	_, err := os.Stat(y.path)
	return err == nil
}

// Load decodes the file into dest. A missing file is an error wrapping
// fs.ErrNotExist.
func (y *YAMLFile) Load(dest any) error {
	data, err := os.ReadFile(y.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s: %w", y.path, fs.ErrNotExist)
		}
		return fmt.Errorf("read file: %w", err)
	}
	return decode(data, dest)
}

// LoadOrCreate is Load, except that a missing file leaves dest untouched.
func (y *YAMLFile) LoadOrCreate(dest any) error {
	if err := y.Load(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (y *YAMLFile) SaveWithPerm(data any, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(y.path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := os.WriteFile(y.path, out, perm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func decode(data []byte, dest any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
