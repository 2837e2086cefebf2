package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

func TestYAMLFile(t *testing.T) {
	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "doc.yaml")
		f := NewYAMLFile(path)

		if err := f.SaveWithPerm(&doc{Name: "a", Items: []string{"x"}}, 0644); err != nil {
			t.Fatalf("SaveWithPerm() error = %v", err)
		}
		if !f.Exists() {
			t.Fatal("Exists() = false after save")
		}

		var got doc
		if err := f.Load(&got); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Name != "a" || len(got.Items) != 1 || got.Items[0] != "x" {
			t.Errorf("Load() = %+v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		f := NewYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))

		var got doc
		if err := f.Load(&got); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
		}
		if err := f.LoadOrCreate(&got); err != nil {
			t.Errorf("LoadOrCreate() error = %v", err)
		}
	})

	t.Run("empty file decodes to zero value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}

		var got doc
		if err := NewYAMLFile(path).Load(&got); err != nil {
			t.Errorf("Load() error = %v", err)
		}
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "typo.yaml")
		if err := os.WriteFile(path, []byte("nmae: a\n"), 0644); err != nil {
			t.Fatal(err)
		}

		var got doc
		if err := NewYAMLFile(path).Load(&got); err == nil {
			t.Error("Load() should reject unknown field")
		}
	})
}
