package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("A=1\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindEnvFiles(t *testing.T) {
	t.Run("default patterns", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root,
			".env",
			".env.local",
			".envload.yaml",
			"apps/web/.env",
			"apps/web/.env.production",
			"apps/web/config.env",
			"node_modules/pkg/.env",
			".git/.env",
		)

		got, err := FindEnvFiles(root, DefaultInclude, DefaultExclude)
		if err != nil {
			t.Fatalf("FindEnvFiles: %v", err)
		}
		want := []string{".env", ".env.local", "apps/web/.env", "apps/web/.env.production"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("custom patterns and exclusions", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "deploy/a.env", "deploy/b.env", "deploy/old/c.env", ".env")

		got, err := FindEnvFiles(root, []string{"deploy/**/*.env"}, []string{"deploy/old/**"})
		if err != nil {
			t.Fatalf("FindEnvFiles: %v", err)
		}
		want := []string{"deploy/a.env", "deploy/b.env"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("overlapping patterns do not duplicate", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, ".env")

		got, err := FindEnvFiles(root, []string{".env", "**/.env"}, nil)
		if err != nil {
			t.Fatalf("FindEnvFiles: %v", err)
		}
		if !reflect.DeepEqual(got, []string{".env"}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("directories are skipped", func(t *testing.T) {
		root := t.TempDir()
		if err := os.MkdirAll(filepath.Join(root, ".env.d"), 0755); err != nil {
			t.Fatal(err)
		}

		got, err := FindEnvFiles(root, DefaultInclude, nil)
		if err != nil {
			t.Fatalf("FindEnvFiles: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})
}
