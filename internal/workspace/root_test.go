package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	t.Run("finds go module root", func(t *testing.T) {
		tmp := t.TempDir()
		sub := filepath.Join(tmp, "internal", "pkg")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module x\n"), 0644); err != nil {
			t.Fatal(err)
		}

		root, err := FindRoot(sub)
		if err != nil {
			t.Fatalf("FindRoot: %v", err)
		}
		if root != tmp {
			t.Errorf("got %q, want %q", root, tmp)
		}
	})

	t.Run("finds git root", func(t *testing.T) {
		tmp := t.TempDir()
		sub := filepath.Join(tmp, "src")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(tmp, ".git"), 0755); err != nil {
			t.Fatal(err)
		}

		root, err := FindRoot(sub)
		if err != nil {
			t.Fatalf("FindRoot: %v", err)
		}
		if root != tmp {
			t.Errorf("got %q, want %q", root, tmp)
		}
	})

	t.Run("returns current dir when no markers", func(t *testing.T) {
		tmp := t.TempDir()

		root, err := FindRoot(tmp)
		if err != nil {
			t.Fatalf("FindRoot: %v", err)
		}
		if root != tmp {
			t.Errorf("got %q, want %q", root, tmp)
		}
	})

	t.Run("nearest marker wins", func(t *testing.T) {
		tmp := t.TempDir()
		nested := filepath.Join(tmp, "services", "api")
		sub := filepath.Join(nested, "cmd")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(tmp, ".git"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(nested, "package.json"), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}

		root, err := FindRoot(sub)
		if err != nil {
			t.Fatalf("FindRoot: %v", err)
		}
		if root != nested {
			t.Errorf("got %q, want %q", root, nested)
		}
	})
}

func TestFindMarker(t *testing.T) {
	tmp := t.TempDir()
	if got := FindMarker(tmp); got != "" {
		t.Errorf("FindMarker() = %q, want empty", got)
	}
	if err := os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := FindMarker(tmp); got != ConfigFileName {
		t.Errorf("FindMarker() = %q, want %q", got, ConfigFileName)
	}
}

func TestFormatMarkerForDisplay(t *testing.T) {
	for marker, want := range map[string]string{
		"":       "working directory",
		".git":   "git repository",
		"go.mod": "go.mod",
	} {
		if got := FormatMarkerForDisplay(marker); got != want {
			t.Errorf("FormatMarkerForDisplay(%q) = %q, want %q", marker, got, want)
		}
	}
}
