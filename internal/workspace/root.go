package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerFiles identify a project root. The nearest directory containing any
// of them wins.
var MarkerFiles = []string{
	ConfigFileName,
	"go.work",
	"go.mod",
	"package.json",
	"pnpm-workspace.yaml",
	"Cargo.toml",
	"pyproject.toml",
	".git",
}

// FindRoot walks up from dir to the first directory holding a marker file.
// When none is found the absolute form of dir is returned.
func FindRoot(dir string) (string, error) {
	original, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	dir = original

	for {
		if FindMarker(dir) != "" {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return original, nil
		}
		dir = parent
	}
}

func FindMarker(root string) string {
	for _, marker := range MarkerFiles {
		path := filepath.Join(root, marker)
		if _, err := os.Stat(path); err == nil {
			return marker
		}
	}
	return ""
}

func FormatMarkerForDisplay(marker string) string {
	if marker == "" {
		return "working directory"
	}
	if marker == ".git" {
		return "git repository"
	}
	return marker
}
