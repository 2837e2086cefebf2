package loader

import (
	"github.com/rs/zerolog/log"
	"github.com/xmazu/envload/envstore"
	"github.com/xmazu/envload/internal/tui"
	"github.com/xmazu/envload/internal/workspace"
	"github.com/xmazu/envload/source"
)

// LoadEnv loads fileName (default ".env") from the project root into the
// process environment, printing status lines to stdout.
func LoadEnv(fileName ...string) {
	name := DefaultFileName
	if len(fileName) > 0 && fileName[0] != "" {
		name = fileName[0]
	}
	ForProject(".", tui.NewConsole(log.Logger)).Load(name)
}

// ForProject returns a Loader reading from the project root found by walking
// up from dir, and writing into the process environment.
func ForProject(dir string, reporter Reporter) *Loader {
	root, err := workspace.FindRoot(dir)
	if err != nil {
		root = dir
	}
	l := New(source.NewDir(root), envstore.OS{}, reporter)
	l.Log = log.Logger
	return l
}
