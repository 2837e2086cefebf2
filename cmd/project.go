package cmd

import (
	"fmt"

	"github.com/xmazu/envload/source"
	"github.com/xmazu/envload/internal/workspace"
)

type project struct {
	root   string
	config *workspace.Config
	dir    *source.Dir
}

func openProject(workdir string) (*project, error) {
	if workdir == "" {
		workdir = "."
	}
	root, err := workspace.FindRoot(workdir)
	if err != nil {
		return nil, fmt.Errorf("find project root: %w", err)
	}
	cfg, err := workspace.ReadConfig(root)
	if err != nil {
		return nil, err
	}
	return &project{root: root, config: cfg, dir: source.NewDir(root)}, nil
}

// envFile returns flag when set, otherwise the configured file name.
func (p *project) envFile(flag string) string {
	if flag != "" {
		return flag
	}
	return p.config.EnvFile()
}
