package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xmazu/envload/internal/tui"
	"github.com/xmazu/envload/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .envload.yaml project config",
	Long: `Write .envload.yaml to the project root with the default settings:

  file: .env            # env file loaded by run, print, set, watch
  check:
    include: [...]      # doublestar patterns checked by envload check
    exclude: [...]

An existing config is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initFile string

func init() {
	initCmd.Flags().StringVarP(&initFile, "file", "f", ".env", "Default env file name")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p, err := openProject(workdir)
	if err != nil {
		return err
	}
	path := filepath.Join(p.root, workspace.ConfigFileName)
	if workspace.ConfigExists(p.root) {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := &workspace.Config{
		File:  initFile,
		Check: workspace.CheckConfig{Include: workspace.DefaultInclude},
	}
	if err := workspace.WriteConfig(p.root, cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %s\n", tui.Success("✓"), path)
	return nil
}
