package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xmazu/envload/envfile"
	"github.com/xmazu/envload/internal/tui"
)

var unsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a variable from the env file",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnset,
}

var unsetFile string

func init() {
	unsetCmd.Flags().StringVarP(&unsetFile, "file", "f", "", "Env file relative to the project root (default: .env)")
	rootCmd.AddCommand(unsetCmd)
}

func runUnset(cmd *cobra.Command, args []string) error {
	key := args[0]

	p, err := openProject(workdir)
	if err != nil {
		return err
	}
	path := p.dir.Path(p.envFile(unsetFile))

	f, err := envfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	if !f.Delete(key) {
		return fmt.Errorf("key %q not found in %s", key, path)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save env file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s removed from %s\n", tui.Success("✓"), tui.Key(key), path)
	return nil
}
