package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xmazu/envload/envfile"
	"github.com/xmazu/envload/internal/tui"
)

var setCmd = &cobra.Command{
	Use:   "set KEY [VALUE]",
	Short: "Set a variable in the env file",
	Long: `Store KEY in the env file. When VALUE is omitted it is prompted for.
An existing declaration of KEY is rewritten in place; every other line is left
untouched. Values are quoted when needed so they load back unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

var setFile string

// promptValue is replaced in tests.
var promptValue = tui.ValueInput

func init() {
	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "Env file relative to the project root (default: .env)")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if strings.Contains(key, "=") {
		return fmt.Errorf("invalid key %q: use envload set KEY VALUE", key)
	}
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("invalid key %q: surrounding whitespace is not allowed", key)
	}
	if !envfile.ValidKey(key) {
		return fmt.Errorf("invalid key %q: key name must start with a letter", key)
	}

	p, err := openProject(workdir)
	if err != nil {
		return err
	}
	path := p.dir.Path(p.envFile(setFile))

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		value, err = promptValue(fmt.Sprintf("Value for %s", key), singleLine)
		if err != nil {
			return err
		}
	}

	f, err := envfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	verb := "set in"
	if _, exists := f.Get(key); exists {
		verb = "updated in"
	}
	if err := f.Set(key, value); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save env file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s %s\n", tui.Success("✓"), tui.Key(key), verb, f.Path())
	return nil
}

func singleLine(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return errors.New("value must be a single line")
	}
	return nil
}
