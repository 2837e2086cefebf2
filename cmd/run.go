package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xmazu/envload/loader"
	"github.com/xmazu/envload/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run -- COMMAND [ARGS...]",
	Short: "Load the env file into the environment and run a command",
	Long: `Load the env file into this process's environment, then run COMMAND with it.
Variables from the file override variables already set; later lines override
earlier ones. A missing or partly invalid file only produces warnings: the
command always runs. The command's exit code is returned.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

var runFile string
var runQuiet bool

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Env file relative to the project root (default: .env)")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Suppress the success message")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command specified. Use: envload run -- your-command")
	}

	p, err := openProject(workdir)
	if err != nil {
		return err
	}

	start := workdir
	if start == "" {
		start = "."
	}
	console := &tui.Console{Out: cmd.ErrOrStderr(), Log: log.Logger, Quiet: runQuiet}
	loader.ForProject(start, console).Load(p.envFile(runFile))

	child := exec.Command(args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exit(exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("run %s: %w", args[0], err)
	}
	return nil
}
