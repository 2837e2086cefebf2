package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "envload",
	Short:         "Load and validate .env files",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `envload - a small, strict loader for KEY=VALUE environment files.

FORMAT:

  KEY=VALUE
  KEY2='quoted value'
  KEY3="double quoted"

  - Keys must start with a letter (a-z, A-Z).
  - Whitespace around keys and values is trimmed; one pair of matching quotes is stripped.
  - Blank lines are ignored. There is no comment syntax.
  - Malformed lines are reported and skipped; the rest of the file still loads.

EXAMPLES:

  envload check                     # validate every .env file in the project
  envload print --format eval       # print export statements
  envload run -- go run ./cmd/api   # load .env, then run a command
  envload set DATABASE_URL          # prompt for a value and store it

The env file is resolved against the project root (the nearest directory with
go.mod, package.json, .git or .envload.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
}

var (
	verbose bool
	workdir string
)

// exit is replaced in tests.
var exit = os.Exit

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workdir, "dir", "C", "", "Start the project root search from this directory (default: current)")
	rootCmd.SetVersionTemplate("envload version {{.Version}}\n")
}

func setupLogging(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}
