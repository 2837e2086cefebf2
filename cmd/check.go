package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xmazu/envload/loader"
	"github.com/xmazu/envload/internal/tui"
	"github.com/xmazu/envload/internal/workspace"
)

var checkCmd = &cobra.Command{
	Use:   "check [PATTERN...]",
	Short: "Validate env files without loading them",
	Long: `Validate env files in the project and report every line that would be skipped.
Patterns are doublestar globs relative to the project root. Without patterns the
check.include patterns from .envload.yaml are used (default: **/.env and **/.env.*).
Nothing is written to the environment.

Examples:
  envload check                       # every .env file in the project
  envload check .env 'deploy/*.env'   # specific files
  envload check --json                # machine readable
  envload check --strict              # non-zero exit on any problem`,
	RunE: runCheck,
}

var checkJSON bool
var checkStrict bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output JSON")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Fail when any file has problems")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := openProject(workdir)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = p.config.Include()
	}
	files, err := workspace.FindEnvFiles(p.root, patterns, p.config.Exclude())
	if err != nil {
		return err
	}

	reports := make([]loader.Report, 0, len(files))
	problems := 0
	for _, f := range files {
		r, err := loader.Inspect(p.dir, f)
		if err != nil {
			return err
		}
		problems += len(r.Diagnostics)
		reports = append(reports, r)
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(map[string]any{"root": p.root, "files": reports}); err != nil {
			return err
		}
	} else {
		marker := workspace.FormatMarkerForDisplay(workspace.FindMarker(p.root))
		fmt.Fprintln(out, tui.Muted(fmt.Sprintf("%s (%s)", p.root, marker)))
		printReports(out, reports)
	}

	if checkStrict && problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

func printReports(w io.Writer, reports []loader.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, tui.Warning("No env files found."))
		return
	}
	for _, r := range reports {
		for _, d := range r.Diagnostics {
			fmt.Fprintf(w, "%s: %s\n", tui.Label(r.Path), tui.Warning(d.Message))
		}
		switch {
		case r.Empty:
			fmt.Fprintf(w, "%s %s %s\n", tui.Warning("!"), tui.Label(r.Path), tui.Muted("empty"))
		case r.HasWarnings():
			fmt.Fprintf(w, "%s %s %s\n", tui.Warning("!"), tui.Label(r.Path),
				tui.Muted(fmt.Sprintf("%d keys, %d warnings", len(r.Keys), len(r.Diagnostics))))
		default:
			fmt.Fprintf(w, "%s %s %s\n", tui.Success("✓"), tui.Label(r.Path),
				tui.Muted(fmt.Sprintf("%d keys", len(r.Keys))))
		}
	}
}
