package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xmazu/envload/envfile"
	"github.com/xmazu/envload/loader"
	"github.com/xmazu/envload/source"
	"github.com/xmazu/envload/internal/tui"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the variables an env file would set",
	Long: `Parse the env file and print the variables it would set, without changing
the environment. Skipped lines are reported on stderr.

Formats:
  json   JSON object (default)
  shell  KEY=VALUE pairs on one line
  eval   export KEY="VALUE" lines, for: eval "$(envload print --format eval)"`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

var printFile string
var printFormat string

func init() {
	printCmd.Flags().StringVarP(&printFile, "file", "f", "", "Env file relative to the project root (default: .env)")
	printCmd.Flags().StringVar(&printFormat, "format", "json", "Output format: json, shell or eval")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	switch printFormat {
	case "json", "shell", "eval":
	default:
		return fmt.Errorf("unknown format %q (want json, shell or eval)", printFormat)
	}

	p, err := openProject(workdir)
	if err != nil {
		return err
	}
	name := p.envFile(printFile)
	content, err := p.dir.Read(name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return fmt.Errorf("no %s file found in %s", name, p.root)
		}
		return err
	}

	warn := &tui.Console{Out: cmd.ErrOrStderr(), Log: log.Logger}
	if len(content) == 0 {
		warn.Warning(loader.MsgFileEmpty)
	}
	res := envfile.Parse(content)
	for _, d := range res.Diagnostics {
		warn.Warning(d.Error())
	}

	out := cmd.OutOrStdout()
	switch printFormat {
	case "shell":
		values := res.Map()
		var b strings.Builder
		for i, k := range res.UniqueKeys() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(shellEscape(k))
			b.WriteString("=")
			b.WriteString(shellEscape(values[k]))
		}
		fmt.Fprintln(out, b.String())
		return nil
	case "eval":
		values := res.Map()
		for _, k := range res.UniqueKeys() {
			fmt.Fprintln(out, "export "+shellEscape(k)+"="+evalQuoted(values[k]))
		}
		return nil
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res.Map())
	}
}

func shellEscape(s string) string {
	if strings.ContainsAny(s, " \t\n\"'$;&|<>()*?\\`") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

func evalQuoted(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}
