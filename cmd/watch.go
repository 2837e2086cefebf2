package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xmazu/envload/envstore"
	"github.com/xmazu/envload/loader"
	"github.com/xmazu/envload/internal/tui"
	"github.com/xmazu/envload/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate the env file whenever it changes",
	Long: `Validate the env file, then validate it again after every change until
interrupted. Warnings match a normal load, but nothing is written to the
environment, so a clean pass reports the file as checked.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var watchFile string
var watchDebounce time.Duration

func init() {
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "Env file relative to the project root (default: .env)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Wait this long after the last change before validating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchEnv(ctx, cmd, watchDebounce)
}

func watchEnv(ctx context.Context, cmd *cobra.Command, debounce time.Duration) error {
	p, err := openProject(workdir)
	if err != nil {
		return err
	}
	name := p.envFile(watchFile)
	out := cmd.OutOrStdout()

	validate := func() {
		rep := checkReporter{Console: &tui.Console{Out: out, Log: log.Logger}, name: name}
		l := loader.New(p.dir, envstore.Map{}, rep)
		l.Log = log.Logger
		l.Load(name)
	}

	w, err := watch.New(p.dir.Path(name), debounce)
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer w.Close()

	validate()
	fmt.Fprintln(out, tui.Muted(fmt.Sprintf("watching %s", w.Path())))

	err = w.Run(ctx, func() {
		fmt.Fprintln(out, tui.Muted(fmt.Sprintf("%s changed", name)))
		validate()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// checkReporter rewords load summaries for a dry run: the pairs go into a
// throwaway store, so the file is checked rather than loaded.
type checkReporter struct {
	*tui.Console
	name string
}

func (r checkReporter) Success(msg string) {
	if msg == loader.MsgLoadedWithWarn {
		r.Console.Success(r.name + " checked - some warnings present")
		return
	}
	r.Console.Success(r.name + " checked")
}
