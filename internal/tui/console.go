package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Console writes colored status lines to Out and sends errors to Log.
type Console struct {
	Out io.Writer
	Log zerolog.Logger
	// Quiet drops success lines; warnings and errors are still written.
	Quiet bool
}

func NewConsole(log zerolog.Logger) *Console {
	return &Console{Out: os.Stdout, Log: log}
}

func (c *Console) Success(msg string) {
	if c.Quiet {
		return
	}
	fmt.Fprintln(c.Out, Success(msg))
}

func (c *Console) Warning(msg string) {
	fmt.Fprintln(c.Out, Warning(msg))
}

func (c *Console) Error(err error) {
	c.Log.Error().Err(err).Msg("could not load environment file")
}
