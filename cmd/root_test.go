package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestRootCommand(t *testing.T) {
	t.Run("root command has correct metadata", func(t *testing.T) {
		if rootCmd.Use != "envload" {
			t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "envload")
		}
		if rootCmd.Long == "" {
			t.Error("rootCmd.Long should not be empty")
		}
	})

	t.Run("root command has subcommands", func(t *testing.T) {
		commands := []string{"check", "init", "mcp", "print", "run", "set", "unset", "watch"}
		for _, cmdName := range commands {
			found := false
			for _, sub := range rootCmd.Commands() {
				if sub.Name() == cmdName {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("subcommand %q not found", cmdName)
			}
		}
	})

	t.Run("long description documents the format", func(t *testing.T) {
		for _, str := range []string{"KEY=VALUE", "start with a letter", "check", "run", "set"} {
			if !strings.Contains(rootCmd.Long, str) {
				t.Errorf("rootCmd.Long should contain %q", str)
			}
		}
	})

	t.Run("version", func(t *testing.T) {
		old := rootCmd.Version
		defer SetVersion(old)

		SetVersion("1.2.3")
		if rootCmd.Version != "1.2.3" {
			t.Errorf("Version = %q", rootCmd.Version)
		}
	})
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	setupLogging(&buf, true)
	log.Debug().Msg("debug visible")
	if !strings.Contains(buf.String(), "debug visible") {
		t.Errorf("debug message missing: %q", buf.String())
	}

	buf.Reset()
	setupLogging(&buf, false)
	log.Debug().Msg("debug hidden")
	if strings.Contains(buf.String(), "debug hidden") {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
}

func TestExecute(t *testing.T) {
	t.Run("exits with status 1 on error", func(t *testing.T) {
		oldExit := exit
		defer func() { exit = oldExit }()
		code := -1
		exit = func(c int) { code = c }

		rootCmd.SetArgs([]string{"no-such-command"})
		defer rootCmd.SetArgs(nil)
		Execute()

		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	})
}
