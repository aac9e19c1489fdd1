package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	ps "github.com/mitchellh/go-ps"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// environment is everything the CLI touches outside the process
type environment struct {
	stdout io.Writer
	stderr io.Writer

	fs         afero.Fs
	processes  func() ([]ps.Process, error)
	controller func(player string) MediaController
	start      func(path string) (Target, error)
	sleep      func(ctx context.Context, d time.Duration) error
	roots      func(extra []string) []string
	runProgram func(m tea.Model, ctx context.Context) error
}

func defaultEnvironment() *environment {
	return &environment{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		fs:         afero.NewOsFs(),
		processes:  ps.Processes,
		controller: NewMediaController,
		start:      startDetached,
		sleep:      sleepContext,
		roots:      searchRoots,
		runProgram: func(m tea.Model, ctx context.Context) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}

// exitError carries a non-zero exit code out of Execute
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// newRemote wires locator, launcher and dispatcher for cfg
func (e *environment) newRemote(cfg Config, console *Console, log *logrus.Logger) *Remote {
	r := &Remote{
		Console:     console,
		Locator:     &Locator{Processes: e.processes},
		Dispatcher:  &Dispatcher{Controller: e.controller(cfg.Player.ProcessName), Log: log},
		ProcessName: cfg.Player.ProcessName,
	}
	if cfg.Launch.Enabled {
		r.Launcher = &Launcher{
			Fs:         e.fs,
			Executable: cfg.Player.Executable,
			Roots:      e.roots(cfg.Launch.SearchRoots),
			Warmup:     cfg.Launch.Warmup,
			Start:      e.start,
			Sleep:      e.sleep,
			OnScan: func(dir string) {
				log.WithField("dir", dir).Trace("scanning")
			},
			Log: log,
		}
	}
	return r
}

func newRootCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spotifyctl [command]",
		Short:         "Remote control for the Spotify desktop player",
		Version:       appVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.BoolP("interactive", "i", false, "Open an interactive remote")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/spotifyctl/config.yaml)")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	flags.Bool("no-launch", false, "Never start a new player instance")
	flags.Duration("warmup", defaultWarmup, "Wait after starting the player before sending")
	flags.StringP("color", "c", defaultColor, "Highlight color (ANSI code or hex)")

	usage := func(c *cobra.Command) {
		color, _ := c.Flags().GetString("color")
		if !isValidColor(color) {
			color = defaultColor
		}
		showUsage(NewConsole(env.stdout), color, c.Flags().FlagUsages())
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) { usage(c) })
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		NewConsole(env.stdout).WriteError(err)
		usage(c)
		return nil
	})
	cmd.SetVersionTemplate("Spotify Control v{{.Version}}\n")

	cmd.RunE = func(c *cobra.Command, args []string) error {
		v := newViper()
		cfg := loadConfig(v, c.Flags(), env.stderr)
		interactive, _ := c.Flags().GetBool("interactive")

		// Exactly one command token, or none with --interactive
		want := 1
		if interactive {
			want = 0
		}
		if len(args) != want {
			showUsage(NewConsole(env.stdout), cfg.UI.Color, c.Flags().FlagUsages())
			return nil
		}

		log := newLogger(env.stderr, cfg.Log.Level)
		console := NewConsole(env.stdout)
		remote := env.newRemote(cfg, console, log)

		var err error
		if interactive {
			err = runInteractive(c.Context(), env, remote, v, cfg)
		} else {
			err = remote.Run(c.Context(), args[0])
		}
		if err != nil && cfg.StrictExit {
			return &exitError{code: 1, err: err}
		}
		return nil
	}
	return cmd
}

// runInteractive acquires the player once, then hands over to the TUI
func runInteractive(ctx context.Context, env *environment, remote *Remote, v *viper.Viper, cfg Config) error {
	target, err := remote.Acquire(ctx)
	if err != nil {
		remote.Console.WriteError(err)
		return err
	}

	sc := &SafeConfig{}
	sc.Set(cfg)
	changed := make(chan struct{}, 1)
	watchConfig(v, sc, changed)

	m := newModel(remote.Dispatcher, target, sc, changed)
	if err := env.runProgram(m, ctx); err != nil {
		return fmt.Errorf("interactive remote failed: %w", err)
	}
	return nil
}
