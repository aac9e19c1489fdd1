package main

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Launcher finds the player executable on disk and starts a new instance.
type Launcher struct {
	Fs         afero.Fs
	Executable string        // file name to look for, e.g. "spotify.exe"
	Roots      []string      // seed directories, scanned in order
	Warmup     time.Duration // wait after starting so the main window exists

	// Start runs the executable; defaults to startDetached
	Start func(path string) (Target, error)
	// Sleep waits out the warm-up; defaults to sleepContext
	Sleep func(ctx context.Context, d time.Duration) error
	// OnScan, if set, is called for every directory taken off the frontier
	OnScan func(dir string)

	Log logrus.FieldLogger
}

// searchRoots builds the frontier seed: install dirs, extra dirs, then volumes
func searchRoots(extra []string) []string {
	roots := append([]string{}, installRoots()...)
	roots = append(roots, extra...)
	return append(roots, volumeRoots()...)
}

// FindExecutable runs the breadth-first frontier search. Directories that
// cannot be read are skipped and the search carries on with the next entry.
func (l *Launcher) FindExecutable() (string, bool) {
	frontier := NewFrontier(l.Roots...)
	for {
		dir, ok := frontier.Next()
		if !ok {
			return "", false
		}
		if l.OnScan != nil {
			l.OnScan(dir)
		}

		entries, err := afero.ReadDir(l.Fs, dir)
		if err != nil {
			l.logger().WithError(err).WithField("dir", dir).Debug("skipping unreadable directory")
			continue
		}

		var subdirs []string
		for _, e := range entries {
			if e.IsDir() {
				subdirs = append(subdirs, filepath.Join(dir, e.Name()))
				continue
			}
			if strings.EqualFold(e.Name(), l.Executable) {
				return filepath.Join(dir, e.Name()), true
			}
		}
		frontier.Append(subdirs...)
	}
}

// Launch starts a new player instance. ok is false when no executable was
// found anywhere on the frontier.
func (l *Launcher) Launch(ctx context.Context) (Target, bool, error) {
	path, found := l.FindExecutable()
	if !found {
		return Target{}, false, nil
	}
	l.logger().WithField("path", path).Info("starting player")

	start := l.Start
	if start == nil {
		start = startDetached
	}
	target, err := start(path)
	if err != nil {
		return Target{}, false, fmt.Errorf("failed to start %s: %w", path, err)
	}

	sleep := l.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	if err := sleep(ctx, l.Warmup); err != nil {
		return Target{}, false, fmt.Errorf("interrupted while waiting for player to start: %w", err)
	}
	return target, true, nil
}

func (l *Launcher) logger() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}

// startDetached starts path without waiting for it and lets it outlive us
func startDetached(path string) (Target, error) {
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return Target{}, err
	}
	target := Target{PID: cmd.Process.Pid, Name: filepath.Base(path)}
	_ = cmd.Process.Release()
	return target, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
