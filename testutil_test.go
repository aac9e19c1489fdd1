package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"
	"github.com/spf13/afero"
)

// fakeProcess implements ps.Process
type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.exe }

// processTable returns a ps.Processes replacement that counts its calls
func processTable(calls *int, procs ...fakeProcess) func() ([]ps.Process, error) {
	return func() ([]ps.Process, error) {
		*calls++
		out := make([]ps.Process, len(procs))
		for i, p := range procs {
			out[i] = p
		}
		return out, nil
	}
}

type sentCommand struct {
	target Target
	cmd    Command
}

// fakeController records every command it is asked to deliver
type fakeController struct {
	mu   sync.Mutex
	sent []sentCommand
	err  error
}

func (f *fakeController) Control(target Target, cmd Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentCommand{target: target, cmd: cmd})
	return f.err
}

func (f *fakeController) commands() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Command, len(f.sent))
	for i, s := range f.sent {
		out[i] = s.cmd
	}
	return out
}

// deniedFs fails to open the listed directories with a permission error
type deniedFs struct {
	afero.Fs
	denied map[string]bool
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if d.denied[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

// countingFs counts directory opens
type countingFs struct {
	afero.Fs
	mu    sync.Mutex
	opens int
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.mu.Lock()
	c.opens++
	c.mu.Unlock()
	return c.Fs.Open(name)
}

// memTree builds an in-memory filesystem holding the given directories and files
func memTree(t *testing.T, dirs []string, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := fs.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	for _, f := range files {
		if err := fs.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(f), err)
		}
		if err := afero.WriteFile(fs, f, []byte("binary"), 0o755); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return fs
}

// launchRecorder stands in for starting and waiting on a real process
type launchRecorder struct {
	started []string
	slept   []time.Duration
	err     error
}

func (r *launchRecorder) start(path string) (Target, error) {
	r.started = append(r.started, path)
	if r.err != nil {
		return Target{}, r.err
	}
	return Target{PID: 4242, Name: filepath.Base(path)}, nil
}

func (r *launchRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.slept = append(r.slept, d)
	return ctx.Err()
}
