package main

import (
	"fmt"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// Target identifies the player process commands are sent to
type Target struct {
	PID  int
	Name string
}

func (t Target) String() string {
	return fmt.Sprintf("%s (pid %d)", t.Name, t.PID)
}

// Locator finds a running player process in the OS process table
type Locator struct {
	// Processes lists the process table; defaults to ps.Processes
	Processes func() ([]ps.Process, error)
}

// NewLocator returns a Locator backed by the real process table
func NewLocator() *Locator {
	return &Locator{Processes: ps.Processes}
}

// Find returns the first process whose executable name matches name.
// Not finding one is not an error: ok is false and err is nil.
func (l *Locator) Find(name string) (target Target, ok bool, err error) {
	list := l.Processes
	if list == nil {
		list = ps.Processes
	}
	procs, err := list()
	if err != nil {
		return Target{}, false, fmt.Errorf("failed to read process table: %w", err)
	}
	for _, p := range procs {
		if processNameMatches(p.Executable(), name) {
			return Target{PID: p.Pid(), Name: p.Executable()}, true, nil
		}
	}
	return Target{}, false, nil
}

// processNameMatches compares process names the way Windows does:
// case-insensitive, ignoring a trailing ".exe" on either side.
func processNameMatches(executable, name string) bool {
	trim := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.TrimSuffix(s, ".exe")
	}
	return name != "" && trim(executable) == trim(name)
}
