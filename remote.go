package main

import (
	"context"
	"errors"
)

// playerDisplayName is how the player is named in user-facing messages
const playerDisplayName = "Spotify"

var errNotFound = errors.New("unable to find or create a new instance of " + playerDisplayName)

type playerFinder interface {
	Find(name string) (Target, bool, error)
}

type playerLauncher interface {
	Launch(ctx context.Context) (Target, bool, error)
}

// Remote runs one locate-or-launch, then dispatch, invocation
type Remote struct {
	Console     *Console
	Locator     playerFinder
	Launcher    playerLauncher // nil disables the launch fallback
	Dispatcher  *Dispatcher
	ProcessName string
}

// Acquire returns the running player, starting a new instance if none runs.
func (r *Remote) Acquire(ctx context.Context) (Target, error) {
	target, ok, err := r.Locator.Find(r.ProcessName)
	if err != nil {
		return Target{}, err
	}
	if ok {
		return target, nil
	}

	if r.Launcher != nil {
		r.Console.Write(
			Text(playerDisplayName+" process not found.\n"),
			Text("Looking for executable to start new instance..\n"),
		)
		target, ok, err = r.Launcher.Launch(ctx)
		if err != nil {
			return Target{}, err
		}
		if ok {
			return target, nil
		}
	}
	return Target{}, errNotFound
}

// Run acquires the player and sends token to it. Each phase stops at its
// first fatal error, which is printed to the console and returned.
func (r *Remote) Run(ctx context.Context, token string) error {
	target, err := r.Acquire(ctx)
	if err != nil {
		r.Console.WriteError(err)
		return err
	}

	if err := r.Dispatcher.Dispatch(target, token); err != nil {
		r.Console.WriteError(err)
		return err
	}
	return nil
}
