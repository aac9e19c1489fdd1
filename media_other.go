//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package main

import (
	"fmt"
	"runtime"
)

type unsupportedController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(player string) MediaController {
	return unsupportedController{}
}

func (unsupportedController) Control(target Target, cmd Command) error {
	return fmt.Errorf("sending %s is not supported on %s", cmd, runtime.GOOS)
}
