//go:build darwin
// +build darwin

package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// AppleScriptController implements MediaController using AppleScript for macOS
type AppleScriptController struct {
	app string // application name as AppleScript knows it
}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(player string) MediaController {
	return &AppleScriptController{app: appName(player)}
}

// appName turns a process name like "spotify" into "Spotify"
func appName(player string) string {
	if player == "" {
		return "Spotify"
	}
	return strings.ToUpper(player[:1]) + player[1:]
}

func (a *AppleScriptController) runAppleScript(script string) (string, error) {
	cmd := exec.Command("osascript", "-e", script)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// script returns the AppleScript for cmd. Spotify has no stop verb, pause is
// the closest.
func (a *AppleScriptController) script(cmd Command) (string, error) {
	var verb string
	switch cmd {
	case PlayPause:
		verb = "playpause"
	case Previous:
		verb = "previous track"
	case Next:
		verb = "next track"
	case Stop:
		verb = "pause"
	default:
		return "", fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	return fmt.Sprintf(`tell application "%s" to %s`, a.app, verb), nil
}

func (a *AppleScriptController) Control(target Target, cmd Command) error {
	script, err := a.script(cmd)
	if err != nil {
		return err
	}
	if _, err := a.runAppleScript(script); err != nil {
		return fmt.Errorf("osascript %s failed: %w", cmd, err)
	}
	return nil
}
