//go:build linux
// +build linux

package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// PlayerctlController implements MediaController using playerctl for Linux
type PlayerctlController struct {
	player string // MPRIS player name passed to --player
}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(player string) MediaController {
	return &PlayerctlController{player: strings.ToLower(player)}
}

// playerctlArgs builds the playerctl invocation for cmd. Command names match
// playerctl's verbs one to one.
func (p *PlayerctlController) playerctlArgs(cmd Command) []string {
	args := []string{}
	if p.player != "" {
		args = append(args, "--player="+p.player)
	}
	return append(args, cmd.String())
}

func (p *PlayerctlController) Control(target Target, cmd Command) error {
	c := exec.Command("playerctl", p.playerctlArgs(cmd)...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("playerctl %s failed: %s: %w", cmd, msg, err)
		}
		return fmt.Errorf("playerctl %s failed: %w", cmd, err)
	}
	return nil
}
