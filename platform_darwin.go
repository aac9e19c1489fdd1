//go:build darwin
// +build darwin

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

const defaultExecutable = "Spotify"

func installRoots() []string {
	roots := []string{"/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Applications"))
	}
	return roots
}

// volumeRoots returns the boot volume plus everything mounted under /Volumes
func volumeRoots() []string {
	roots := []string{"/"}
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return roots
	}
	for _, e := range entries {
		if e.IsDir() {
			roots = append(roots, filepath.Join("/Volumes", e.Name()))
		}
	}
	return roots
}

func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
