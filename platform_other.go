//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package main

import "os/exec"

const defaultExecutable = "spotify"

func installRoots() []string {
	return []string{"/usr/local/bin", "/usr/bin"}
}

func volumeRoots() []string {
	return []string{"/"}
}

func detach(cmd *exec.Cmd) {}
