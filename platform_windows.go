//go:build windows
// +build windows

package main

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

const defaultExecutable = "spotify.exe"

// installRoots returns Program Files and Program Files (x86)
func installRoots() []string {
	var roots []string
	for _, id := range []*windows.KNOWNFOLDERID{
		windows.FOLDERID_ProgramFiles,
		windows.FOLDERID_ProgramFilesX86,
	} {
		if path, err := windows.KnownFolderPath(id, 0); err == nil {
			roots = append(roots, path)
		}
	}
	return roots
}

// volumeRoots returns the root of every logical drive that is ready to be read
func volumeRoots() []string {
	n, err := windows.GetLogicalDriveStrings(0, nil)
	if err != nil || n == 0 {
		return nil
	}
	buf := make([]uint16, n)
	n, err = windows.GetLogicalDriveStrings(n, &buf[0])
	if err != nil {
		return nil
	}

	var roots []string
	for _, drive := range splitDriveStrings(buf[:n]) {
		p, err := windows.UTF16PtrFromString(drive)
		if err != nil {
			continue
		}
		switch windows.GetDriveType(p) {
		case windows.DRIVE_UNKNOWN, windows.DRIVE_NO_ROOT_DIR:
			continue
		}
		// Empty card readers and optical drives fail here
		if _, err := os.Stat(drive); err != nil {
			continue
		}
		roots = append(roots, drive)
	}
	return roots
}

// splitDriveStrings splits the NUL separated list GetLogicalDriveStrings fills in
func splitDriveStrings(buf []uint16) []string {
	var drives []string
	start := 0
	for i, c := range buf {
		if c != 0 {
			continue
		}
		if i > start {
			drives = append(drives, windows.UTF16ToString(buf[start:i]))
		}
		start = i + 1
	}
	return drives
}

func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
