//go:build windows
// +build windows

package main

import (
	"fmt"
	"sync"

	ps "github.com/mitchellh/go-ps"
	"golang.org/x/sys/windows"
)

const wmAppCommand = 0x0319

// APPCOMMAND_* values go in the high word of lParam
var appCommands = map[Command]uintptr{
	Next:      11 << 16, // APPCOMMAND_MEDIA_NEXTTRACK
	Previous:  12 << 16, // APPCOMMAND_MEDIA_PREVIOUSTRACK
	Stop:      13 << 16, // APPCOMMAND_MEDIA_STOP
	PlayPause: 14 << 16, // APPCOMMAND_MEDIA_PLAY_PAUSE
}

const gwOwner = 4

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procPostMessageW = user32.NewProc("PostMessageW")
	procGetWindow    = user32.NewProc("GetWindow")
)

// AppCommandController implements MediaController by posting WM_APPCOMMAND
// to the player's main window
type AppCommandController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController(player string) MediaController {
	return &AppCommandController{}
}

func (a *AppCommandController) Control(target Target, cmd Command) error {
	code, ok := appCommands[cmd]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	hwnd := mainWindow(uint32(target.PID))
	if hwnd == 0 {
		// The player runs several processes; only one owns the window
		hwnd = mainWindow(siblingPIDs(target)...)
	}
	if hwnd == 0 {
		return fmt.Errorf("no main window for %s", target)
	}

	ret, _, err := procPostMessageW.Call(uintptr(hwnd), wmAppCommand, 0, code)
	if ret == 0 {
		return fmt.Errorf("PostMessage failed: %w", err)
	}
	return nil
}

// siblingPIDs returns every process sharing the target's executable name
func siblingPIDs(target Target) []uint32 {
	procs, err := ps.Processes()
	if err != nil {
		return nil
	}
	var pids []uint32
	for _, p := range procs {
		if p.Pid() != target.PID && processNameMatches(p.Executable(), target.Name) {
			pids = append(pids, uint32(p.Pid()))
		}
	}
	return pids
}

type windowSearch struct {
	pids  map[uint32]bool
	found windows.HWND
}

// EnumWindows callbacks are a limited resource, so one is shared and the
// search state is handed over through enumState.
var (
	enumMu          sync.Mutex
	enumState       *windowSearch
	enumWindowsProc = windows.NewCallback(enumWindowsCallback)
)

func enumWindowsCallback(hwnd windows.HWND, _ uintptr) uintptr {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil || !enumState.pids[pid] {
		return 1
	}
	if !windows.IsWindowVisible(hwnd) {
		return 1
	}
	if owner, _, _ := procGetWindow.Call(uintptr(hwnd), gwOwner); owner != 0 {
		return 1
	}
	enumState.found = hwnd
	return 0
}

// mainWindow returns the first visible, unowned top-level window belonging to
// one of pids, or 0.
func mainWindow(pids ...uint32) windows.HWND {
	if len(pids) == 0 {
		return 0
	}
	search := &windowSearch{pids: make(map[uint32]bool, len(pids))}
	for _, pid := range pids {
		search.pids[pid] = true
	}

	enumMu.Lock()
	defer enumMu.Unlock()
	enumState = search
	// EnumWindows reports an error when the callback stops it early, so only
	// the search result counts
	_ = windows.EnumWindows(enumWindowsProc, nil)
	enumState = nil
	return search.found
}
