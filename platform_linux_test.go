//go:build linux
// +build linux

package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseMounts(t *testing.T) {
	table := `sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
/dev/nvme0n1p2 / ext4 rw,relatime 0 0
tmpfs /run tmpfs rw,nosuid,nodev 0 0
/dev/nvme0n1p1 /boot/efi vfat rw,relatime 0 0
/dev/sdb1 /media/user/My\040Music exfat rw,nosuid,nodev 0 0
/dev/loop3 /snap/spotify/80 squashfs ro,nodev,relatime 0 0
broken-line
`
	got := parseMounts(strings.NewReader(table))
	want := []string{"/", "/boot/efi", "/media/user/My Music"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseMounts() = %q; want %q", got, want)
	}
}

func TestPlayerctlArgs(t *testing.T) {
	p := NewMediaController("Spotify").(*PlayerctlController)

	tests := map[Command][]string{
		PlayPause: {"--player=spotify", "play-pause"},
		Previous:  {"--player=spotify", "previous"},
		Next:      {"--player=spotify", "next"},
		Stop:      {"--player=spotify", "stop"},
	}
	for cmd, want := range tests {
		if got := p.playerctlArgs(cmd); !reflect.DeepEqual(got, want) {
			t.Errorf("playerctlArgs(%v) = %v; want %v", cmd, got, want)
		}
	}

	anyPlayer := &PlayerctlController{}
	if got := anyPlayer.playerctlArgs(Next); !reflect.DeepEqual(got, []string{"next"}) {
		t.Errorf("playerctlArgs without player = %v", got)
	}
}
