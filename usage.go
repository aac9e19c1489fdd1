package main

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func appVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "0.1"
}

// showUsage prints the version, the command tokens and, if given, flag help
func showUsage(c *Console, accent string, flagUsages string) {
	c.Write(
		Text("Spotify Control v"+appVersion()+"\n\n"),
		Text("Usage:\n"),
		Text("  spotifyctl ["),
		Foreground(accent),
		Text("command"),
		Reset{},
		Text("]\n\n"),
		Text("Commands:\n"),
	)

	for _, t := range commandTokens {
		c.Write(
			Foreground(accent),
			Text(fmt.Sprintf("  %-4s", t.token)),
			Reset{},
			Text(t.help+"\n"),
		)
	}

	if flagUsages != "" {
		c.Write(Text("\nFlags:\n" + flagUsages))
	}
}
