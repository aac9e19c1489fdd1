package main

import (
	"errors"
	"fmt"
)

// Command is a playback action understood by every MediaController
type Command int

const (
	PlayPause Command = iota
	Previous
	Next
	Stop
)

var errUnknownCommand = errors.New("unknown command")

// commandTokens maps the CLI token to its command. Order matches the usage text.
var commandTokens = []struct {
	token   string
	command Command
	help    string
}{
	{"pp", PlayPause, "Play/pause."},
	{"p", Previous, "Previous track."},
	{"n", Next, "Next track."},
	{"s", Stop, "Stop playing."},
}

// ParseCommand resolves a CLI token such as "pp" to its Command
func ParseCommand(token string) (Command, error) {
	for _, t := range commandTokens {
		if t.token == token {
			return t.command, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", errUnknownCommand, token)
}

func (c Command) String() string {
	switch c {
	case PlayPause:
		return "play-pause"
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Stop:
		return "stop"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}
