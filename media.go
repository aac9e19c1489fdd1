package main

// MediaController delivers playback commands to a running player.
// Delivery is best-effort: a nil error only means the command was handed off.
type MediaController interface {
	Control(target Target, cmd Command) error
}
