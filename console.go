package main

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Segment is one piece of a console write: Text, Foreground or Reset
type Segment interface {
	segment()
}

// Text is written in the current foreground color
type Text string

// Foreground switches the color used for following Text segments.
// Accepts anything lipgloss.Color does: ANSI codes ("4") or hex ("#1DB954").
type Foreground string

// Reset returns to the terminal's default color
type Reset struct{}

func (Text) segment()       {}
func (Foreground) segment() {}
func (Reset) segment()      {}

const errorColor = Foreground("1")

// Console serializes multi-segment writes so they never interleave
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewConsole writes to w, using color only if w is a terminal that supports it
func NewConsole(w io.Writer) *Console {
	return &Console{out: w, renderer: lipgloss.NewRenderer(w)}
}

// Write renders segments in order as one atomic write. Color is always reset
// at the end, whatever the segments did.
func (c *Console) Write(segments ...Segment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	var fg Foreground
	for _, s := range segments {
		switch s := s.(type) {
		case Text:
			b.WriteString(c.render(fg, string(s)))
		case Foreground:
			fg = s
		case Reset:
			fg = ""
		}
	}
	_, _ = io.WriteString(c.out, b.String())
}

// render styles text line by line; lipgloss would otherwise pad every line of
// a multi-line block to the same width.
func (c *Console) render(fg Foreground, text string) string {
	if fg == "" {
		return text
	}
	style := c.renderer.NewStyle().Foreground(lipgloss.Color(fg))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// WriteError prints an "Error" heading followed by err and each of its causes
// on their own line.
func (c *Console) WriteError(err error) {
	segments := []Segment{errorColor, Text("Error\n"), Reset{}}
	for _, msg := range errorChain(err) {
		segments = append(segments, Text(msg+"\n"))
	}
	c.Write(segments...)
}

// errorChain splits a wrapped error into one message per level. A level made
// with fmt.Errorf("context: %w", cause) contributes only "context". A level
// whose text already embeds its cause some other way ends the chain.
func errorChain(err error) []string {
	var msgs []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next == nil {
			msgs = append(msgs, msg)
			break
		}
		cause := next.Error()
		if trimmed := strings.TrimSuffix(msg, ": "+cause); trimmed != msg {
			msgs = append(msgs, trimmed)
			err = next
			continue
		}
		msgs = append(msgs, msg)
		if strings.Contains(msg, cause) {
			break
		}
		err = next
	}
	return msgs
}
