package main

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// TestConsoleWritePlain checks that without a terminal only the text is written
func TestConsoleWritePlain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Write(Text("a "), Foreground("4"), Text("b\nc"), Reset{}, Text(" d\n"))

	if got, want := buf.String(), "a b\nc d\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestConsoleRenderKeepsLineWidths(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	got := c.render("4", "long line\nx\n")
	if strings.Contains(got, "x ") {
		t.Errorf("render padded a short line: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("render dropped the trailing newline: %q", got)
	}
}

func TestConsoleWriteIsAtomic(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				c.Write(Text("<"), Text(fmt.Sprint(id)), Foreground("2"), Text(":"), Reset{}, Text(">\n"))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines; want 400", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "<") || !strings.HasSuffix(line, ":>") {
			t.Fatalf("interleaved write: %q", line)
		}
	}
}

func TestConsoleWriteError(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	root := errors.New("access is denied")
	err := fmt.Errorf("failed to start C:\\Spotify\\spotify.exe: %w", root)
	c.WriteError(err)

	want := "Error\nfailed to start C:\\Spotify\\spotify.exe\naccess is denied\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestErrorChain(t *testing.T) {
	base := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"single", base, []string{"permission denied"}},
		{
			"wrapped twice",
			fmt.Errorf("launch: %w", fmt.Errorf("open dir: %w", base)),
			[]string{"launch", "open dir", "permission denied"},
		},
		{
			"cause as prefix",
			fmt.Errorf("%w: x", errUnknownCommand),
			[]string{"unknown command: x"},
		},
		{
			"custom message hides cause",
			fmt.Errorf("oops (%w)", base),
			[]string{"oops (permission denied)"},
		},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorChain(tt.err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("errorChain() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestShowUsage(t *testing.T) {
	var buf bytes.Buffer
	showUsage(NewConsole(&buf), "4", "")
	out := buf.String()

	for _, want := range []string{
		"Spotify Control v",
		"Usage:\n  spotifyctl [command]\n",
		"Commands:\n",
		"  pp  Play/pause.\n",
		"  p   Previous track.\n",
		"  n   Next track.\n",
		"  s   Stop playing.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Flags:") {
		t.Error("usage printed a Flags section without flag help")
	}
}
