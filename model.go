package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// model is the Bubble Tea model for the interactive remote
type model struct {
	dispatcher *Dispatcher
	target     Target
	config     *SafeConfig
	color      string
	width      int
	height     int

	lastCommand string // last command handed to the player
	lastError   error
	sending     bool // a command is in flight

	// Config file changed notifications
	configChanged <-chan struct{}

	// UI state
	showHelp bool // Whether to show help text
}

// Config file changed notification
type configReloadMsg struct{}

// Result of posting a command to the player
type sentMsg struct {
	cmd Command
	err error
}

// remoteKeys maps key presses to commands
var remoteKeys = map[string]Command{
	"p": PlayPause,
	" ": PlayPause,
	"b": Previous,
	"n": Next,
	"s": Stop,
}

func newModel(d *Dispatcher, target Target, sc *SafeConfig, changed <-chan struct{}) model {
	return model{
		dispatcher:    d,
		target:        target,
		config:        sc,
		color:         sc.Get().UI.Color,
		configChanged: changed,
	}
}

// Watch for config file changes
func (m model) watchConfigCmd() tea.Cmd {
	if m.configChanged == nil {
		return nil
	}
	ch := m.configChanged
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configReloadMsg{}
	}
}

// Send the command without blocking the UI
func (m model) sendCmd(cmd Command) tea.Cmd {
	d, target := m.dispatcher, m.target
	return func() tea.Msg {
		return sentMsg{cmd: cmd, err: d.Send(target, cmd)}
	}
}

func (m model) Init() tea.Cmd {
	return m.watchConfigCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
		if cmd, ok := remoteKeys[key]; ok {
			m.sending = true
			return m, m.sendCmd(cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case sentMsg:
		m.sending = false
		m.lastCommand = msg.cmd.String()
		m.lastError = msg.err
		return m, nil

	case configReloadMsg:
		m.color = m.config.Get().UI.Color
		// Continue watching for more config changes
		return m, m.watchConfigCmd()
	}

	return m, nil
}
