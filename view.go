package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const viewWidth = 45

func (m model) View() string {
	// Use lipgloss.Color to validate the color input
	color := lipgloss.Color(m.color)
	highlight := lipgloss.NewStyle().Foreground(color)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2)

	labelStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	var content strings.Builder
	content.WriteString(highlight.Render("󰓃 "+playerDisplayName+" Remote") + "\n\n")

	addLine := func(label, value string) {
		content.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label), value))
	}
	addLine("Player:", m.target.String())

	switch {
	case m.sending:
		addLine("Last:  ", mutedStyle.Render("sending..."))
	case m.lastCommand == "":
		addLine("Last:  ", mutedStyle.Render("nothing sent yet"))
	default:
		addLine("Last:  ", m.lastCommand)
	}

	if m.lastError != nil {
		content.WriteString("\n" + errorStyle.Render("Error: "+m.lastError.Error()))
	}

	contentStr := borderStyle.
		Width(viewWidth).
		Render(strings.TrimRight(content.String(), "\n"))

	// Build help text - either full help or hint to press ?
	var helpText string
	if m.showHelp {
		helpText = lipgloss.NewStyle().
			Width(viewWidth).
			Align(lipgloss.Center).
			Render(lipgloss.JoinHorizontal(
				lipgloss.Center,
				"Play/Pause: "+highlight.Render("p"),
				"  Next: "+highlight.Render("n"),
				"  Previous: "+highlight.Render("b"),
				"  Stop: "+highlight.Render("s"),
				"  Quit: "+highlight.Render("q"),
				"  Hide: "+highlight.Render("?"),
			))
	} else {
		helpText = mutedStyle.Render("Press ? for help")
	}

	fullUI := lipgloss.JoinVertical(lipgloss.Center, contentStr, "\n"+helpText)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		fullUI,
	)
}
