// Package dream implements the dream interpretation screen.
package dream

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

type interpretedMsg struct {
	Text string
}

// DreamScreen takes a dream description and shows an interpretation
// drawn from classical sources.
type DreamScreen struct {
	sess    *session.Session
	input   components.TextInput
	waiting bool
	result  string
}

var _ screen.Screen = (*DreamScreen)(nil)

func New(sess *session.Session) *DreamScreen {
	return &DreamScreen{
		sess:  sess,
		input: components.NewTextInput("I saw green gardens and flowing water...", false, 300),
	}
}

func (d *DreamScreen) Title() string {
	return "Dream Meanings"
}

func (d *DreamScreen) Init() tea.Cmd {
	return d.input.Init()
}

func (d *DreamScreen) interpret(dream string) tea.Cmd {
	gw := d.sess.Gateway
	return func() tea.Msg {
		return interpretedMsg{Text: gw.InterpretDream(context.Background(), dream)}
	}
}

func (d *DreamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case interpretedMsg:
		d.waiting = false
		d.result = msg.Text
		return d, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !d.waiting {
			dream := strings.TrimSpace(d.input.Value())
			if dream == "" {
				return d, nil
			}
			d.waiting = true
			d.result = ""
			return d, d.interpret(dream)
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	return d, nil
}

func (d *DreamScreen) View(width, height int) string {
	var b strings.Builder

	textWidth := width - 16
	if textWidth < 30 {
		textWidth = 30
	}

	b.WriteString(theme.Body.Render("Describe your dream:"))
	b.WriteString("\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")

	switch {
	case d.waiting:
		b.WriteString(theme.Hint.Render("consulting classical interpretations..."))
	case d.result != "":
		b.WriteString(theme.Card.Width(textWidth).
			Render(theme.Body.Width(textWidth - 6).Render(d.result)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Interpretations are indicative, not definitive. Allah knows best."))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (d *DreamScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Interpret"},
		{Key: "Esc", Description: "Back"},
	}
}
