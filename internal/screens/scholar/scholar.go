// Package scholar implements the ask-a-scholar chat screen.
package scholar

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// answerMsg carries the scholar's reply for a submitted question.
type answerMsg struct {
	Reply gateway.ChatMessage
}

// ScholarScreen is a question-and-answer chat. History lives on the
// session so it survives navigating away and back.
type ScholarScreen struct {
	sess    *session.Session
	input   components.TextInput
	waiting bool
}

var _ screen.Screen = (*ScholarScreen)(nil)

func New(sess *session.Session) *ScholarScreen {
	return &ScholarScreen{
		sess:  sess,
		input: components.NewTextInput("Ask about fiqh, seerah, or daily practice...", false, 400),
	}
}

func (s *ScholarScreen) Title() string {
	return "Ask a Scholar"
}

func (s *ScholarScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ScholarScreen) ask(question string) tea.Cmd {
	gw := s.sess.Gateway
	return func() tea.Msg {
		verdict, detail := gw.AskScholar(context.Background(), question)
		return answerMsg{Reply: gateway.ChatMessage{
			Role:    gateway.RoleScholar,
			Verdict: verdict,
			Detail:  detail,
		}}
	}
}

func (s *ScholarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		s.sess.AppendChat(msg.Reply)
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !s.waiting {
			question := strings.TrimSpace(s.input.Value())
			if question == "" {
				return s, nil
			}
			s.sess.AppendChat(gateway.ChatMessage{
				Role:   gateway.RoleUser,
				Detail: question,
			})
			s.input.Model.SetValue("")
			s.waiting = true
			return s, s.ask(question)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *ScholarScreen) View(width, height int) string {
	var b strings.Builder

	textWidth := width - 16
	if textWidth < 30 {
		textWidth = 30
	}

	history := s.sess.Chat()
	if len(history) == 0 && !s.waiting {
		b.WriteString(theme.Hint.Render("Assalamu Alaikum. Ask me about the Quran, Sunnah, or daily worship."))
		b.WriteString("\n\n")
	}

	// Keep only as many exchanges as fit above the input line.
	maxLines := height - 8
	var rendered []string
	for _, m := range history {
		rendered = append(rendered, s.renderMessage(m, textWidth))
	}
	total := 0
	start := len(rendered)
	for start > 0 && total+lipgloss.Height(rendered[start-1])+1 <= maxLines {
		total += lipgloss.Height(rendered[start-1]) + 1
		start--
	}
	for _, block := range rendered[start:] {
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	if s.waiting {
		b.WriteString(theme.Hint.Render("The scholar is considering your question..."))
		b.WriteString("\n\n")
	}

	b.WriteString(s.input.View())

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (s *ScholarScreen) renderMessage(m gateway.ChatMessage, width int) string {
	if m.Role == gateway.RoleUser {
		return theme.Selected.Render("You: ") +
			theme.Body.Width(width-6).Render(m.Detail)
	}

	var card strings.Builder
	if m.Verdict != "" {
		card.WriteString(theme.Title.Align(lipgloss.Left).Render(m.Verdict))
		card.WriteString("\n")
	}
	card.WriteString(theme.Body.Width(width - 8).Render(m.Detail))
	return theme.Card.Width(width - 2).Render(card.String())
}

func (s *ScholarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}
