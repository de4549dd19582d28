// Package halal implements the halal ingredient check screen.
package halal

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

type verdictMsg struct {
	Verdict string
	Detail  string
}

// HalalScreen checks a food item or ingredient list and reports a
// halal, haram, or doubtful verdict with an explanation.
type HalalScreen struct {
	sess    *session.Session
	input   components.TextInput
	waiting bool
	verdict string
	detail  string
}

var _ screen.Screen = (*HalalScreen)(nil)

func New(sess *session.Session) *HalalScreen {
	return &HalalScreen{
		sess:  sess,
		input: components.NewTextInput("e.g. gelatin, E120, vanilla extract", false, 200),
	}
}

func (h *HalalScreen) Title() string {
	return "Halal Check"
}

func (h *HalalScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HalalScreen) check(item string) tea.Cmd {
	gw := h.sess.Gateway
	return func() tea.Msg {
		text := gw.CheckHalal(context.Background(), item)
		return verdictMsg{Verdict: firstVerdict(text), Detail: text}
	}
}

// firstVerdict scans the analysis for the ruling keyword so the headline
// can be colored. The full text is always shown underneath.
func firstVerdict(text string) string {
	lower := strings.ToLower(text)
	for _, v := range []string{"haram", "mushbooh", "doubtful", "halal"} {
		if strings.Contains(lower, v) {
			return strings.ToUpper(v[:1]) + v[1:]
		}
	}
	return ""
}

func (h *HalalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verdictMsg:
		h.waiting = false
		h.verdict = msg.Verdict
		h.detail = msg.Detail
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !h.waiting {
			item := strings.TrimSpace(h.input.Value())
			if item == "" {
				return h, nil
			}
			h.waiting = true
			h.verdict = ""
			h.detail = ""
			return h, h.check(item)
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}

	return h, nil
}

// verdictStyle colors the headline by its ruling.
func verdictStyle(verdict string) lipgloss.Style {
	switch {
	case strings.Contains(strings.ToLower(verdict), "haram"):
		return theme.Incorrect
	case strings.Contains(strings.ToLower(verdict), "doubtful"),
		strings.Contains(strings.ToLower(verdict), "mushbooh"):
		return lipgloss.NewStyle().Foreground(theme.Warn).Bold(true)
	default:
		return theme.Correct
	}
}

func (h *HalalScreen) View(width, height int) string {
	var b strings.Builder

	textWidth := width - 16
	if textWidth < 30 {
		textWidth = 30
	}

	b.WriteString(theme.Body.Render("Food item or ingredients to check:"))
	b.WriteString("\n")
	b.WriteString(h.input.View())
	b.WriteString("\n\n")

	switch {
	case h.waiting:
		b.WriteString(theme.Hint.Render("checking ingredients..."))
	case h.detail != "":
		var card strings.Builder
		if h.verdict != "" {
			card.WriteString(verdictStyle(h.verdict).Render(h.verdict))
			card.WriteString("\n\n")
		}
		card.WriteString(theme.Body.Width(textWidth - 6).Render(h.detail))
		b.WriteString(theme.Card.Width(textWidth).Render(card.String()))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (h *HalalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}
