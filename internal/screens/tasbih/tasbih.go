// Package tasbih implements the digital dhikr counter.
package tasbih

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// cycleLen is the traditional count per phrase.
const cycleLen = 33

// phrases rotate every 33 counts.
var phrases = []string{
	"SubhanAllah",
	"Alhamdulillah",
	"Allahu Akbar",
}

type savedMsg struct {
	Err error
}

// TasbihScreen counts dhikr. The total persists on the profile; the
// current phrase derives from the total so it survives restarts.
type TasbihScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*TasbihScreen)(nil)

func New(sess *session.Session) *TasbihScreen {
	return &TasbihScreen{sess: sess}
}

func (t *TasbihScreen) Title() string {
	return "Digital Tasbih"
}

func (t *TasbihScreen) Init() tea.Cmd {
	return nil
}

func (t *TasbihScreen) persist() tea.Cmd {
	sess := t.sess
	return func() tea.Msg {
		return savedMsg{Err: sess.Persist(context.Background())}
	}
}

func (t *TasbihScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "space", "enter", " ":
		t.sess.Profile().IncrementTasbih()
		return t, t.persist()
	case "r":
		t.sess.Profile().ResetTasbih()
		return t, t.persist()
	}

	return t, nil
}

func (t *TasbihScreen) View(width, height int) string {
	total := t.sess.Profile().TasbihCount
	inCycle := total % cycleLen
	phrase := phrases[(total/cycleLen)%len(phrases)]

	var b strings.Builder

	b.WriteString(theme.ArabicText.Render("۝"))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Align(lipgloss.Left).Render(phrase))
	b.WriteString("\n\n")

	count := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%d", inCycle))
	b.WriteString(theme.Body.Render("This round: ") + count +
		theme.Subtitle.Align(lipgloss.Left).Render(fmt.Sprintf(" / %d", cycleLen)))
	b.WriteString("\n\n")

	barWidth := width - 24
	if barWidth > 40 {
		barWidth = 40
	}
	bar := components.NewProgressBar("", float64(inCycle)/float64(cycleLen), false, barWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(fmt.Sprintf("Lifetime count: %d", total)))

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().Padding(1, 4).Render(card)
}

func (t *TasbihScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Count"},
		{Key: "r", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}
