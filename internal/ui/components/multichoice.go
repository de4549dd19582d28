package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/ui/theme"
)

var (
	choiceQuestion = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	choiceCursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	choiceIdle     = lipgloss.NewStyle().Foreground(theme.Text)
	choiceRight    = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	choiceWrong    = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	choiceFaded    = lipgloss.NewStyle().Foreground(theme.TextDim)
)

var choiceLabels = []string{"A", "B", "C", "D"}

// MultiChoice asks one question with lettered options. After submission it
// locks and reveals the correct answer.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice builds an unanswered question with the cursor on the
// first option.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and locks in an answer on enter. Number keys
// jump straight to that option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
			}
		}
	}

	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(choiceQuestion.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, choiceLabels[i%len(choiceLabels)], opt)

		var style lipgloss.Style
		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = choiceRight
		case m.Submitted && i == m.ChosenIndex:
			style = choiceWrong
		case m.Submitted:
			style = choiceFaded
		case i == m.Selected:
			style = choiceCursor
		default:
			style = choiceIdle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect reports whether the locked-in answer is the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
