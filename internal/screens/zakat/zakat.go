// Package zakat implements the zakat calculator screen.
package zakat

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
	"github.com/asadk/hikmah/internal/zakat"
)

const (
	focusAssets = iota
	focusGold
	focusButton
)

// ZakatScreen takes total assets and a gold price, and reports whether
// zakat is due and how much.
type ZakatScreen struct {
	sess    *session.Session
	assets  components.TextInput
	gold    components.TextInput
	button  components.Button
	focus   int
	result  *zakat.Result
	errText string
}

var _ screen.Screen = (*ZakatScreen)(nil)

func New(sess *session.Session) *ZakatScreen {
	z := &ZakatScreen{
		sess:   sess,
		assets: components.NewTextInput("total savings and assets", true, 16),
		gold:   components.NewTextInput(fmt.Sprintf("%.2f", zakat.DefaultGoldPrice), true, 10),
	}
	z.button = components.NewButton("Calculate", false, func() tea.Cmd {
		z.calculate()
		return nil
	})
	z.gold.Model.Blur()
	return z
}

func (z *ZakatScreen) Title() string {
	return "Zakat Calculator"
}

func (z *ZakatScreen) Init() tea.Cmd {
	return z.assets.Init()
}

func (z *ZakatScreen) calculate() {
	z.errText = ""
	z.result = nil

	assets, err := z.assets.FloatValue()
	if err != nil || assets < 0 {
		z.errText = "Enter your total assets as a number."
		return
	}

	gold := zakat.DefaultGoldPrice
	if strings.TrimSpace(z.gold.Value()) != "" {
		gold, err = z.gold.FloatValue()
		if err != nil || gold <= 0 {
			z.errText = "Gold price must be a positive number."
			return
		}
	}

	r := zakat.Calculate(assets, gold)
	z.result = &r
}

func (z *ZakatScreen) setFocus(focus int) {
	z.focus = focus
	z.assets.Model.Blur()
	z.gold.Model.Blur()
	z.button.Active = false
	switch focus {
	case focusAssets:
		z.assets.Model.Focus()
	case focusGold:
		z.gold.Model.Focus()
	case focusButton:
		z.button.Active = true
	}
}

func (z *ZakatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return z, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		z.setFocus((z.focus + 1) % 3)
		return z, nil
	case "shift+tab", "up":
		z.setFocus((z.focus + 2) % 3)
		return z, nil
	case "enter":
		if z.focus == focusButton {
			var cmd tea.Cmd
			z.button, cmd = z.button.Update(msg)
			return z, cmd
		}
		z.setFocus(z.focus + 1)
		return z, nil
	}

	var cmd tea.Cmd
	switch z.focus {
	case focusAssets:
		z.assets, cmd = z.assets.Update(msg)
	case focusGold:
		z.gold, cmd = z.gold.Update(msg)
	}
	return z, cmd
}

func (z *ZakatScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render("Total assets held for one lunar year:"))
	b.WriteString("\n")
	b.WriteString(z.assets.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Gold price per gram (for the nisab threshold):"))
	b.WriteString("\n")
	b.WriteString(z.gold.View())
	b.WriteString("\n\n")
	b.WriteString(z.button.View())
	b.WriteString("\n\n")

	if z.errText != "" {
		b.WriteString(theme.Incorrect.Render(z.errText))
	}

	if z.result != nil {
		var card strings.Builder
		if z.result.Eligible {
			card.WriteString(theme.Correct.Render("Zakat is due this year."))
			card.WriteString("\n\n")
			card.WriteString(theme.Body.Render(fmt.Sprintf("Amount payable (2.5%%): %.2f", z.result.Amount)))
		} else {
			card.WriteString(theme.Body.Render("Your assets are below the nisab threshold."))
			card.WriteString("\n\n")
			card.WriteString(theme.Hint.Render("No zakat is due, though voluntary charity is always rewarded."))
		}
		card.WriteString("\n")
		card.WriteString(theme.Subtitle.Align(lipgloss.Left).
			Render(fmt.Sprintf("Nisab (%.2fg of gold): %.2f", zakat.NisabGoldGrams, z.result.Nisab)))
		b.WriteString(theme.Card.Render(card.String()))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (z *ZakatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Calculate"},
		{Key: "Esc", Description: "Back"},
	}
}
