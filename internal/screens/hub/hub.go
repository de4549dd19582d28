// Package hub is the launcher for the smaller apps and reference lists.
package hub

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/router"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/screens/dream"
	"github.com/asadk/hikmah/internal/screens/halal"
	"github.com/asadk/hikmah/internal/screens/quiz"
	"github.com/asadk/hikmah/internal/screens/reference"
	"github.com/asadk/hikmah/internal/screens/tasbih"
	"github.com/asadk/hikmah/internal/screens/zakat"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// HubScreen lists the tools and reference sections.
type HubScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HubScreen)(nil)

func New(sess *session.Session) *HubScreen {
	h := &HubScreen{sess: sess}

	push := func(make func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: make()}
			}
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "🕌  ZAKAT CALCULATOR", Action: push(func() screen.Screen { return zakat.New(sess) })},
		{Label: "🧠  ISLAMIC QUIZ", Action: push(func() screen.Screen { return quiz.New(sess) })},
		{Label: "🌙  DREAM MEANINGS", Action: push(func() screen.Screen { return dream.New(sess) })},
		{Label: "🍽  HALAL CHECK", Action: push(func() screen.Screen { return halal.New(sess) })},
		{Label: "📿  DIGITAL TASBIH", Action: push(func() screen.Screen { return tasbih.New(sess) })},
		{Label: "✨  99 NAMES OF ALLAH", Action: push(func() screen.Screen { return reference.NewNames() })},
		{Label: "🤲  DAILY DUAS", Action: push(func() screen.Screen { return reference.NewDuas() })},
		{Label: "🕋  HOW TO PRAY", Action: push(func() screen.Screen { return reference.NewSalah() })},
		{Label: "🍯  SUNNAH FOODS", Action: push(func() screen.Screen { return reference.NewFoods() })},
	})
	return h
}

func (h *HubScreen) Title() string {
	return "Apps Hub"
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HubScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render("Tools and references for daily practice"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (h *HubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
