package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/asadk/hikmah/internal/ui/theme"
)

// Button fires OnPress when activated. Only an Active button reacts to
// input; screens toggle Active as focus moves.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

// Update fires the button on enter or space while it holds focus.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			return b, b.OnPress()
		}
	}

	return b, nil
}

func (b Button) View() string {
	label := " ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
