// Package reference renders the static devotional lists: names of Allah,
// daily duas, salah steps, and sunnah foods.
package reference

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/reference"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// ListScreen scrolls one prepared list of entries. Each entry is a
// pre-rendered block; the screen only handles scrolling.
type ListScreen struct {
	title   string
	entries []string
	offset  int
}

var _ screen.Screen = (*ListScreen)(nil)

// NewNames shows the names of Allah with their meanings.
func NewNames() *ListScreen {
	var entries []string
	for _, n := range reference.AllahNames {
		entries = append(entries,
			theme.ArabicText.Render(n.Name)+"\n"+
				theme.Body.Render(n.Meaning))
	}
	return &ListScreen{title: "99 Names of Allah", entries: entries}
}

// NewDuas shows the dua collection grouped by occasion.
func NewDuas() *ListScreen {
	var entries []string
	for _, cat := range reference.Duas {
		for _, d := range cat.Items {
			var b strings.Builder
			b.WriteString(theme.Selected.Render(cat.Category))
			b.WriteString("\n")
			b.WriteString(theme.ArabicText.Render(d.Arabic))
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render(d.Transliteration))
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(d.Translation))
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render("Source: " + d.Ref))
			entries = append(entries, b.String())
		}
	}
	return &ListScreen{title: "Daily Duas", entries: entries}
}

// NewSalah shows the ordered steps of the prayer.
func NewSalah() *ListScreen {
	var entries []string
	for _, s := range reference.SalahSteps {
		entries = append(entries,
			theme.Selected.Render(fmt.Sprintf("%d. %s", s.Step, s.Title))+"\n"+
				theme.Body.Render(s.Desc))
	}
	return &ListScreen{title: "How to Pray", entries: entries}
}

// NewFoods shows the sunnah foods with benefits and sources.
func NewFoods() *ListScreen {
	var entries []string
	for _, f := range reference.SunnahFoods {
		entries = append(entries,
			theme.Selected.Render(f.Name)+"\n"+
				theme.Body.Render(f.Benefit)+"\n"+
				theme.Subtitle.Align(lipgloss.Left).Render("Source: "+f.Ref))
	}
	return &ListScreen{title: "Sunnah Foods", entries: entries}
}

func (l *ListScreen) Title() string {
	return l.title
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.offset > 0 {
			l.offset--
		}
	case "down", "j":
		if l.offset < len(l.entries)-1 {
			l.offset++
		}
	case "home", "g":
		l.offset = 0
	}

	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	textWidth := width - 14
	if textWidth < 30 {
		textWidth = 30
	}

	var b strings.Builder
	used := 0
	shown := 0
	for _, entry := range l.entries[l.offset:] {
		card := theme.Card.Width(textWidth).Render(entry)
		h := lipgloss.Height(card) + 1
		if shown > 0 && used+h > height-4 {
			break
		}
		b.WriteString(card)
		b.WriteString("\n")
		used += h
		shown++
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).
		Render(fmt.Sprintf("%d - %d of %d", l.offset+1, l.offset+shown, len(l.entries))))

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
