// Package hadith implements the hadith browser with its topic selector.
package hadith

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// topics the browser offers, mirroring the selector labels.
var topics = []struct {
	Key   string
	Label string
}{
	{"faith", "Faith (Iman)"},
	{"prayer", "Prayer (Salah)"},
	{"charity", "Charity (Zakat)"},
	{"manners", "Manners (Adab)"},
	{"marriage", "Marriage"},
}

// hadithsMsg delivers a fetched batch for a topic.
type hadithsMsg struct {
	Topic   string
	Hadiths []gateway.Hadith
}

// HadithScreen lists narrations for the chosen topic. Fetches happen only
// when the session cache is empty or the topic changed.
type HadithScreen struct {
	sess     *session.Session
	topicIdx int
	selected int
	loading  bool
	hadiths  []gateway.Hadith
	topic    string

	// pending is the topic of the in-flight fetch; results for any other
	// topic are stale and dropped.
	pending string
}

var _ screen.Screen = (*HadithScreen)(nil)

// New creates the hadith browser seeded from the session cache.
func New(sess *session.Session) *HadithScreen {
	h := &HadithScreen{sess: sess}

	cached, topic := sess.Hadiths()
	h.hadiths = cached
	h.topic = topic
	for i, t := range topics {
		if t.Key == topic {
			h.topicIdx = i
			break
		}
	}
	return h
}

func (h *HadithScreen) Title() string {
	return "Hadith Collection"
}

// Init fetches only when nothing is cached.
func (h *HadithScreen) Init() tea.Cmd {
	if len(h.hadiths) > 0 {
		return nil
	}
	return h.fetch(topics[h.topicIdx].Key)
}

func (h *HadithScreen) fetch(topic string) tea.Cmd {
	h.loading = true
	h.pending = topic
	gw := h.sess.Gateway
	return func() tea.Msg {
		return hadithsMsg{
			Topic:   topic,
			Hadiths: gw.Hadiths(context.Background(), topic),
		}
	}
}

func (h *HadithScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hadithsMsg:
		if msg.Topic != h.pending {
			return h, nil
		}
		h.pending = ""
		h.loading = false
		h.topic = msg.Topic
		h.hadiths = msg.Hadiths
		h.selected = 0
		h.sess.SetHadiths(msg.Topic, msg.Hadiths)
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			if h.topicIdx > 0 {
				h.topicIdx--
			}
			return h, nil
		case "right":
			if h.topicIdx < len(topics)-1 {
				h.topicIdx++
			}
			return h, nil
		case "enter":
			key := topics[h.topicIdx].Key
			if key == h.topic && len(h.hadiths) > 0 {
				return h, nil
			}
			return h, h.fetch(key)
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
			return h, nil
		case "down", "j":
			if h.selected < len(h.hadiths)-1 {
				h.selected++
			}
			return h, nil
		case "r":
			return h, h.fetch(topics[h.topicIdx].Key)
		}
	}

	return h, nil
}

func (h *HadithScreen) View(width, height int) string {
	var b strings.Builder

	var tabs []string
	for i, t := range topics {
		if i == h.topicIdx {
			tabs = append(tabs, theme.Selected.Render("["+t.Label+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+t.Label+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch {
	case h.loading:
		b.WriteString(theme.Hint.Render("gathering narrations..."))
	case len(h.hadiths) == 0:
		b.WriteString(theme.Hint.Render("No hadiths available. Press Enter to fetch, r to retry."))
	default:
		textWidth := width - 12
		if textWidth < 20 {
			textWidth = 20
		}

		a := h.hadiths[h.selected]
		var card strings.Builder
		card.WriteString(theme.ArabicText.Width(textWidth - 6).Render(a.Arabic))
		card.WriteString("\n\n")
		card.WriteString(theme.Body.Width(textWidth - 6).Render(a.English))
		card.WriteString("\n\n")

		meta := a.Source
		if a.Narrator != "" {
			meta += " · narrated by " + a.Narrator
		}
		card.WriteString(theme.Subtitle.Render(meta))
		card.WriteString("\n")

		grade := theme.Correct
		if !strings.EqualFold(a.Grade, "sahih") {
			grade = lipgloss.NewStyle().Foreground(theme.Warn).Bold(true)
		}
		card.WriteString(grade.Render("Grade: " + a.Grade))

		b.WriteString(theme.Card.Width(textWidth).Render(card.String()))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d of %d", h.selected+1, len(h.hadiths))))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (h *HadithScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Topic"},
		{Key: "Enter", Description: "Load topic"},
		{Key: "↑↓", Description: "Hadith"},
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}
