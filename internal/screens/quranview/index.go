// Package quranview implements the surah index and the verse reader.
package quranview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/quran"
	"github.com/asadk/hikmah/internal/router"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// IndexScreen lists all 114 chapters with incremental search.
type IndexScreen struct {
	sess     *session.Session
	search   components.TextInput
	results  []quran.Surah
	selected int
	offset   int
}

var _ screen.Screen = (*IndexScreen)(nil)

// NewIndex creates the surah index screen.
func NewIndex(sess *session.Session) *IndexScreen {
	return &IndexScreen{
		sess:    sess,
		search:  components.NewTextInput("search surahs...", false, 40),
		results: quran.Surahs,
	}
}

func (s *IndexScreen) Title() string {
	return "The Holy Quran"
}

func (s *IndexScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *IndexScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.results) {
				target := NewReader(s.sess, s.results[s.selected].Number)
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: target}
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)

	s.results = quran.Search(s.search.Value())
	if s.selected >= len(s.results) {
		s.selected = 0
	}
	return s, cmd
}

func (s *IndexScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(s.search.View())
	b.WriteString("\n\n")

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}

	end := s.offset + visible
	if end > len(s.results) {
		end = len(s.results)
	}

	fav := s.sess.Profile()
	for i := s.offset; i < end; i++ {
		sur := s.results[i]
		marker := "  "
		if fav.HasSurahFavorite(sur.Number) {
			marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("★ ")
		}

		line := fmt.Sprintf("%3d  %-16s %-30s %4d ayahs  %s",
			sur.Number, sur.Name, sur.Meaning, sur.AyahCount, sur.Revelation)

		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + marker + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + marker + line))
		}
		b.WriteString("\n")
	}

	if len(s.results) == 0 {
		b.WriteString(theme.Hint.Render("no surahs match"))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (s *IndexScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
