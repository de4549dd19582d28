// Package dashboard implements the signed-in landing screen: resume
// reading, feature navigation, and a verse picked for the reader's mood.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/quran"
	"github.com/asadk/hikmah/internal/router"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/screens/hadith"
	"github.com/asadk/hikmah/internal/screens/hub"
	"github.com/asadk/hikmah/internal/screens/quranview"
	"github.com/asadk/hikmah/internal/screens/scholar"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/components"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// moods the reader can ask a verse for, bound to number keys.
var moods = []string{"grateful", "anxious", "sad", "hopeful", "tired"}

// moodAyahMsg delivers the fetched verse, or nil when the fetch failed.
type moodAyahMsg struct {
	Mood string
	Ayah *gateway.MoodAyah
}

// loggedOutMsg is sent once the session slot has been cleared.
type loggedOutMsg struct{}

// DashboardScreen is the post-login home.
type DashboardScreen struct {
	sess       *session.Session
	authTarget func() screen.Screen
	menu       components.Menu

	moodLoading string
	moodAyah    *gateway.MoodAyah
	moodFor     string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. authTarget builds the screen shown after
// logout.
func New(sess *session.Session, authTarget func() screen.Screen) *DashboardScreen {
	d := &DashboardScreen{
		sess:       sess,
		authTarget: authTarget,
	}

	p := sess.Profile()
	resumeLabel := "CONTINUE READING"
	if s, ok := quran.SurahByNumber(p.LastReadSurah); ok {
		resumeLabel = fmt.Sprintf("CONTINUE READING — %s", s.Name)
	}

	items := []components.MenuItem{
		{Label: resumeLabel, Action: func() tea.Cmd {
			return push(quranview.NewReader(sess, p.LastReadSurah))
		}},
		{Label: "BROWSE QURAN", Action: func() tea.Cmd {
			return push(quranview.NewIndex(sess))
		}},
		{Label: "HADITH COLLECTION", Action: func() tea.Cmd {
			return push(hadith.New(sess))
		}},
		{Label: "ASK A SCHOLAR", Action: func() tea.Cmd {
			return push(scholar.New(sess))
		}},
		{Label: "APPS HUB", Action: func() tea.Cmd {
			return push(hub.New(sess))
		}},
		{Label: "LOG OUT", Action: d.logout},
	}

	d.menu = components.NewMenu(items)
	return d
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (d *DashboardScreen) logout() tea.Cmd {
	sess := d.sess
	return func() tea.Msg {
		_ = sess.Logout(context.Background())
		return loggedOutMsg{}
	}
}

func (d *DashboardScreen) Title() string {
	return "Assalamu Alaikum, " + d.sess.Profile().Username
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedOutMsg:
		target := d.authTarget()
		return d, func() tea.Msg {
			return router.ResetScreenMsg{Screen: target}
		}

	case moodAyahMsg:
		if msg.Mood != d.moodLoading {
			return d, nil
		}
		d.moodLoading = ""
		d.moodAyah = msg.Ayah
		d.moodFor = msg.Mood
		return d, nil

	case tea.KeyMsg:
		key := msg.String()
		if key >= "1" && key <= "5" {
			return d, d.fetchMoodAyah(moods[key[0]-'1'])
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) fetchMoodAyah(mood string) tea.Cmd {
	d.moodLoading = mood
	gw := d.sess.Gateway
	return func() tea.Msg {
		return moodAyahMsg{Mood: mood, Ayah: gw.AyahForMood(context.Background(), mood)}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.sess.Profile()

	stats := fmt.Sprintf("Tasbih %d   ·   Quiz best %d   ·   Favorites %d",
		p.TasbihCount, p.QuizScore, len(p.Favorites))

	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.Subtitle.Render(stats),
		"",
		d.menu.View(),
	)

	right := d.moodCard()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(width/2).Render(left),
		right,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (d *DashboardScreen) moodCard() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("A verse for you"))
	b.WriteString("\n\n")

	switch {
	case d.moodLoading != "":
		b.WriteString(theme.Hint.Render("finding a verse for \"" + d.moodLoading + "\"..."))
	case d.moodAyah != nil:
		a := d.moodAyah
		b.WriteString(theme.ArabicText.Render(a.Text))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(a.Translation))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("— %s %d:%d", a.SurahName, a.Surah, a.Ayah)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(a.Relevance))
	case d.moodFor != "":
		// Fetch came back empty; the gateway already swallowed the cause.
		b.WriteString(theme.Hint.Render("No verse right now. Try again in a moment."))
	default:
		for i, m := range moods {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("%d  %s", i+1, m)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("press a number to match a verse to your mood"))
	}

	return theme.Card.Width(44).Render(b.String())
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-5", Description: "Mood verse"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
