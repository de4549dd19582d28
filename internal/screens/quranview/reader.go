package quranview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/quran"
	"github.com/asadk/hikmah/internal/screen"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/ui/layout"
	"github.com/asadk/hikmah/internal/ui/theme"
)

// verseBatch is how many ayahs one fetch requests.
const verseBatch = 15

// ReaderScreen shows the verses of one chapter with tafsir, bookmarks, and
// favorites.
type ReaderScreen struct {
	sess    *session.Session
	chapter int
	meta    quran.Surah

	ayahs    []gateway.Ayah
	selected int
	offset   int
	loading  bool
	fetched  bool

	// tafsir cache by ayah number; open tracks which ayah's tafsir shows.
	tafsir     map[int]string
	tafsirOpen int
	notice     string
}

var _ screen.Screen = (*ReaderScreen)(nil)

// NewReader creates a reader on the given chapter.
func NewReader(sess *session.Session, chapter int) *ReaderScreen {
	meta, ok := quran.SurahByNumber(chapter)
	if !ok {
		meta, _ = quran.SurahByNumber(1)
		chapter = 1
	}
	return &ReaderScreen{
		sess:    sess,
		chapter: chapter,
		meta:    meta,
		tafsir:  make(map[int]string),
	}
}

func (r *ReaderScreen) Title() string {
	return fmt.Sprintf("%s · %s", r.meta.Name, r.meta.Meaning)
}

// Init persists the reading position and starts the first verse fetch.
func (r *ReaderScreen) Init() tea.Cmd {
	r.loading = true

	sess := r.sess
	chapter := r.chapter
	persist := func() tea.Msg {
		sess.Profile().SetReadingPosition(chapter, 1)
		return savedMsg{Err: sess.Persist(context.Background())}
	}

	return tea.Batch(persist, r.fetch(1))
}

func (r *ReaderScreen) fetch(start int) tea.Cmd {
	gw := r.sess.Gateway
	chapter := r.chapter

	count := verseBatch
	if remaining := r.meta.AyahCount - start + 1; remaining < count {
		count = remaining
	}
	if count <= 0 {
		return nil
	}

	return func() tea.Msg {
		return versesMsg{
			Surah: chapter,
			Start: start,
			Ayahs: gw.ChapterVerses(context.Background(), chapter, start, count),
		}
	}
}

func (r *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case versesMsg:
		// Results for a chapter the reader has left are stale. So is a
		// batch that does not continue the run we hold: a popped reader's
		// fetch can land on a fresh reader opened on the same chapter.
		if msg.Surah != r.chapter || msg.Start != len(r.ayahs)+1 {
			return r, nil
		}
		r.loading = false
		r.fetched = true
		r.ayahs = append(r.ayahs, msg.Ayahs...)
		return r, nil

	case tafsirMsg:
		if msg.Surah != r.chapter {
			return r, nil
		}
		r.tafsir[msg.Ayah] = msg.Text
		r.tafsirOpen = msg.Ayah
		return r, nil

	case savedMsg:
		if msg.Err != nil {
			r.notice = "could not save progress"
		}
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r *ReaderScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
			r.tafsirOpen = 0
		}
	case "down", "j":
		if r.selected < len(r.ayahs)-1 {
			r.selected++
			r.tafsirOpen = 0
		} else if r.moreAvailable() && !r.loading {
			r.loading = true
			return r, r.fetch(len(r.ayahs) + 1)
		}
	case "t":
		return r, r.toggleTafsir()
	case "b":
		return r, r.bookmark()
	case "f":
		return r, r.toggleAyahFavorite()
	case "s":
		return r, r.toggleSurahFavorite()
	case "n":
		return r.jump(r.chapter + 1)
	case "p":
		return r.jump(r.chapter - 1)
	}
	return r, nil
}

func (r *ReaderScreen) moreAvailable() bool {
	return len(r.ayahs) < r.meta.AyahCount
}

// jump switches the reader to another chapter in place.
func (r *ReaderScreen) jump(chapter int) (screen.Screen, tea.Cmd) {
	if chapter < 1 || chapter > len(quran.Surahs) {
		return r, nil
	}
	fresh := NewReader(r.sess, chapter)
	return fresh, fresh.Init()
}

func (r *ReaderScreen) toggleTafsir() tea.Cmd {
	a, ok := r.current()
	if !ok {
		return nil
	}

	if r.tafsirOpen == a.NumberInSurah {
		r.tafsirOpen = 0
		return nil
	}
	if _, cached := r.tafsir[a.NumberInSurah]; cached {
		r.tafsirOpen = a.NumberInSurah
		return nil
	}

	gw := r.sess.Gateway
	chapter := r.chapter
	ayah := a.NumberInSurah
	return func() tea.Msg {
		return tafsirMsg{
			Surah: chapter,
			Ayah:  ayah,
			Text:  gw.Tafsir(context.Background(), chapter, ayah),
		}
	}
}

func (r *ReaderScreen) bookmark() tea.Cmd {
	a, ok := r.current()
	if !ok {
		return nil
	}
	r.sess.Profile().AddBookmark(r.chapter, a.NumberInSurah, a.Translation)
	r.notice = fmt.Sprintf("bookmarked %d:%d", r.chapter, a.NumberInSurah)
	return r.persist()
}

func (r *ReaderScreen) toggleAyahFavorite() tea.Cmd {
	a, ok := r.current()
	if !ok {
		return nil
	}
	if r.sess.Profile().ToggleAyahFavorite(r.chapter, a.NumberInSurah, a.Translation) {
		r.notice = fmt.Sprintf("favorited %d:%d", r.chapter, a.NumberInSurah)
	} else {
		r.notice = fmt.Sprintf("unfavorited %d:%d", r.chapter, a.NumberInSurah)
	}
	return r.persist()
}

func (r *ReaderScreen) toggleSurahFavorite() tea.Cmd {
	if r.sess.Profile().ToggleSurahFavorite(r.chapter) {
		r.notice = "surah favorited"
	} else {
		r.notice = "surah unfavorited"
	}
	return r.persist()
}

func (r *ReaderScreen) persist() tea.Cmd {
	sess := r.sess
	return func() tea.Msg {
		return savedMsg{Err: sess.Persist(context.Background())}
	}
}

func (r *ReaderScreen) current() (gateway.Ayah, bool) {
	if r.selected < 0 || r.selected >= len(r.ayahs) {
		return gateway.Ayah{}, false
	}
	return r.ayahs[r.selected], true
}

func (r *ReaderScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("Surah %d · %d ayahs · %s", r.meta.Number, r.meta.AyahCount, r.meta.Revelation)
	b.WriteString(theme.Subtitle.Render(header))
	b.WriteString("\n\n")

	if r.fetched && len(r.ayahs) == 0 && !r.loading {
		b.WriteString(theme.Hint.Render("Verses are unavailable right now. Press p/n to try another surah."))
		return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	}

	textWidth := width - 12
	if textWidth < 20 {
		textWidth = 20
	}

	visible := (height - 6) / 4
	if visible < 1 {
		visible = 1
	}
	if r.selected < r.offset {
		r.offset = r.selected
	}
	if r.selected >= r.offset+visible {
		r.offset = r.selected - visible + 1
	}

	end := r.offset + visible
	if end > len(r.ayahs) {
		end = len(r.ayahs)
	}

	for i := r.offset; i < end; i++ {
		a := r.ayahs[i]

		num := fmt.Sprintf("%d:%d", r.chapter, a.NumberInSurah)
		if i == r.selected {
			b.WriteString(theme.Selected.Render("▸ " + num))
		} else {
			b.WriteString(theme.Subtitle.Render("  " + num))
		}
		b.WriteString("\n")

		b.WriteString(theme.ArabicText.Width(textWidth).Render("  " + a.Text))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(textWidth).Render("  " + a.Transliteration))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(textWidth).Render("  " + a.Translation))
		b.WriteString("\n")

		if r.tafsirOpen == a.NumberInSurah {
			if text, ok := r.tafsir[a.NumberInSurah]; ok {
				b.WriteString(theme.Card.Width(textWidth).Render("Tafsir\n\n" + text))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if r.loading {
		b.WriteString(theme.Hint.Render("loading verses..."))
		b.WriteString("\n")
	}
	if r.notice != "" {
		b.WriteString(theme.Subtitle.Render(r.notice))
	}

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (r *ReaderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Verse"},
		{Key: "t", Description: "Tafsir"},
		{Key: "b", Description: "Bookmark"},
		{Key: "f", Description: "Favorite"},
		{Key: "p/n", Description: "Surah"},
		{Key: "Esc", Description: "Back"},
	}
}
