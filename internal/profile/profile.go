package profile

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteType distinguishes the two favorite variants.
type FavoriteType string

const (
	FavoriteSurah FavoriteType = "surah"
	FavoriteAyah  FavoriteType = "ayah"
)

// AyahRef identifies a single verse, with an optional text snippet.
type AyahRef struct {
	Surah int    `json:"surah"`
	Ayah  int    `json:"ayah"`
	Text  string `json:"text,omitempty"`
}

// Favorite is a pinned reference to either a chapter or a specific verse.
// For FavoriteSurah only SurahRef is set; for FavoriteAyah only AyahRef.
type Favorite struct {
	ID        string       `json:"id"`
	Type      FavoriteType `json:"type"`
	SurahRef  int          `json:"surahRef,omitempty"`
	AyahRef   *AyahRef     `json:"ayahRef,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// Bookmark is a saved reading position with an optional note.
type Bookmark struct {
	Surah     int    `json:"surah"`
	Ayah      int    `json:"ayah"`
	Note      string `json:"note,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Profile is the durable record describing one registered user's
// preferences and progress.
type Profile struct {
	Username      string     `json:"username"`
	Password      string     `json:"password"`
	CreatedAt     int64      `json:"createdAt"`
	LastReadSurah int        `json:"lastReadSurah"`
	LastReadAyah  int        `json:"lastReadAyah"`
	Bookmarks     []Bookmark `json:"bookmarks"`
	Favorites     []Favorite `json:"favorites"`
	TasbihCount   int        `json:"tasbihCount"`
	Theme         string     `json:"theme"`
	FontSize      int        `json:"fontSize"`
	QuizScore     int        `json:"quizScore"`
}

// New creates a fresh profile with all counters zeroed and empty collections.
func New(username, password string) *Profile {
	return &Profile{
		Username:      username,
		Password:      password,
		CreatedAt:     time.Now().UnixMilli(),
		LastReadSurah: 1,
		LastReadAyah:  1,
		Bookmarks:     []Bookmark{},
		Favorites:     []Favorite{},
		Theme:         "dark",
		FontSize:      18,
	}
}

// SetReadingPosition records the most recent reading position.
func (p *Profile) SetReadingPosition(surah, ayah int) {
	p.LastReadSurah = surah
	p.LastReadAyah = ayah
}

// AddBookmark appends a bookmark. No de-duplication: the list is
// append-only from the user's perspective.
func (p *Profile) AddBookmark(surah, ayah int, note string) {
	p.Bookmarks = append(p.Bookmarks, Bookmark{
		Surah:     surah,
		Ayah:      ayah,
		Note:      note,
		Timestamp: time.Now().UnixMilli(),
	})
}

// ToggleSurahFavorite pins the chapter if not pinned, unpins it if it is.
// Returns true when the chapter is pinned after the call.
func (p *Profile) ToggleSurahFavorite(surah int) bool {
	for i, f := range p.Favorites {
		if f.Type == FavoriteSurah && f.SurahRef == surah {
			p.Favorites = append(p.Favorites[:i], p.Favorites[i+1:]...)
			return false
		}
	}
	p.Favorites = append(p.Favorites, Favorite{
		ID:        uuid.New().String(),
		Type:      FavoriteSurah,
		SurahRef:  surah,
		Timestamp: time.Now().UnixMilli(),
	})
	return true
}

// ToggleAyahFavorite pins the verse if not pinned, unpins it if it is.
// Identity is (surah, ayah); the text snippet is display-only.
func (p *Profile) ToggleAyahFavorite(surah, ayah int, text string) bool {
	for i, f := range p.Favorites {
		if f.Type == FavoriteAyah && f.AyahRef != nil &&
			f.AyahRef.Surah == surah && f.AyahRef.Ayah == ayah {
			p.Favorites = append(p.Favorites[:i], p.Favorites[i+1:]...)
			return false
		}
	}
	p.Favorites = append(p.Favorites, Favorite{
		ID:        uuid.New().String(),
		Type:      FavoriteAyah,
		AyahRef:   &AyahRef{Surah: surah, Ayah: ayah, Text: text},
		Timestamp: time.Now().UnixMilli(),
	})
	return true
}

// HasSurahFavorite reports whether the chapter is pinned.
func (p *Profile) HasSurahFavorite(surah int) bool {
	for _, f := range p.Favorites {
		if f.Type == FavoriteSurah && f.SurahRef == surah {
			return true
		}
	}
	return false
}

// IncrementTasbih bumps the counter by one.
func (p *Profile) IncrementTasbih() {
	p.TasbihCount++
}

// ResetTasbih zeroes the counter regardless of its prior value.
func (p *Profile) ResetTasbih() {
	p.TasbihCount = 0
}

// RecordQuizScore updates the stored high score only when score exceeds it.
// Returns true when a new high score was recorded.
func (p *Profile) RecordQuizScore(score int) bool {
	if score > p.QuizScore {
		p.QuizScore = score
		return true
	}
	return false
}
