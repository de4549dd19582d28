// Package quran carries the chapter metadata table and lookup helpers.
// Verse text itself comes from the gateway; only the index lives here.
package quran

import "strings"

// Revelation is where a surah was revealed.
type Revelation string

const (
	Mecca  Revelation = "Meccan"
	Medina Revelation = "Medinan"
)

// Surah is the metadata for one chapter.
type Surah struct {
	Number      int
	Name        string
	EnglishName string
	Meaning     string
	AyahCount   int
	Revelation  Revelation
}

// SurahByNumber returns the chapter with the given number (1..114).
func SurahByNumber(n int) (Surah, bool) {
	if n < 1 || n > len(Surahs) {
		return Surah{}, false
	}
	return Surahs[n-1], true
}

// Search returns the chapters whose name, English name, or meaning contains
// the query, case-insensitively. An empty query returns everything.
func Search(query string) []Surah {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Surahs
	}

	var out []Surah
	for _, s := range Surahs {
		if strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.EnglishName), query) ||
			strings.Contains(strings.ToLower(s.Meaning), query) {
			out = append(out, s)
		}
	}
	return out
}
