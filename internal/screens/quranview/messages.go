package quranview

import "github.com/asadk/hikmah/internal/gateway"

// versesMsg delivers a fetched run of verses. Surah tags the chapter the
// fetch was for so results arriving after the reader moved on are dropped.
type versesMsg struct {
	Surah int
	Start int
	Ayahs []gateway.Ayah
}

// tafsirMsg delivers the commentary for one verse.
type tafsirMsg struct {
	Surah int
	Ayah  int
	Text  string
}

// savedMsg confirms the profile write after a reading-position change.
type savedMsg struct {
	Err error
}
