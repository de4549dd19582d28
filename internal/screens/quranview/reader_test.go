package quranview

import (
	"fmt"
	"testing"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/llm"
	"github.com/asadk/hikmah/internal/profile"
	"github.com/asadk/hikmah/internal/session"
	"github.com/asadk/hikmah/internal/storage"
)

func newTestSession(replies ...llm.MockReply) *session.Session {
	store := profile.NewStore(storage.NewMemStore(), storage.NewMemStore())
	gw := gateway.NewService(llm.NewMockClient(replies...))
	return session.New(store, gw, profile.New("tester", "secret"))
}

func verseRun(surah, start, count int) []gateway.Ayah {
	out := make([]gateway.Ayah, count)
	for i := range out {
		n := start + i
		out[i] = gateway.Ayah{
			Surah:         surah,
			NumberInSurah: n,
			Text:          fmt.Sprintf("آية %d", n),
			Translation:   fmt.Sprintf("verse %d", n),
		}
	}
	return out
}

func TestVerseBatchAppends(t *testing.T) {
	r := NewReader(newTestSession(), 2)

	r.Update(versesMsg{Surah: 2, Start: 1, Ayahs: verseRun(2, 1, verseBatch)})
	if len(r.ayahs) != verseBatch {
		t.Fatalf("first batch: got %d ayahs, want %d", len(r.ayahs), verseBatch)
	}

	r.Update(versesMsg{Surah: 2, Start: 16, Ayahs: verseRun(2, 16, verseBatch)})
	if len(r.ayahs) != 2*verseBatch {
		t.Fatalf("second batch: got %d ayahs, want %d", len(r.ayahs), 2*verseBatch)
	}
	if r.ayahs[verseBatch].NumberInSurah != 16 {
		t.Errorf("batch boundary ayah = %d, want 16", r.ayahs[verseBatch].NumberInSurah)
	}
}

func TestOtherChapterBatchDropped(t *testing.T) {
	r := NewReader(newTestSession(), 2)

	r.Update(versesMsg{Surah: 3, Start: 1, Ayahs: verseRun(3, 1, verseBatch)})
	if len(r.ayahs) != 0 {
		t.Fatalf("got %d ayahs from another chapter, want 0", len(r.ayahs))
	}
}

func TestDuplicateBatchDropped(t *testing.T) {
	// A reader popped mid-fetch leaves a command in flight; when the user
	// reopens the same chapter, that batch lands on the fresh reader after
	// its own. It must not double up the verse run.
	r := NewReader(newTestSession(), 2)

	batch := versesMsg{Surah: 2, Start: 1, Ayahs: verseRun(2, 1, verseBatch)}
	r.Update(batch)
	r.Update(batch)

	if len(r.ayahs) != verseBatch {
		t.Fatalf("got %d ayahs after duplicate delivery, want %d", len(r.ayahs), verseBatch)
	}
	for i, a := range r.ayahs {
		if a.NumberInSurah != i+1 {
			t.Fatalf("ayah at index %d has number %d, want %d", i, a.NumberInSurah, i+1)
		}
	}
}

func TestStaleTafsirDropped(t *testing.T) {
	r := NewReader(newTestSession(), 2)
	r.Update(versesMsg{Surah: 2, Start: 1, Ayahs: verseRun(2, 1, verseBatch)})

	r.Update(tafsirMsg{Surah: 3, Ayah: 1, Text: "commentary for another chapter"})
	if r.tafsirOpen != 0 {
		t.Error("tafsir from another chapter opened a panel")
	}

	r.Update(tafsirMsg{Surah: 2, Ayah: 1, Text: "commentary"})
	if r.tafsirOpen != 1 {
		t.Errorf("tafsirOpen = %d, want 1", r.tafsirOpen)
	}
	if r.tafsir[1] != "commentary" {
		t.Errorf("tafsir cache = %q, want %q", r.tafsir[1], "commentary")
	}
}
