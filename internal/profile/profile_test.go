package profile

import "testing"

func TestToggleSurahFavoriteRoundTrip(t *testing.T) {
	p := New("amina", "pw")

	if !p.ToggleSurahFavorite(36) {
		t.Fatal("first toggle should pin")
	}
	if len(p.Favorites) != 1 {
		t.Fatalf("favorites = %d, want 1", len(p.Favorites))
	}
	if !p.HasSurahFavorite(36) {
		t.Error("HasSurahFavorite(36) = false after pin")
	}

	// Toggling the same chapter again returns the set to its original state.
	if p.ToggleSurahFavorite(36) {
		t.Fatal("second toggle should unpin")
	}
	if len(p.Favorites) != 0 {
		t.Fatalf("favorites = %d after round trip, want 0", len(p.Favorites))
	}
}

func TestToggleFavoriteUniqueness(t *testing.T) {
	p := New("amina", "pw")

	p.ToggleSurahFavorite(1)
	p.ToggleAyahFavorite(2, 255, "Ayat al-Kursi")
	p.ToggleAyahFavorite(2, 255, "different snippet") // same identity, unpins
	p.ToggleSurahFavorite(2)

	if len(p.Favorites) != 2 {
		t.Fatalf("favorites = %d, want 2", len(p.Favorites))
	}
	// A surah favorite and an ayah favorite in the same chapter are distinct.
	p.ToggleAyahFavorite(2, 255, "Ayat al-Kursi")
	if len(p.Favorites) != 3 {
		t.Fatalf("favorites = %d, want 3", len(p.Favorites))
	}

	seen := map[string]bool{}
	for _, f := range p.Favorites {
		if f.ID == "" {
			t.Error("favorite without id")
		}
		if seen[f.ID] {
			t.Error("duplicate favorite id")
		}
		seen[f.ID] = true
	}
}

func TestTasbihCounter(t *testing.T) {
	p := New("amina", "pw")

	const n = 33
	for range n {
		p.IncrementTasbih()
	}
	if p.TasbihCount != n {
		t.Errorf("count = %d, want %d", p.TasbihCount, n)
	}

	p.ResetTasbih()
	if p.TasbihCount != 0 {
		t.Errorf("count after reset = %d, want 0", p.TasbihCount)
	}

	p.ResetTasbih()
	if p.TasbihCount != 0 {
		t.Errorf("reset at zero = %d, want 0", p.TasbihCount)
	}
}

func TestQuizScoreHighWaterMark(t *testing.T) {
	p := New("amina", "pw")
	p.QuizScore = 5

	if !p.RecordQuizScore(7) {
		t.Error("score 7 over 5 should record")
	}
	if p.QuizScore != 7 {
		t.Errorf("score = %d, want 7", p.QuizScore)
	}

	if p.RecordQuizScore(3) {
		t.Error("score 3 under 7 should not record")
	}
	if p.QuizScore != 7 {
		t.Errorf("score = %d after lower attempt, want 7", p.QuizScore)
	}

	// Equal score is not an improvement.
	if p.RecordQuizScore(7) {
		t.Error("equal score should not record")
	}
}

func TestBookmarksAppendOnly(t *testing.T) {
	p := New("amina", "pw")

	p.AddBookmark(18, 10, "cave story")
	p.AddBookmark(18, 10, "") // duplicate position is allowed

	if len(p.Bookmarks) != 2 {
		t.Fatalf("bookmarks = %d, want 2", len(p.Bookmarks))
	}
	if p.Bookmarks[0].Note != "cave story" {
		t.Errorf("note = %q", p.Bookmarks[0].Note)
	}
}
