package hadith

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"

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

func hadithReply(english string) llm.MockReply {
	payload := map[string]any{
		"hadiths": []map[string]any{{
			"source":   "Sahih Bukhari",
			"narrator": "Abu Hurairah (RA)",
			"arabic":   "إنما الأعمال بالنيات",
			"english":  english,
			"grade":    "Sahih",
		}},
	}
	raw, _ := json.Marshal(payload)
	return llm.MockReply{Text: raw}
}

func TestFetchOnFirstOpen(t *testing.T) {
	sess := newTestSession(hadithReply("Actions are judged by intentions."))
	h := New(sess)

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a fetch command when the cache is empty")
	}
	h.Update(cmd())

	if len(h.hadiths) != 1 {
		t.Fatalf("expected 1 hadith, got %d", len(h.hadiths))
	}
	cached, topic := sess.Hadiths()
	if len(cached) != 1 {
		t.Errorf("expected hadiths cached on the session, got %d", len(cached))
	}
	if topic != "faith" {
		t.Errorf("expected cached topic 'faith', got %q", topic)
	}
}

func TestWarmCacheSkipsFetch(t *testing.T) {
	sess := newTestSession(hadithReply("first batch"))
	h := New(sess)
	h.Update(h.Init()())

	reopened := New(sess)
	if reopened.Init() != nil {
		t.Error("expected no fetch command when the session cache is warm")
	}
	if len(reopened.hadiths) != 1 {
		t.Errorf("expected cached hadiths on reopen, got %d", len(reopened.hadiths))
	}
}

func TestEnterOnSameTopicDoesNotRefetch(t *testing.T) {
	sess := newTestSession(hadithReply("only batch"))
	h := New(sess)
	h.Update(h.Init()())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no fetch for the already-loaded topic")
	}
}

func TestTopicChangeRefetches(t *testing.T) {
	sess := newTestSession(hadithReply("on faith"), hadithReply("on prayer"))
	h := New(sess)
	h.Update(h.Init()())

	h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a fetch command after changing topic")
	}
	h.Update(cmd())

	_, topic := sess.Hadiths()
	if topic != "prayer" {
		t.Errorf("expected cached topic 'prayer', got %q", topic)
	}
	if h.hadiths[0].English != "on prayer" {
		t.Errorf("expected the new batch, got %q", h.hadiths[0].English)
	}
}

func TestSlowBatchForOldTopicDropped(t *testing.T) {
	sess := newTestSession(hadithReply("on faith"), hadithReply("on prayer"))
	h := New(sess)
	faithMsg := h.Init()()

	// Change topic before the first batch is delivered.
	h.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, prayerCmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	h.Update(prayerCmd())
	h.Update(faithMsg)

	if h.topic != "prayer" {
		t.Fatalf("topic = %q, want prayer", h.topic)
	}
	if h.hadiths[0].English != "on prayer" {
		t.Errorf("expected the prayer batch to stick, got %q", h.hadiths[0].English)
	}
	_, cached := sess.Hadiths()
	if cached != "prayer" {
		t.Errorf("cached topic = %q, want prayer", cached)
	}
}

func TestFailureShowsEmptyState(t *testing.T) {
	sess := newTestSession() // empty mock queue, every call fails
	h := New(sess)
	h.Update(h.Init()())

	if len(h.hadiths) != 0 {
		t.Errorf("expected no hadiths on failure, got %d", len(h.hadiths))
	}
	if h.loading {
		t.Error("expected loading to clear after a failed fetch")
	}
}
