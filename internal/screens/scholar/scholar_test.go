package scholar

import (
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

func typeQuestion(s *ScholarScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestAskAppendsBothSides(t *testing.T) {
	reply := llm.MockReply{Text: []byte("Yes, it is permissible.|||The evidence comes from the Sunnah.")}
	sess := newTestSession(reply)
	s := New(sess)

	typeQuestion(s, "May I combine prayers while travelling?")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an ask command on enter")
	}
	if !s.waiting {
		t.Error("expected waiting state while the question is in flight")
	}

	s.Update(cmd())

	chat := sess.Chat()
	if len(chat) != 2 {
		t.Fatalf("expected question and answer in history, got %d messages", len(chat))
	}
	if chat[0].Role != gateway.RoleUser {
		t.Errorf("expected first message from the user, got %q", chat[0].Role)
	}
	if chat[1].Verdict != "Yes, it is permissible." {
		t.Errorf("unexpected verdict %q", chat[1].Verdict)
	}
	if chat[1].Detail != "The evidence comes from the Sunnah." {
		t.Errorf("unexpected detail %q", chat[1].Detail)
	}
	if s.waiting {
		t.Error("expected waiting to clear once the answer lands")
	}
}

func TestEmptyQuestionIgnored(t *testing.T) {
	sess := newTestSession()
	s := New(sess)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for an empty question")
	}
	if len(sess.Chat()) != 0 {
		t.Errorf("expected empty history, got %d messages", len(sess.Chat()))
	}
}

func TestGatewayFailureShowsApology(t *testing.T) {
	sess := newTestSession() // empty mock queue, the ask fails
	s := New(sess)

	typeQuestion(s, "A question")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd())

	chat := sess.Chat()
	if len(chat) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat))
	}
	if chat[1].Verdict != "" {
		t.Errorf("expected no verdict on failure, got %q", chat[1].Verdict)
	}
	if chat[1].Detail == "" {
		t.Error("expected the apology fallback as detail")
	}
}
