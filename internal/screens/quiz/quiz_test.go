package quiz

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

// quizReply builds a two-question round where the first option is always
// the correct one.
func quizReply() llm.MockReply {
	payload := map[string]any{
		"questions": []map[string]any{
			{
				"question":      "Which prophet built the Kaaba with his son?",
				"options":       []string{"Ibrahim (AS)", "Musa (AS)", "Isa (AS)", "Nuh (AS)"},
				"correctAnswer": 0,
				"explanation":   "Ibrahim and Ismail raised the foundations of the House.",
			},
			{
				"question":      "How many obligatory prayers are there each day?",
				"options":       []string{"Five", "Three", "Seven", "Four"},
				"correctAnswer": 0,
				"explanation":   "The five daily prayers were prescribed during the Miraj.",
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return llm.MockReply{Text: raw}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestFullRoundRecordsScore(t *testing.T) {
	sess := newTestSession(quizReply())
	q := New(sess)
	q.Update(q.Init()())

	if q.phase != phaseQuestion {
		t.Fatalf("expected question phase after load, got %v", q.phase)
	}

	// Answer the first question correctly (option 0 is selected by default).
	q.Update(enter())
	if q.phase != phaseExplain {
		t.Fatalf("expected explanation after answering, got %v", q.phase)
	}
	if q.score != 1 {
		t.Errorf("expected score 1, got %d", q.score)
	}

	// Continue, then answer the second question incorrectly.
	q.Update(enter())
	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	q.Update(enter())
	if q.score != 1 {
		t.Errorf("expected score to stay at 1, got %d", q.score)
	}

	// Continue past the last explanation to finish the round.
	_, cmd := q.Update(enter())
	if q.phase != phaseDone {
		t.Fatalf("expected done phase, got %v", q.phase)
	}
	if cmd == nil {
		t.Fatal("expected a persist command at round end")
	}
	if msg, ok := cmd().(savedMsg); !ok || msg.Err != nil {
		t.Errorf("expected clean save, got %v", msg)
	}

	if sess.Profile().QuizScore != 1 {
		t.Errorf("expected best score 1, got %d", sess.Profile().QuizScore)
	}
	if !q.newBest {
		t.Error("expected a first score to count as a new best")
	}
}

func TestLowerScoreKeepsBest(t *testing.T) {
	sess := newTestSession(quizReply())
	sess.Profile().RecordQuizScore(2)

	q := New(sess)
	q.Update(q.Init()())

	// Answer both questions incorrectly.
	for i := 0; i < 2; i++ {
		q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		q.Update(enter())
		q.Update(enter())
	}

	if sess.Profile().QuizScore != 2 {
		t.Errorf("expected best score to stay 2, got %d", sess.Profile().QuizScore)
	}
	if q.newBest {
		t.Error("a zero round must not count as a new best")
	}
}

func TestGenerationFailure(t *testing.T) {
	sess := newTestSession() // empty mock queue
	q := New(sess)
	q.Update(q.Init()())

	if q.phase != phaseDone || !q.failed {
		t.Fatalf("expected failed done state, got phase %v failed %v", q.phase, q.failed)
	}

	// r retries with a fresh fetch.
	_, cmd := q.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	if q.phase != phaseLoading {
		t.Errorf("expected loading phase on retry, got %v", q.phase)
	}
}
