package session

import (
	"context"
	"testing"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/profile"
	"github.com/asadk/hikmah/internal/storage"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	store := profile.NewStore(storage.NewMemStore(), storage.NewMemStore())
	p, err := store.Register(context.Background(), "amina", "pass123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return New(store, nil, p)
}

func TestHadithCache(t *testing.T) {
	s := newTestSession(t)

	if cached, _ := s.Hadiths(); cached != nil {
		t.Fatal("expected empty cache")
	}

	batch := []gateway.Hadith{{ID: "1", Source: "Sahih Bukhari", Grade: "Sahih"}}
	s.SetHadiths("prayer", batch)

	cached, topic := s.Hadiths()
	if topic != "prayer" || len(cached) != 1 {
		t.Fatalf("unexpected cache state: topic=%q len=%d", topic, len(cached))
	}
}

func TestChatHistoryAppends(t *testing.T) {
	s := newTestSession(t)

	s.AppendChat(gateway.ChatMessage{Role: gateway.RoleUser, Detail: "question"})
	s.AppendChat(gateway.ChatMessage{Role: gateway.RoleScholar, Verdict: "yes", Detail: "because"})

	chat := s.Chat()
	if len(chat) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat))
	}
	if chat[0].Role != gateway.RoleUser || chat[1].Role != gateway.RoleScholar {
		t.Fatalf("unexpected roles: %v %v", chat[0].Role, chat[1].Role)
	}
}

func TestPersistAndLogout(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Profile().IncrementTasbih()
	if err := s.Persist(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}

	restored, err := s.Store.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil || restored.TasbihCount != 1 {
		t.Fatalf("expected restored count 1, got %+v", restored)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	restored, err = s.Store.RestoreSession(ctx)
	if err != nil {
		t.Fatalf("restore after logout: %v", err)
	}
	if restored != nil {
		t.Fatal("expected no session after logout")
	}
}
