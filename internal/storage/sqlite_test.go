package storage

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, UsersKey)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected absent key before first write")
	}

	if err := s.Set(ctx, UsersKey, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, UsersKey)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("got %q", got)
	}

	// Overwrite replaces.
	if err := s.Set(ctx, UsersKey, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = s.Get(ctx, UsersKey)
	if string(got) != `{"a":2}` {
		t.Errorf("after overwrite got %q", got)
	}

	if err := s.Delete(ctx, UsersKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = s.Get(ctx, UsersKey)
	if ok {
		t.Error("expected key gone after delete")
	}

	// Deleting again is fine.
	if err := s.Delete(ctx, UsersKey); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestGatewayEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryGatewayEvents(ctx, "", 10)
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	err = repo.AppendGatewayEvent(ctx, GatewayEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "verses",
		InputTokens:  100,
		OutputTokens: 250,
		LatencyMs:    420,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendGatewayEvent(ctx, GatewayEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append 2: %v", err)
	}

	events, err = repo.QueryGatewayEvents(ctx, "", 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "quiz" {
		t.Errorf("expected newest first, got %q", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("expected failed event")
	}
	if events[1].OutputTokens != 250 {
		t.Errorf("output tokens = %d, want 250", events[1].OutputTokens)
	}

	events, _ = repo.QueryGatewayEvents(ctx, "", 1)
	if len(events) != 1 {
		t.Errorf("limit 1: got %d events", len(events))
	}
}

func TestGatewayEventPurposeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"verses", "verses", "verses", "quiz", "quiz"} {
		err := repo.AppendGatewayEvent(ctx, GatewayEventData{
			Provider: "mock", Model: "mock", Purpose: purpose, Success: true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	// The two newest rows overall are quiz; the limit must apply after
	// the purpose filter, not before.
	events, err := repo.QueryGatewayEvents(ctx, "verses", 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.Purpose != "verses" {
			t.Errorf("purpose = %q, want verses", e.Purpose)
		}
	}

	events, _ = repo.QueryGatewayEvents(ctx, "quiz", 0)
	if len(events) != 2 {
		t.Errorf("quiz events = %d, want 2", len(events))
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	_, ok, err := fs.Get(ctx, SessionKey)
	if err != nil || ok {
		t.Fatalf("empty get: ok=%v err=%v", ok, err)
	}

	if err := fs.Set(ctx, SessionKey, []byte(`{"username":"amina"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := fs.Get(ctx, SessionKey)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"username":"amina"}` {
		t.Errorf("got %q", got)
	}

	if err := fs.Delete(ctx, SessionKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = fs.Get(ctx, SessionKey)
	if ok {
		t.Error("expected session cleared")
	}
	if err := fs.Delete(ctx, SessionKey); err != nil {
		t.Errorf("delete absent: %v", err)
	}
}
