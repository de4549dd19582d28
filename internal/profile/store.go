package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/asadk/hikmah/internal/storage"
)

// Store is the durable username→profile map plus the single active-session
// slot. The durable port holds every registered profile as one JSON blob
// under storage.UsersKey; the session port mirrors the active profile under
// storage.SessionKey. Single-writer by design: every mutation happens in
// direct response to a user event in the one running process.
type Store struct {
	durable storage.Port
	session storage.Port
}

// NewStore creates a Store over the two storage ports.
func NewStore(durable, session storage.Port) *Store {
	return &Store{durable: durable, session: session}
}

// Register creates a profile for username and establishes it as the active
// session. Fails with ErrDuplicateUsername when the name is taken and
// ErrEmptyInput when either field is blank.
func (s *Store) Register(ctx context.Context, username, password string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyInput
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := users[username]; exists {
		return nil, ErrDuplicateUsername
	}

	p := New(username, password)
	users[username] = p
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := s.writeSession(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Authenticate checks the credentials against the durable map and, on
// success, establishes the active session. The stored password must match
// exactly. A failed attempt does not alter the session slot.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrEmptyInput
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := users[username]
	if !ok || p.Password != password {
		return nil, ErrInvalidCredentials
	}
	if err := s.writeSession(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreSession loads the active profile from the session slot, if one
// exists. Credentials are not re-validated: a present slot means a prior
// successful login in this browsing session. Returns (nil, nil) when no
// session is stored.
func (s *Store) RestoreSession(ctx context.Context) (*Profile, error) {
	raw, ok, err := s.session.Get(ctx, storage.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse session slot: %w", err)
	}
	migrate(&p)
	return &p, nil
}

// Persist overwrites the profile in both the durable map and the session
// slot, keyed by p.Username. Full-record overwrite, last write wins;
// callers construct the complete updated record.
func (s *Store) Persist(ctx context.Context, p *Profile) error {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	users[p.Username] = p
	if err := s.saveUsers(ctx, users); err != nil {
		return err
	}
	return s.writeSession(ctx, p)
}

// ClearSession drops the active session slot. The durable map is untouched.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.session.Delete(ctx, storage.SessionKey); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}

// Profiles returns every registered profile sorted by username.
func (s *Store) Profiles(ctx context.Context) ([]*Profile, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Profile, 0, len(users))
	for _, p := range users {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// Wipe deletes every registered profile and clears the session slot.
func (s *Store) Wipe(ctx context.Context) error {
	if err := s.durable.Delete(ctx, storage.UsersKey); err != nil {
		return fmt.Errorf("delete users blob: %w", err)
	}
	return s.ClearSession(ctx)
}

func (s *Store) loadUsers(ctx context.Context) (map[string]*Profile, error) {
	raw, ok, err := s.durable.Get(ctx, storage.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read users blob: %w", err)
	}
	if !ok {
		return make(map[string]*Profile), nil
	}

	users := make(map[string]*Profile)
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse users blob: %w", err)
	}
	for _, p := range users {
		migrate(p)
	}
	return users, nil
}

func (s *Store) saveUsers(ctx context.Context, users map[string]*Profile) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users blob: %w", err)
	}
	if err := s.durable.Set(ctx, storage.UsersKey, raw); err != nil {
		return fmt.Errorf("write users blob: %w", err)
	}
	return nil
}

func (s *Store) writeSession(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	if err := s.session.Set(ctx, storage.SessionKey, raw); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

// migrate upgrades records written before the favorites and bookmarks
// fields existed. Runs once per load rather than as null checks at call
// sites.
func migrate(p *Profile) {
	if p.Favorites == nil {
		p.Favorites = []Favorite{}
	}
	if p.Bookmarks == nil {
		p.Bookmarks = []Bookmark{}
	}
}
