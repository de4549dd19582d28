// Package session holds the state shared across screens for the lifetime of
// a login: the active profile, the profile store, the gateway, and the
// per-login caches.
package session

import (
	"context"

	"github.com/asadk/hikmah/internal/gateway"
	"github.com/asadk/hikmah/internal/profile"
)

// Session is the signed-in state threaded through every screen.
type Session struct {
	Store   *profile.Store
	Gateway *gateway.Service

	active *profile.Profile

	// Hadith cache: the browser refetches only when the cache is empty or
	// the topic changes.
	hadiths     []gateway.Hadith
	hadithTopic string

	// Scholar chat history, kept until logout.
	chat []gateway.ChatMessage
}

// New creates a Session for the given signed-in profile.
func New(store *profile.Store, gw *gateway.Service, active *profile.Profile) *Session {
	return &Session{
		Store:   store,
		Gateway: gw,
		active:  active,
	}
}

// Profile returns the active profile. Never nil while a session exists.
func (s *Session) Profile() *profile.Profile {
	return s.active
}

// Persist writes the active profile to both the durable store and the
// session slot.
func (s *Session) Persist(ctx context.Context) error {
	return s.Store.Persist(ctx, s.active)
}

// Logout clears the session slot. The durable record stays.
func (s *Session) Logout(ctx context.Context) error {
	return s.Store.ClearSession(ctx)
}

// Hadiths returns the cached narrations and the topic they were fetched for.
func (s *Session) Hadiths() ([]gateway.Hadith, string) {
	return s.hadiths, s.hadithTopic
}

// SetHadiths replaces the hadith cache.
func (s *Session) SetHadiths(topic string, hadiths []gateway.Hadith) {
	s.hadithTopic = topic
	s.hadiths = hadiths
}

// Chat returns the scholar conversation so far.
func (s *Session) Chat() []gateway.ChatMessage {
	return s.chat
}

// AppendChat adds one message to the scholar conversation.
func (s *Session) AppendChat(msg gateway.ChatMessage) {
	s.chat = append(s.chat, msg)
}
