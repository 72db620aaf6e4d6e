// Package session keeps the client's signed-in state. The Gatekeeper is the
// single owner of the current session: commands ask it for the session,
// sign-in and sign-out go through it, and interested parties subscribe to
// its events instead of polling.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated session as issued by the server.
type Session struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ExpiresWithin reports whether the access token expires before now+d.
func (s *Session) ExpiresWithin(now time.Time, d time.Duration) bool {
	return !s.ExpiresAt.After(now.Add(d))
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// EventType is the kind of session change.
type EventType int

const (
	SignedIn EventType = iota + 1
	SignedOut
	Refreshed
)

func (t EventType) String() string {
	switch t {
	case SignedIn:
		return "SIGNED_IN"
	case SignedOut:
		return "SIGNED_OUT"
	case Refreshed:
		return "TOKEN_REFRESHED"
	default:
		return "UNKNOWN"
	}
}

// Event is published on every session change. Session is nil for SignedOut.
type Event struct {
	Type    EventType
	Session *Session
}
