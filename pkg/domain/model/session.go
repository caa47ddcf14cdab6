package model

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
)

// Session represents an authenticated user session. The access token
// carries the session ID so logout can revoke it before expiry.
type Session struct {
	ID        types.SessionID `json:"id"`
	Secret    string          `json:"-"`
	UserID    types.UserID    `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// NewSession creates a new Session with UUID v7 ID and random Secret
func NewSession(userID types.UserID, duration time.Duration) (*Session, error) {
	sessionID, err := types.NewSessionID()
	if err != nil {
		return nil, err
	}

	// 24 bytes = 32 chars in base64
	sessionSecret, err := generateRandomSecret(24)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        sessionID,
		Secret:    sessionSecret,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	}, nil
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if the session is valid (not expired and has proper fields)
func (s *Session) IsValid() bool {
	return s.ID != "" && s.Secret != "" && s.UserID != "" && !s.IsExpired()
}

func generateRandomSecret(byteLength int) (string, error) {
	bytes := make([]byte, byteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// AccessToken is the bearer credential handed out at login
type AccessToken struct {
	Token     string    `json:"access_token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}
