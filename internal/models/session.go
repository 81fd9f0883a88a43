package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the identity established by a successful login. A nil *Session
// means nobody is logged in.
type Session struct {
	ID         uuid.UUID
	Identifier string
	StartedAt  time.Time
}

func NewSession(identifier string) *Session {
	return &Session{
		ID:         uuid.New(),
		Identifier: identifier,
		StartedAt:  time.Now(),
	}
}
