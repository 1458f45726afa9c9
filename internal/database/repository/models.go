package repository

import "time"

// Slot is one persisted value of a session.
type Slot struct {
	SessionID string
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// SessionInfo summarizes the slots held by one session.
type SessionInfo struct {
	SessionID string
	Slots     int
	UpdatedAt time.Time
}
