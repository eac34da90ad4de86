package domain

import (
	"time"

	"github.com/google/uuid"
)

type CallStatus string

const (
	CallCompleted CallStatus = "Completed"
	CallMissed    CallStatus = "Missed"
)

// Call represents a parsed video-call announcement.
// Invariant: a missed call always has DurationMinutes == 0.
type Call struct {
	ID              uuid.UUID
	Initiator       string
	DurationMinutes int
	Status          CallStatus
	At              time.Time
}
