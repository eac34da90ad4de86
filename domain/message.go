// Package domain contains core concepts of the chat analytics system.
// This file defines the records produced by the parser.
// Records are immutable once parsed; analytics compute derived tables
// instead of mutating them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable parsed chat line.
type Message struct {
	ID      uuid.UUID // unique identifier
	Sender  string
	Content string
	At      time.Time
}
