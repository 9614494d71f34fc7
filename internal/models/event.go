package models

import "time"

// Event types published after a pereval is written.
const (
	EventPerevalSubmitted = "pereval.submitted"
	EventPerevalUpdated   = "pereval.updated"
)

// PerevalEvent is published to the message broker after a successful commit
type PerevalEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	PerevalID  int64     `json:"pereval_id"`
	UserID     int64     `json:"user_id"`
	Status     Status    `json:"status"`
	Images     int       `json:"images"`
	OccurredAt time.Time `json:"occurred_at"`
}
