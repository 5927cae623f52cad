package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMinTimerSeconds is the dwell time required between open and confirm.
const DefaultMinTimerSeconds = 10

// BloodPriorityMessage is an urgent message that must be explicitly acknowledged. Immutable once created.
type BloodPriorityMessage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Record converts m to the row image carried by change events.
func (m *BloodPriorityMessage) Record() Record {
	return Record{
		"id":         m.ID.String(),
		"title":      m.Title,
		"body":       m.Body,
		"created_by": m.CreatedBy.String(),
		"created_at": m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ReadState is the acknowledgment state of one (message, user) pair.
type ReadState string

const (
	ReadStateUnopened  ReadState = "unopened"
	ReadStateOpened    ReadState = "opened"
	ReadStateConfirmed ReadState = "confirmed"
)

// BloodPriorityRead tracks the acknowledgment of a message by a user.
type BloodPriorityRead struct {
	ID              uuid.UUID  `json:"id"`
	MessageID       uuid.UUID  `json:"message_id"`
	UserID          uuid.UUID  `json:"user_id"`
	OpenedAt        *time.Time `json:"opened_at,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	MinTimerSeconds int        `json:"min_timer_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
}

// State derives the workflow state. A nil read is Unopened.
func (r *BloodPriorityRead) State() ReadState {
	switch {
	case r == nil || r.OpenedAt == nil:
		return ReadStateUnopened
	case r.ConfirmedAt != nil:
		return ReadStateConfirmed
	default:
		return ReadStateOpened
	}
}

// MinDwell is the minimum time between open and confirm.
func (r *BloodPriorityRead) MinDwell() time.Duration {
	seconds := r.MinTimerSeconds
	if seconds <= 0 {
		seconds = DefaultMinTimerSeconds
	}

	return time.Duration(seconds) * time.Second
}

// DwellRemaining returns how long the user must still wait at now. Zero once elapsed or confirmed.
func (r *BloodPriorityRead) DwellRemaining(now time.Time) time.Duration {
	if r == nil || r.OpenedAt == nil {
		return 0
	}
	if r.ConfirmedAt != nil {
		return 0
	}

	remaining := r.OpenedAt.Add(r.MinDwell()).Sub(now)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Record converts r to the row image carried by change events.
func (r *BloodPriorityRead) Record() Record {
	record := Record{
		"id":                r.ID.String(),
		"message_id":        r.MessageID.String(),
		"user_id":           r.UserID.String(),
		"min_timer_seconds": float64(r.MinTimerSeconds),
		"opened_at":         nil,
		"confirmed_at":      nil,
	}
	if r.OpenedAt != nil {
		record["opened_at"] = r.OpenedAt.UTC().Format(time.RFC3339Nano)
	}
	if r.ConfirmedAt != nil {
		record["confirmed_at"] = r.ConfirmedAt.UTC().Format(time.RFC3339Nano)
	}

	return record
}
