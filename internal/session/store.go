package session

import (
	"context"
	"errors"
	"time"

	"triage/internal/models"
)

var (
	// ErrNotFound is returned when a session does not exist
	ErrNotFound = errors.New("session not found")

	// ErrVersionConflict is returned when an update races with another writer
	ErrVersionConflict = errors.New("session version conflict")
)

// Session is the transient state of one conversational triage flow.
// The triage engine itself is stateless; this is the caller-side record
// that threads the accumulating history between HTTP requests.
type Session struct {
	ID               string          `json:"id"`
	InitialComplaint string          `json:"initial_complaint"`
	History          []models.QAPair `json:"history"`
	CurrentStep      int             `json:"current_step"`

	// PendingQuestions are the questions of the current step, kept so
	// the next request's answers can be paired with them.
	PendingQuestions []models.Question `json:"pending_questions,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Version          int64             `json:"version"` // for optimistic locking
}

// Store persists conversation sessions between requests.
type Store interface {
	// Create stores a new session with Version set to 1.
	Create(ctx context.Context, s *Session) error

	// Get retrieves a session by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Session, error)

	// Update persists a session with optimistic locking: the stored
	// version must match, and is incremented on success.
	Update(ctx context.Context, s *Session) error

	// Delete removes a session by ID.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
