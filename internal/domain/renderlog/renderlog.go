package renderlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Entry describes one render attempt. It never carries résumé content.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	RequestID  string    `json:"request_id"`
	Template   string    `json:"template"`
	Status     Status    `json:"status"`
	SizeBytes  int       `json:"size_bytes"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CounterKey is the stats field an entry increments, e.g. "modern:succeeded".
func (e Entry) CounterKey() string {
	return e.Template + ":" + string(e.Status)
}

type Repository interface {
	Save(ctx context.Context, e *Entry) error
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)
}

type StatsStore interface {
	Increment(ctx context.Context, e *Entry) error
	Counts(ctx context.Context) (map[string]int64, error)
}
