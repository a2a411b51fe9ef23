package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
)

const EventTypeRenderCompleted = "resume.render.completed"

// RenderEventPayload is the wire form of a render outcome. It carries no
// résumé content.
type RenderEventPayload struct {
	EventType  string    `json:"event_type"`
	EventID    uuid.UUID `json:"event_id"`
	RequestID  string    `json:"request_id"`
	Template   string    `json:"template"`
	Status     string    `json:"status"`
	SizeBytes  int       `json:"size_bytes"`
	DurationMs int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}

func EncodeRenderEvent(entry renderlog.Entry) (kafka.Message, error) {
	value, err := json.Marshal(RenderEventPayload{
		EventType:  EventTypeRenderCompleted,
		EventID:    entry.ID,
		RequestID:  entry.RequestID,
		Template:   entry.Template,
		Status:     string(entry.Status),
		SizeBytes:  entry.SizeBytes,
		DurationMs: entry.DurationMs,
		OccurredAt: entry.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal render event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(entry.ID.String()),
		Value: value,
	}, nil
}

func DecodeRenderEvent(value []byte) (*renderlog.Entry, error) {
	var p RenderEventPayload
	if err := json.Unmarshal(value, &p); err != nil {
		return nil, fmt.Errorf("unmarshal render event: %w", err)
	}
	if p.EventType != EventTypeRenderCompleted {
		return nil, fmt.Errorf("unexpected event type %q", p.EventType)
	}
	if p.EventID == uuid.Nil {
		return nil, fmt.Errorf("render event without id")
	}
	return &renderlog.Entry{
		ID:         p.EventID,
		RequestID:  p.RequestID,
		Template:   p.Template,
		Status:     renderlog.Status(p.Status),
		SizeBytes:  p.SizeBytes,
		DurationMs: p.DurationMs,
		OccurredAt: p.OccurredAt,
	}, nil
}
