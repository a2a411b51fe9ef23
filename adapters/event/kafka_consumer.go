package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RenderEventHandler processes one decoded render event.
type RenderEventHandler func(ctx context.Context, entry *renderlog.Entry) error

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = 500 * time.Millisecond
)

// ErrRetriesExhausted is returned by Run when a message kept failing. Its
// offset stays uncommitted, so the next session starts from it.
var ErrRetriesExhausted = errors.New("render event retries exhausted")

type RenderEventConsumer struct {
	reader      messageReader
	logger      logger.Logger
	maxAttempts int
	retryDelay  time.Duration
}

func NewRenderEventConsumer(cfg config.Config, log logger.Logger) (*RenderEventConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = TopicResumeEvents
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &RenderEventConsumer{
		reader:      reader,
		logger:      log.With(zap.String("topic", topic)),
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}, nil
}

// Run consumes until ctx is cancelled. Undecodable and rejected events are
// committed and skipped. Any other handler error is retried with a doubling
// delay; a message that still fails stops Run without being committed, so
// nothing after it is committed either.
func (c *RenderEventConsumer) Run(ctx context.Context, handle RenderEventHandler) error {
	c.logger.Info("Worker listening for render events")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return err
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		entry, err := DecodeRenderEvent(msg.Value)
		if err != nil {
			c.logger.Warn("Skipping undecodable event", zap.String("key", string(msg.Key)), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		err = c.handleWithRetry(ctx, handle, entry)
		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrInvalidInput):
			c.logger.Warn("Skipping rejected event", zap.String("event_id", entry.ID.String()), zap.Error(err))
		case ctx.Err() != nil:
			return nil
		default:
			return fmt.Errorf("%w: offset %d: %w", ErrRetriesExhausted, msg.Offset, err)
		}
		c.commit(ctx, msg)
	}
}

func (c *RenderEventConsumer) handleWithRetry(ctx context.Context, handle RenderEventHandler, entry *renderlog.Entry) error {
	attempts := max(c.maxAttempts, 1)
	delay := c.retryDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = handle(ctx, entry)
		if err == nil || errors.Is(err, apperror.ErrInvalidInput) {
			return err
		}
		c.logger.Error("Failed to process render event", err,
			zap.String("event_id", entry.ID.String()),
			zap.Int("attempt", attempt),
		)
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}

func (c *RenderEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *RenderEventConsumer) Close() error {
	return c.reader.Close()
}
