package event

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

func sampleEntry() renderlog.Entry {
	return renderlog.Entry{
		ID:         uuid.New(),
		RequestID:  "req-9",
		Template:   "executive",
		Status:     renderlog.StatusSucceeded,
		SizeBytes:  12345,
		DurationMs: 18,
		OccurredAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderEventRoundTrip(t *testing.T) {
	entry := sampleEntry()

	msg, err := EncodeRenderEvent(entry)
	require.NoError(t, err)
	assert.Equal(t, entry.ID.String(), string(msg.Key))
	assert.Contains(t, string(msg.Value), `"event_type":"resume.render.completed"`)

	decoded, err := DecodeRenderEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, entry, *decoded)
}

func TestDecodeRenderEventRejects(t *testing.T) {
	for _, v := range []string{
		`not json`,
		`{"event_type":"post.created","event_id":"` + uuid.NewString() + `"}`,
		`{"event_type":"resume.render.completed"}`,
	} {
		_, err := DecodeRenderEvent([]byte(v))
		assert.Error(t, err, v)
	}
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestPublishRenderEvent(t *testing.T) {
	w := &fakeWriter{}
	c := &KafkaProducerClient{ResumeEventsWriter: w, logger: logger.NewNop()}

	require.NoError(t, c.PublishRenderEvent(context.Background(), sampleEntry()))
	require.Len(t, w.msgs, 1)

	w.err = errors.New("broker down")
	assert.ErrorIs(t, c.PublishRenderEvent(context.Background(), sampleEntry()), w.err)
	c.Close()
}

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func encodedAt(t *testing.T, offset int64) kafka.Message {
	t.Helper()
	m, err := EncodeRenderEvent(sampleEntry())
	require.NoError(t, err)
	m.Offset = offset
	return m
}

func newTestConsumer(r messageReader, attempts int) *RenderEventConsumer {
	return &RenderEventConsumer{reader: r, logger: logger.NewNop(), maxAttempts: attempts, retryDelay: time.Millisecond}
}

func TestConsumerRun(t *testing.T) {
	garbage := kafka.Message{Offset: 4, Value: []byte("{")}
	reader := &fakeReader{queue: []kafka.Message{encodedAt(t, 1), encodedAt(t, 2), encodedAt(t, 3), garbage}}
	consumer := newTestConsumer(reader, 3)

	var calls int
	err := consumer.Run(context.Background(), func(_ context.Context, e *renderlog.Entry) error {
		calls++
		switch calls {
		case 2:
			return apperror.NewInvalidInput("bad status", nil)
		case 3:
			return errors.New("db down")
		}
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	// offset 3 fails once and succeeds on retry
	assert.Equal(t, 4, calls)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumerRun_StopsWithoutCommittingPastAFailure(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{encodedAt(t, 1), encodedAt(t, 2), encodedAt(t, 3)}}
	consumer := newTestConsumer(reader, 2)

	var calls int
	err := consumer.Run(context.Background(), func(_ context.Context, e *renderlog.Entry) error {
		calls++
		if calls > 1 {
			return errors.New("db down")
		}
		return nil
	})

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Contains(t, err.Error(), "offset 2")
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int64{1}, reader.committed)
	// offset 3 was never fetched
	assert.Len(t, reader.queue, 1)
}

func TestConsumerRun_CancelDuringRetry(t *testing.T) {
	reader := &fakeReader{queue: []kafka.Message{encodedAt(t, 1)}}
	consumer := &RenderEventConsumer{reader: reader, logger: logger.NewNop(), maxAttempts: 5, retryDelay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	err := consumer.Run(ctx, func(context.Context, *renderlog.Entry) error {
		cancel()
		return errors.New("db down")
	})

	assert.NoError(t, err)
	assert.Empty(t, reader.committed)
}
