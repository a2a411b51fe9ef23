package resume

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/internal/renderer"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

type fakeRenderer struct {
	err error
	at  time.Time
}

func (f *fakeRenderer) Render(rec resume.Record, at time.Time) (*renderer.Output, error) {
	f.at = at
	if f.err != nil {
		return nil, f.err
	}
	return &renderer.Output{
		Data:        []byte("PK-docx"),
		FileName:    renderer.FileName(rec.FirstName, rec.LastName, at),
		ContentType: renderer.ContentType,
		Template:    rec.Template(),
	}, nil
}

type fakePublisher struct {
	mu      sync.Mutex
	entries []renderlog.Entry
	err     error
}

func (f *fakePublisher) PublishRenderEvent(_ context.Context, e renderlog.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return f.err
}

func (f *fakePublisher) published() []renderlog.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]renderlog.Entry(nil), f.entries...)
}

type GenerateResumeSuite struct {
	suite.Suite
	renderer  *fakeRenderer
	publisher *fakePublisher
	uc        *GenerateResumeUseCase
	clock     time.Time
}

func (s *GenerateResumeSuite) SetupTest() {
	s.renderer = &fakeRenderer{}
	s.publisher = &fakePublisher{}
	s.clock = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	s.uc = NewGenerateResumeUseCase(s.renderer, s.publisher, logger.NewNop())
	s.uc.now = func() time.Time { return s.clock }
}

func (s *GenerateResumeSuite) record() resume.Record {
	return resume.Record{SelectedTemplate: "creative", FirstName: "Jane", LastName: "Doe", Email: "j@x.io", PhoneNumber: "1"}
}

func (s *GenerateResumeSuite) TestSuccessPublishesEvent() {
	out, err := s.uc.Execute(context.Background(), GenerateResumeInput{RequestID: "req-1", Record: s.record()})
	s.Require().NoError(err)

	s.Equal("resume-jane-doe-1714564800000.docx", out.FileName)
	s.Equal(resume.TemplateCreative, out.Template)
	s.Equal(s.clock, s.renderer.at)

	s.Eventually(func() bool { return len(s.publisher.published()) == 1 }, time.Second, 10*time.Millisecond)
	e := s.publisher.published()[0]
	s.Equal("req-1", e.RequestID)
	s.Equal("creative", e.Template)
	s.Equal(renderlog.StatusSucceeded, e.Status)
	s.Equal(len("PK-docx"), e.SizeBytes)
	s.Equal(s.clock, e.OccurredAt)
}

func (s *GenerateResumeSuite) TestFailureIsInternalAndPublished() {
	s.renderer.err = renderer.ErrInvalidImage

	out, err := s.uc.Execute(context.Background(), GenerateResumeInput{Record: s.record()})
	s.Nil(out)
	s.ErrorIs(err, apperror.ErrInternal)
	s.ErrorIs(err, renderer.ErrInvalidImage)

	s.Eventually(func() bool { return len(s.publisher.published()) == 1 }, time.Second, 10*time.Millisecond)
	e := s.publisher.published()[0]
	s.Equal(renderlog.StatusFailed, e.Status)
	s.Zero(e.SizeBytes)
}

func (s *GenerateResumeSuite) TestPublisherErrorDoesNotFailRender() {
	s.publisher.err = errors.New("kafka down")

	_, err := s.uc.Execute(context.Background(), GenerateResumeInput{Record: s.record()})
	s.NoError(err)
}

func (s *GenerateResumeSuite) TestNilPublisher() {
	uc := NewGenerateResumeUseCase(s.renderer, nil, logger.NewNop())
	_, err := uc.Execute(context.Background(), GenerateResumeInput{Record: s.record()})
	s.NoError(err)
}

func TestGenerateResumeSuite(t *testing.T) {
	suite.Run(t, new(GenerateResumeSuite))
}

func TestGenerateResumeWithRealRenderer(t *testing.T) {
	uc := NewGenerateResumeUseCase(renderer.New(), nil, logger.NewNop())
	out, err := uc.Execute(context.Background(), GenerateResumeInput{Record: resume.Record{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PhoneNumber: "1",
	}})
	require.NoError(t, err)
	assert.Equal(t, resume.TemplateModern, out.Template)
	assert.NotEmpty(t, out.Data)
	assert.Equal(t, renderer.ContentType, out.ContentType)
}

type fakeStats struct {
	counts map[string]int64
	err    error
}

func (f *fakeStats) Increment(context.Context, *renderlog.Entry) error { return nil }

func (f *fakeStats) Counts(context.Context) (map[string]int64, error) { return f.counts, f.err }

func TestGetRenderStats(t *testing.T) {
	uc := NewGetRenderStatsUseCase(&fakeStats{counts: map[string]int64{"modern:succeeded": 3}})
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Counts["modern:succeeded"])

	_, err = NewGetRenderStatsUseCase(nil).Execute(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnavailable)

	_, err = NewGetRenderStatsUseCase(&fakeStats{err: errors.New("conn refused")}).Execute(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

type fakeRepo struct {
	entries []*renderlog.Entry
	limit   int
}

func (f *fakeRepo) Save(context.Context, *renderlog.Entry) error { return nil }

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]*renderlog.Entry, error) {
	f.limit = limit
	return f.entries, nil
}

func TestListRenders(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewListRendersUseCase(repo)

	out, err := uc.Execute(context.Background(), ListRendersInput{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.limit)
	assert.NotNil(t, out.Entries)

	_, err = uc.Execute(context.Background(), ListRendersInput{Limit: MaxListLimit + 1})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = NewListRendersUseCase(nil).Execute(context.Background(), ListRendersInput{Limit: 5})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestRenderFeed(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	repo := &fakeRepo{entries: []*renderlog.Entry{{
		ID: id, Template: "creative", Status: renderlog.StatusSucceeded, SizeBytes: 8192, DurationMs: 14, OccurredAt: at,
	}}}
	uc := NewRenderFeedUseCase(NewListRendersUseCase(repo), logger.NewNop())

	feed, err := uc.Execute(context.Background(), RenderFeedInput{BaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, repo.limit)
	assert.Equal(t, "http://localhost:8080/api/resume/renders", feed.Link.Href)
	assert.Equal(t, at, feed.Updated)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "urn:uuid:"+id.String(), feed.Items[0].Id)
	assert.Equal(t, "creative render succeeded", feed.Items[0].Title)
	assert.Equal(t, "8192 bytes in 14 ms", feed.Items[0].Description)

	atom, err := feed.ToAtom()
	require.NoError(t, err)
	assert.Contains(t, atom, "<title>creative render succeeded</title>")

	_, err = NewRenderFeedUseCase(NewListRendersUseCase(nil), logger.NewNop()).
		Execute(context.Background(), RenderFeedInput{})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

type publishSeen struct {
	spanID trace.SpanID
	err    error
}

// blockingPublisher waits for release before reporting the context it got.
type blockingPublisher struct {
	release chan struct{}
	seen    chan publishSeen
}

func (p *blockingPublisher) PublishRenderEvent(ctx context.Context, _ renderlog.Entry) error {
	<-p.release
	p.seen <- publishSeen{spanID: trace.SpanContextFromContext(ctx).SpanID(), err: ctx.Err()}
	return nil
}

func TestGenerateResumePublishesInsideRenderSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	pub := &blockingPublisher{release: make(chan struct{}), seen: make(chan publishSeen, 1)}
	uc := NewGenerateResumeUseCase(&fakeRenderer{}, pub, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	_, err := uc.Execute(ctx, GenerateResumeInput{RequestID: "req-1", Record: resume.Record{FirstName: "Ada", LastName: "Lovelace"}})
	require.NoError(t, err)
	cancel()
	close(pub.release)

	var got publishSeen
	select {
	case got = <-pub.seen:
	case <-time.After(2 * time.Second):
		t.Fatal("render event was not published")
	}

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "resume.render", spans[0].Name())
	assert.Equal(t, spans[0].SpanContext().SpanID(), got.spanID)
	assert.NoError(t, got.err, "request cancellation must not abort the publish")
}
