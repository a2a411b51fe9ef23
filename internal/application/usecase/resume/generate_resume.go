package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/application/service"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/internal/domain/resume"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

const (
	tracerName     = "github.com/khoahotran/resume-studio/usecase/resume"
	publishTimeout = 5 * time.Second
)

type GenerateResumeUseCase struct {
	renderer  service.ResumeRenderer
	publisher service.RenderEventPublisher
	logger    logger.Logger
	now       func() time.Time
}

// NewGenerateResumeUseCase wires the renderer. publisher may be nil, in which
// case no render events are emitted.
func NewGenerateResumeUseCase(r service.ResumeRenderer, pub service.RenderEventPublisher, log logger.Logger) *GenerateResumeUseCase {
	return &GenerateResumeUseCase{
		renderer:  r,
		publisher: pub,
		logger:    log,
		now:       time.Now,
	}
}

type GenerateResumeInput struct {
	RequestID string
	Record    resume.Record
}

type GenerateResumeOutput struct {
	Data        []byte
	FileName    string
	ContentType string
	Template    resume.Template
}

func (uc *GenerateResumeUseCase) Execute(ctx context.Context, input GenerateResumeInput) (*GenerateResumeOutput, error) {
	tpl := input.Record.Template()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "resume.render")
	defer span.End()
	span.SetAttributes(attribute.String("resume.template", string(tpl)))

	started := uc.now()
	out, err := uc.renderer.Render(input.Record, started)

	entry := renderlog.Entry{
		ID:         uuid.New(),
		RequestID:  input.RequestID,
		Template:   string(tpl),
		Status:     renderlog.StatusSucceeded,
		DurationMs: uc.now().Sub(started).Milliseconds(),
		OccurredAt: started.UTC(),
	}

	if err != nil {
		entry.Status = renderlog.StatusFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		uc.publish(ctx, entry)
		return nil, apperror.NewInternal("failed to render resume", err)
	}

	entry.SizeBytes = len(out.Data)
	span.SetAttributes(attribute.Int("resume.size_bytes", entry.SizeBytes))
	uc.publish(ctx, entry)

	return &GenerateResumeOutput{
		Data:        out.Data,
		FileName:    out.FileName,
		ContentType: out.ContentType,
		Template:    out.Template,
	}, nil
}

// publish is fire-and-forget; a broken event pipeline never fails a render.
// The publish context keeps the render span but not the request's deadline.
func (uc *GenerateResumeUseCase) publish(ctx context.Context, entry renderlog.Entry) {
	if uc.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		if err := uc.publisher.PublishRenderEvent(ctx, entry); err != nil {
			uc.logger.Error("Failed to publish render event", err,
				zap.String("event_id", entry.ID.String()),
				zap.String("status", string(entry.Status)),
			)
		}
	}()
}
