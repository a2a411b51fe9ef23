package service

import (
	"context"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
)

// RenderEventPublisher ships render outcomes to whoever records them.
type RenderEventPublisher interface {
	PublishRenderEvent(ctx context.Context, entry renderlog.Entry) error
}
