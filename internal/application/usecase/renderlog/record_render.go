package renderlog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

// RecordRenderUseCase stores a render event in the log and bumps its counter.
// Either backend may be nil.
type RecordRenderUseCase struct {
	repo   renderlog.Repository
	stats  renderlog.StatsStore
	logger logger.Logger
}

func NewRecordRenderUseCase(repo renderlog.Repository, stats renderlog.StatsStore, log logger.Logger) *RecordRenderUseCase {
	return &RecordRenderUseCase{repo: repo, stats: stats, logger: log}
}

func (uc *RecordRenderUseCase) Execute(ctx context.Context, entry *renderlog.Entry) error {
	if entry == nil || entry.Template == "" {
		return apperror.NewInvalidInput("render event without template", nil)
	}
	if entry.Status != renderlog.StatusSucceeded && entry.Status != renderlog.StatusFailed {
		return apperror.NewInvalidInput(fmt.Sprintf("unknown render status %q", entry.Status), nil)
	}

	if uc.repo != nil {
		if err := uc.repo.Save(ctx, entry); err != nil {
			return fmt.Errorf("save render log: %w", err)
		}
	}

	// The log row is the source of truth; a lost counter increment is only logged.
	if uc.stats != nil {
		if err := uc.stats.Increment(ctx, entry); err != nil {
			uc.logger.Warn("Failed to increment render counter",
				zap.String("event_id", entry.ID.String()),
				zap.String("counter", entry.CounterKey()),
				zap.Error(err),
			)
		}
	}
	return nil
}
