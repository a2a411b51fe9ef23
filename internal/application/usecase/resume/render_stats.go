package resume

import (
	"context"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
)

type GetRenderStatsUseCase struct {
	stats renderlog.StatsStore
}

func NewGetRenderStatsUseCase(stats renderlog.StatsStore) *GetRenderStatsUseCase {
	return &GetRenderStatsUseCase{stats: stats}
}

type GetRenderStatsOutput struct {
	Counts map[string]int64
}

func (uc *GetRenderStatsUseCase) Execute(ctx context.Context) (*GetRenderStatsOutput, error) {
	if uc.stats == nil {
		return nil, apperror.NewUnavailable("render stats", nil)
	}
	counts, err := uc.stats.Counts(ctx)
	if err != nil {
		return nil, apperror.NewUnavailable("render stats", err)
	}
	return &GetRenderStatsOutput{Counts: counts}, nil
}
