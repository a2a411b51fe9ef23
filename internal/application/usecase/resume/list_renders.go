package resume

import (
	"context"
	"fmt"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ListRendersUseCase struct {
	repo renderlog.Repository
}

func NewListRendersUseCase(repo renderlog.Repository) *ListRendersUseCase {
	return &ListRendersUseCase{repo: repo}
}

type ListRendersInput struct {
	Limit int
}

type ListRendersOutput struct {
	Entries []*renderlog.Entry
}

func (uc *ListRendersUseCase) Execute(ctx context.Context, input ListRendersInput) (*ListRendersOutput, error) {
	if uc.repo == nil {
		return nil, apperror.NewUnavailable("render log", nil)
	}

	limit := input.Limit
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit < 0 || limit > MaxListLimit:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("limit must be between 1 and %d", MaxListLimit), nil)
	}

	entries, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to list renders", err)
	}
	if entries == nil {
		entries = []*renderlog.Entry{}
	}
	return &ListRendersOutput{Entries: entries}, nil
}
