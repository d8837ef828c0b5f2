package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/entity"
)

// DefaultRunListLimit is the number of runs listed when no limit is given.
const DefaultRunListLimit = 20

// ListRunsUseCase lists recorded enrichment runs.
type ListRunsUseCase struct {
	runs port.RunHistoryRepository
}

// NewListRunsUseCase creates a new ListRunsUseCase.
func NewListRunsUseCase(runs port.RunHistoryRepository) *ListRunsUseCase {
	return &ListRunsUseCase{runs: runs}
}

// Execute returns the most recent runs, newest first.
func (uc *ListRunsUseCase) Execute(ctx context.Context, limit int) ([]*entity.EnrichSession, error) {
	if limit <= 0 {
		limit = DefaultRunListLimit
	}
	runs, err := uc.runs.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
