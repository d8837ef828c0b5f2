package port

import (
	"context"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// RunHistoryRepository records finished enrichment runs.
type RunHistoryRepository interface {
	Save(ctx context.Context, run *entity.EnrichSession) error
	Recent(ctx context.Context, limit int) ([]*entity.EnrichSession, error)
}
