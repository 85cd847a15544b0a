package ports

import (
	"context"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

// SummaryCache is a best-effort cache of per-user summaries. A failing cache
// must never fail a request: callers fall back to recomputation on Get errors
// and ignore Set/Invalidate errors beyond logging.
type SummaryCache interface {
	Get(ctx context.Context, ownerID string) (*domain.Summary, error)
	Set(ctx context.Context, ownerID string, summary domain.Summary) error
	Invalidate(ctx context.Context, ownerID string) error
}
