package ports

import (
	"context"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

// AddTransactionInput carries the caller-supplied fields of a new entry.
type AddTransactionInput struct {
	Desc   string
	Amount float64
	Type   domain.Kind
}

type LedgerService interface {
	Add(ctx context.Context, ownerID string, input AddTransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	Delete(ctx context.Context, ownerID, transactionID string) error
	Reset(ctx context.Context, ownerID string) (int64, error)
	Summary(ctx context.Context, ownerID string) (domain.Summary, error)
}
