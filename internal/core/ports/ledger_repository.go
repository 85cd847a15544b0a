package ports

import (
	"context"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

// LedgerRepository hands out owner-scoped views of the transaction store.
// Callers never touch the raw collection: every query issued through an
// OwnedLedger carries the owner filter, so no new code path can forget it.
type LedgerRepository interface {
	For(ownerID string) OwnedLedger
}

// OwnedLedger is the set of store operations available on one user's ledger.
type OwnedLedger interface {
	// Insert persists tx and fills in its assigned ID. The owner is forced
	// to the view's owner regardless of what tx carries.
	Insert(ctx context.Context, tx *domain.Transaction) error

	// List returns the owner's transactions ordered by creation time
	// descending. An empty ledger yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Transaction, error)

	// Delete removes the transaction with the given id when it exists and
	// belongs to the owner. A missing or foreign id is a no-op, not an
	// error.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every transaction in the ledger and returns how
	// many were removed. Deleting an empty ledger returns zero.
	DeleteAll(ctx context.Context) (int64, error)
}
