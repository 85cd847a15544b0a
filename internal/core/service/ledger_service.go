package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moneypad/expense-tracker/internal/api/metrics"
	"github.com/moneypad/expense-tracker/internal/core/domain"
	"github.com/moneypad/expense-tracker/internal/core/ports"
)

// LedgerService implements the per-user transaction ledger. Every store
// access goes through an owner-scoped view obtained from the repository, so
// callers can only ever see or touch their own records.
type LedgerService struct {
	repo   ports.LedgerRepository
	cache  ports.SummaryCache
	logger zerolog.Logger
}

func NewLedgerService(repo ports.LedgerRepository, cache ports.SummaryCache, logger zerolog.Logger) *LedgerService {
	return &LedgerService{repo: repo, cache: cache, logger: logger}
}

// Add creates a transaction owned by ownerID. The kind must be credit or
// debit and the amount must not be negative; createdAt is assigned by the
// store at insert time.
func (s *LedgerService) Add(ctx context.Context, ownerID string, input ports.AddTransactionInput) (*domain.Transaction, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidKind
	}
	if input.Amount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx := &domain.Transaction{
		OwnerID: ownerID,
		Desc:    input.Desc,
		Amount:  input.Amount,
		Type:    input.Type,
	}

	if err := s.repo.For(ownerID).Insert(ctx, tx); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to insert transaction")
		return nil, err
	}

	s.invalidateSummary(ctx, ownerID)
	metrics.TransactionsCreatedTotal.WithLabelValues(string(tx.Type)).Inc()
	s.logger.Info().Str("transaction_id", tx.ID).Str("owner_id", ownerID).Str("type", string(tx.Type)).Msg("transaction created")
	return tx, nil
}

// List returns the owner's transactions, most recent first.
func (s *LedgerService) List(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txs, err := s.repo.For(ownerID).List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list transactions")
		return nil, err
	}
	return txs, nil
}

// Delete removes the transaction when it exists and belongs to ownerID.
// A missing or foreign id succeeds with no side effect: the caller cannot
// tell "not found" from "not yours", and repeated deletes of the same id all
// succeed. This mirrors the reference system and avoids leaking which ids
// exist in other users' ledgers.
func (s *LedgerService) Delete(ctx context.Context, ownerID, transactionID string) error {
	if err := s.repo.For(ownerID).Delete(ctx, transactionID); err != nil {
		s.logger.Error().Err(err).Str("transaction_id", transactionID).Str("owner_id", ownerID).Msg("failed to delete transaction")
		return err
	}

	s.invalidateSummary(ctx, ownerID)
	metrics.TransactionsDeletedTotal.Inc()
	return nil
}

// Reset removes the owner's entire ledger and reports how many records were
// removed. Resetting an empty ledger succeeds with zero deletions.
func (s *LedgerService) Reset(ctx context.Context, ownerID string) (int64, error) {
	deleted, err := s.repo.For(ownerID).DeleteAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to reset ledger")
		return 0, err
	}

	s.invalidateSummary(ctx, ownerID)
	metrics.LedgerResetsTotal.Inc()
	s.logger.Info().Str("owner_id", ownerID).Int64("deleted", deleted).Msg("ledger reset")
	return deleted, nil
}

// Summary aggregates the owner's ledger. The result is served from the cache
// when present; cache failures fall back to recomputation.
func (s *LedgerService) Summary(ctx context.Context, ownerID string) (domain.Summary, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, ownerID); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache read failed")
		} else if cached != nil {
			return *cached, nil
		}
	}

	txs, err := s.repo.For(ownerID).List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to load ledger for summary")
		return domain.Summary{}, err
	}

	summary := domain.Summarize(txs)

	if s.cache != nil {
		if err := s.cache.Set(ctx, ownerID, summary); err != nil {
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

func (s *LedgerService) invalidateSummary(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("summary cache invalidation failed")
	}
}
