package service

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneypad/expense-tracker/internal/core/domain"
	"github.com/moneypad/expense-tracker/internal/core/ports"
)

// stubLedgerRepo is an in-memory LedgerRepository. Like the Mongo adapter it
// hands out owner-scoped views over one shared record set.
type stubLedgerRepo struct {
	records []domain.Transaction
	nextID  int
	clock   time.Time
}

func newStubLedgerRepo() *stubLedgerRepo {
	return &stubLedgerRepo{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *stubLedgerRepo) For(ownerID string) ports.OwnedLedger {
	return &stubOwnedLedger{repo: r, ownerID: ownerID}
}

type stubOwnedLedger struct {
	repo    *stubLedgerRepo
	ownerID string
}

func (l *stubOwnedLedger) Insert(_ context.Context, tx *domain.Transaction) error {
	l.repo.nextID++
	l.repo.clock = l.repo.clock.Add(time.Second)
	tx.ID = "tx_" + strconv.Itoa(l.repo.nextID)
	tx.OwnerID = l.ownerID
	tx.CreatedAt = l.repo.clock
	l.repo.records = append(l.repo.records, *tx)
	return nil
}

func (l *stubOwnedLedger) List(_ context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, tx := range l.repo.records {
		if tx.OwnerID == l.ownerID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (l *stubOwnedLedger) Delete(_ context.Context, id string) error {
	for i, tx := range l.repo.records {
		if tx.ID == id && tx.OwnerID == l.ownerID {
			l.repo.records = append(l.repo.records[:i], l.repo.records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (l *stubOwnedLedger) DeleteAll(_ context.Context) (int64, error) {
	kept := l.repo.records[:0]
	var deleted int64
	for _, tx := range l.repo.records {
		if tx.OwnerID == l.ownerID {
			deleted++
			continue
		}
		kept = append(kept, tx)
	}
	l.repo.records = kept
	return deleted, nil
}

// stubSummaryCache records cache traffic so tests can assert invalidation.
type stubSummaryCache struct {
	entries       map[string]domain.Summary
	invalidations int
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{entries: make(map[string]domain.Summary)}
}

func (c *stubSummaryCache) Get(_ context.Context, ownerID string) (*domain.Summary, error) {
	if s, ok := c.entries[ownerID]; ok {
		return &s, nil
	}
	return nil, nil
}

func (c *stubSummaryCache) Set(_ context.Context, ownerID string, s domain.Summary) error {
	c.entries[ownerID] = s
	return nil
}

func (c *stubSummaryCache) Invalidate(_ context.Context, ownerID string) error {
	c.invalidations++
	delete(c.entries, ownerID)
	return nil
}

func newTestLedgerService() (*LedgerService, *stubLedgerRepo, *stubSummaryCache) {
	repo := newStubLedgerRepo()
	cache := newStubSummaryCache()
	return NewLedgerService(repo, cache, zerolog.Nop()), repo, cache
}

func TestLedgerService_Add_ThenList(t *testing.T) {
	svc, _, _ := newTestLedgerService()
	ctx := context.Background()

	created, err := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "Groceries", Amount: 1200, Type: domain.KindDebit})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.OwnerID != "alice" {
		t.Fatalf("expected owner alice, got %q", created.OwnerID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}

	txs, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	got := txs[0]
	if got.ID != created.ID || got.Desc != "Groceries" || got.Amount != 1200 || got.Type != domain.KindDebit {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestLedgerService_Add_InvalidKind(t *testing.T) {
	svc, repo, _ := newTestLedgerService()

	if _, err := svc.Add(context.Background(), "alice", ports.AddTransactionInput{Amount: 10, Type: "transfer"}); err != domain.ErrInvalidKind {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("store must stay unchanged on validation failure")
	}
}

func TestLedgerService_Add_NegativeAmount(t *testing.T) {
	svc, _, _ := newTestLedgerService()

	if _, err := svc.Add(context.Background(), "alice", ports.AddTransactionInput{Amount: -5, Type: domain.KindDebit}); err != domain.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// Zero stays legal.
	if _, err := svc.Add(context.Background(), "alice", ports.AddTransactionInput{Amount: 0, Type: domain.KindDebit}); err != nil {
		t.Fatalf("zero amount should be accepted, got %v", err)
	}
}

func TestLedgerService_List_NewestFirst(t *testing.T) {
	svc, _, _ := newTestLedgerService()
	ctx := context.Background()

	first, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "t1", Amount: 1, Type: domain.KindCredit})
	second, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "t2", Amount: 2, Type: domain.KindCredit})
	third, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "t3", Amount: 3, Type: domain.KindCredit})

	txs, err := svc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	if txs[0].ID != third.ID || txs[1].ID != second.ID || txs[2].ID != first.ID {
		t.Fatalf("expected [t3 t2 t1], got [%s %s %s]", txs[0].Desc, txs[1].Desc, txs[2].Desc)
	}
}

func TestLedgerService_List_Empty(t *testing.T) {
	svc, _, _ := newTestLedgerService()

	txs, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if txs == nil || len(txs) != 0 {
		t.Fatalf("expected empty slice, got %v", txs)
	}
}

func TestLedgerService_CrossUserIsolation(t *testing.T) {
	svc, _, _ := newTestLedgerService()
	ctx := context.Background()

	// Identical descriptions on purpose: only the owner distinguishes them.
	aliceTx, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "Monthly Salary", Amount: 50000, Type: domain.KindCredit})
	_, _ = svc.Add(ctx, "bob", ports.AddTransactionInput{Desc: "Monthly Salary", Amount: 30000, Type: domain.KindCredit})

	bobTxs, err := svc.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(bobTxs) != 1 {
		t.Fatalf("expected 1 transaction for bob, got %d", len(bobTxs))
	}
	for _, tx := range bobTxs {
		if tx.OwnerID != "bob" {
			t.Fatalf("bob's list leaked record owned by %q", tx.OwnerID)
		}
		if tx.ID == aliceTx.ID {
			t.Fatalf("bob's list contains alice's record")
		}
	}

	// Bob deleting alice's id must not touch her ledger.
	if err := svc.Delete(ctx, "bob", aliceTx.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	aliceTxs, _ := svc.List(ctx, "alice")
	if len(aliceTxs) != 1 {
		t.Fatalf("alice's record was deleted through bob's scope")
	}
}

func TestLedgerService_Delete_Idempotent(t *testing.T) {
	svc, repo, _ := newTestLedgerService()
	ctx := context.Background()

	tx, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "Coffee", Amount: 3, Type: domain.KindDebit})

	if err := svc.Delete(ctx, "alice", tx.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("record not removed")
	}

	// Second delete of the same id: success, no side effect.
	if err := svc.Delete(ctx, "alice", tx.ID); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}

	// Unknown id: also success.
	if err := svc.Delete(ctx, "alice", "tx_999"); err != nil {
		t.Fatalf("delete of unknown id failed: %v", err)
	}
}

func TestLedgerService_Reset(t *testing.T) {
	svc, _, _ := newTestLedgerService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "a", Amount: 1, Type: domain.KindCredit})
	_, _ = svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "b", Amount: 2, Type: domain.KindDebit})
	bobTx, _ := svc.Add(ctx, "bob", ports.AddTransactionInput{Desc: "c", Amount: 3, Type: domain.KindCredit})

	deleted, err := svc.Reset(ctx, "alice")
	if err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", deleted)
	}

	// Idempotent: resetting the now-empty ledger succeeds with zero.
	deleted, err = svc.Reset(ctx, "alice")
	if err != nil {
		t.Fatalf("second Reset returned error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected 0 deletions on empty ledger, got %d", deleted)
	}

	bobTxs, _ := svc.List(ctx, "bob")
	if len(bobTxs) != 1 || bobTxs[0].ID != bobTx.ID {
		t.Fatalf("bob's ledger affected by alice's reset")
	}
}

func TestLedgerService_Summary(t *testing.T) {
	svc, _, _ := newTestLedgerService()
	ctx := context.Background()

	s, err := svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Income != 0 || s.Expense != 0 || s.Balance != 0 {
		t.Fatalf("expected zero summary for empty ledger, got %+v", s)
	}

	_, _ = svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "Monthly Salary", Amount: 50000, Type: domain.KindCredit})
	_, _ = svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "Groceries", Amount: 1200, Type: domain.KindDebit})

	s, err = svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Income != 50000 || s.Expense != 1200 || s.Balance != 48800 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestLedgerService_Summary_CacheInvalidation(t *testing.T) {
	svc, _, cache := newTestLedgerService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "a", Amount: 100, Type: domain.KindCredit})

	if _, err := svc.Summary(ctx, "alice"); err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if _, ok := cache.entries["alice"]; !ok {
		t.Fatalf("expected summary to be cached")
	}

	// A write drops the cached value; the next read reflects it.
	tx, _ := svc.Add(ctx, "alice", ports.AddTransactionInput{Desc: "b", Amount: 40, Type: domain.KindDebit})
	if _, ok := cache.entries["alice"]; ok {
		t.Fatalf("expected cache entry to be invalidated after write")
	}

	s, err := svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Income != 100 || s.Expense != 40 || s.Balance != 60 {
		t.Fatalf("unexpected summary after write: %+v", s)
	}

	if err := svc.Delete(ctx, "alice", tx.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := cache.entries["alice"]; ok {
		t.Fatalf("expected cache entry to be invalidated after delete")
	}
}

func TestLedgerService_Summary_ServedFromCache(t *testing.T) {
	svc, repo, cache := newTestLedgerService()
	ctx := context.Background()

	cache.entries["alice"] = domain.Summary{Income: 7, Expense: 2, Balance: 5}
	// Divergent store state proves the cached value is what gets served.
	repo.records = append(repo.records, domain.Transaction{ID: "tx_raw", OwnerID: "alice", Amount: 999, Type: domain.KindCredit})

	s, err := svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Income != 7 || s.Expense != 2 || s.Balance != 5 {
		t.Fatalf("expected cached summary, got %+v", s)
	}
}
