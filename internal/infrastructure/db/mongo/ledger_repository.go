package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moneypad/expense-tracker/internal/core/domain"
	"github.com/moneypad/expense-tracker/internal/core/ports"
)

const transactionsCollection = "transactions"

// LedgerRepository is the MongoDB-backed transaction store. It only hands out
// owner-scoped views; the owner filter is injected into every query built by
// the view, so no caller can reach another user's records.
type LedgerRepository struct {
	coll *mongo.Collection
}

func NewLedgerRepository(db *mongo.Database) *LedgerRepository {
	return &LedgerRepository{coll: db.Collection(transactionsCollection)}
}

// For returns the ledger view scoped to ownerID.
func (r *LedgerRepository) For(ownerID string) ports.OwnedLedger {
	return &ownedLedger{coll: r.coll, ownerID: ownerID}
}

// EnsureIndexes creates the compound index that backs the scoped
// newest-first listing.
func (r *LedgerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

type ownedLedger struct {
	coll    *mongo.Collection
	ownerID string
}

type mongoTransaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Desc      string             `bson:"desc"`
	Amount    float64            `bson:"amount"`
	Type      string             `bson:"type"`
	CreatedAt time.Time          `bson:"created_at"`
}

// filter returns the owner-scoped query, merged with any extra criteria.
func (l *ownedLedger) filter(extra bson.M) bson.M {
	f := bson.M{"owner_id": l.ownerID}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

func (l *ownedLedger) Insert(ctx context.Context, tx *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoTransaction{
		OwnerID:   l.ownerID,
		Desc:      tx.Desc,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		CreatedAt: now,
	}

	res, err := l.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	tx.OwnerID = l.ownerID
	tx.CreatedAt = now
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tx.ID = oid.Hex()
	}
	return nil
}

func (l *ownedLedger) List(ctx context.Context) ([]domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := l.coll.Find(ctx, l.filter(nil), opts)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cur.Close(ctx)

	txs := make([]domain.Transaction, 0)
	for cur.Next(ctx) {
		var mt mongoTransaction
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		txs = append(txs, domain.Transaction{
			ID:        mt.ID.Hex(),
			OwnerID:   mt.OwnerID,
			Desc:      mt.Desc,
			Amount:    mt.Amount,
			Type:      domain.Kind(mt.Type),
			CreatedAt: mt.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (l *ownedLedger) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Unparseable ids cannot name an existing record; same no-op
		// outcome as a missing one.
		return nil
	}

	if _, err := l.coll.DeleteOne(ctx, l.filter(bson.M{"_id": oid})); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (l *ownedLedger) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := l.coll.DeleteMany(ctx, l.filter(nil))
	if err != nil {
		return 0, fmt.Errorf("reset ledger: %w", err)
	}
	return res.DeletedCount, nil
}
