package domain

import (
	"errors"
	"time"
)

// Kind classifies a ledger entry: credit increases the balance, debit
// decreases it. No other value is permitted.
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

var ErrInvalidKind = errors.New("type must be credit or debit")
var ErrInvalidAmount = errors.New("amount must not be negative")

// Valid reports whether k is one of the two permitted kinds.
func (k Kind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Transaction is a single ledger entry. OwnerID is set once at creation and
// never reassigned; a transaction is visible to and mutable by its owner only.
type Transaction struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"ownerId" bson:"owner_id"`
	Desc      string    `json:"desc" bson:"desc"`
	Amount    float64   `json:"amount" bson:"amount"`
	Type      Kind      `json:"type" bson:"type"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
