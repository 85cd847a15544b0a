package handler

import (
	"time"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

type addTransactionRequest struct {
	Desc   string  `json:"desc"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Type   string  `json:"type"   validate:"required,oneof=credit debit"`
}

type transactionResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Desc      string    `json:"desc"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type summaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type resetResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		OwnerID:   tx.OwnerID,
		Desc:      tx.Desc,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		CreatedAt: tx.CreatedAt,
	}
}
