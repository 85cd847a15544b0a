package domain

// Summary is the aggregate view of a ledger: total income, total expense, and
// their difference.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summarize folds a list of transactions into a Summary. An empty list yields
// the zero Summary.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case KindCredit:
			s.Income += tx.Amount
		case KindDebit:
			s.Expense += tx.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}
