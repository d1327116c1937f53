package services

import (
	"iter"

	"hotel-frontdesk/models"
)

// TransactionLog is the append-only history of check-ins and check-outs.
// Insertion order is chronological order.
type TransactionLog struct {
	state *models.HotelState
}

func NewTransactionLog(state *models.HotelState) *TransactionLog {
	return &TransactionLog{state: state}
}

func (l *TransactionLog) Append(tx models.Transaction) {
	l.state.Transactions = append(l.state.Transactions, tx)
}

func (l *TransactionLog) Len() int {
	return len(l.state.Transactions)
}

// Query yields matching entries in insertion order. Each range over the
// returned sequence scans the log again.
func (l *TransactionLog) Query(match func(models.Transaction) bool) iter.Seq[models.Transaction] {
	return func(yield func(models.Transaction) bool) {
		for _, tx := range l.state.Transactions {
			if match != nil && !match(tx) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Recent returns the last n entries, most recent first.
func (l *TransactionLog) Recent(n int) []models.Transaction {
	return lastN(l.state.Transactions, n)
}

func lastN(txs []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}
	if n > len(txs) {
		n = len(txs)
	}
	out := make([]models.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}
	return out
}

func OfType(t models.TransactionType) func(models.Transaction) bool {
	return func(tx models.Transaction) bool { return tx.Type == t }
}
