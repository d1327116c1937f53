package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionCheckIn  TransactionType = "check-in"
	TransactionCheckOut TransactionType = "check-out"
)

type Transaction struct {
	ID      string          `json:"id"`
	Type    TransactionType `json:"type"`
	GuestID string          `json:"guestId"`
	Room    string          `json:"room"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	User    string          `json:"user"`
}
