// Package events publishes front-desk stay events to a message broker so
// downstream consumers (housekeeping, accounting) can react without reading
// the hotel state.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hotel-frontdesk/models"
)

// StayEvent is published for every check-in and check-out transaction.
type StayEvent struct {
	TransactionID string                 `json:"transaction_id"`
	Type          models.TransactionType `json:"type"`
	GuestID       string                 `json:"guest_id"`
	GuestName     string                 `json:"guest_name"`
	Room          string                 `json:"room"`
	Amount        decimal.Decimal        `json:"amount"`
	Operator      string                 `json:"operator"`
	OccurredAt    time.Time              `json:"occurred_at"`
}

func NewStayEvent(tx models.Transaction, guestName string) StayEvent {
	return StayEvent{
		TransactionID: tx.ID,
		Type:          tx.Type,
		GuestID:       tx.GuestID,
		GuestName:     guestName,
		Room:          tx.Room,
		Amount:        tx.Amount,
		Operator:      tx.User,
		OccurredAt:    tx.Date.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event StayEvent) error
	Close() error
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, StayEvent) error { return nil }
func (NopPublisher) Close() error                              { return nil }
