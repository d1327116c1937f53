package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomVacant     RoomStatus = "vacant"
	RoomOccupied   RoomStatus = "occupied"
	RoomOutOfOrder RoomStatus = "out-of-order"
)

// OutOfOrderInfo is set on a room only while its status is out-of-order.
type OutOfOrderInfo struct {
	Reason        string     `json:"reason"`
	Details       string     `json:"details,omitempty"`
	EstimatedDate *time.Time `json:"estimatedDate,omitempty"`
	MarkedDate    time.Time  `json:"markedDate"`
	MarkedBy      string     `json:"markedBy"`
}

type Room struct {
	Number    string          `json:"number"`
	Type      string          `json:"type"`
	Rate      decimal.Decimal `json:"rate"`
	MaxGuests int             `json:"maxGuests"`
	Beds      int             `json:"beds"`
	Floor     int             `json:"floor"`
	Status    RoomStatus      `json:"status"`

	// Guest holds the occupant stay id while the room is occupied.
	Guest      *string         `json:"guest"`
	OutOfOrder *OutOfOrderInfo `json:"outOfOrder"`
}
