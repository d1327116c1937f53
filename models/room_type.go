package models

import "github.com/shopspring/decimal"

// RoomType is the template a room is created from. Rooms copy rate and
// capacity at creation, so editing a type never reprices existing rooms.
type RoomType struct {
	Type      string          `json:"type"`
	Rate      decimal.Decimal `json:"rate"`
	MaxGuests int             `json:"maxGuests"`
	Beds      int             `json:"beds"`
}
