package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type GuestStatus string

const (
	GuestCheckedIn  GuestStatus = "checked-in"
	GuestCheckedOut GuestStatus = "checked-out"
)

// GuestInfo is the contact and identification data captured at the desk.
type GuestInfo struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address,omitempty"`
	IDType          string `json:"idType,omitempty"`
	IDNumber        string `json:"idNumber,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Guest is one stay record. It is created at check-in and closed once at
// check-out; records are never removed.
type Guest struct {
	ID string `json:"id"`
	GuestInfo

	Room     string          `json:"room"`
	CheckIn  time.Time       `json:"checkIn"`
	Nights   int             `json:"nights"`
	Adults   int             `json:"adults"`
	Children int             `json:"children"`
	RoomRate decimal.Decimal `json:"roomRate"`
	Status   GuestStatus     `json:"status"`

	CheckOut     *time.Time       `json:"checkOut,omitempty"`
	TotalBill    *decimal.Decimal `json:"totalBill,omitempty"`
	ExtraCharges *decimal.Decimal `json:"extraCharges,omitempty"`
}

func (g Guest) TotalGuests() int {
	return g.Adults + g.Children
}
