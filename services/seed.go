package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"hotel-frontdesk/models"
)

const DefaultHotelName = "HotelM8"

type SeedOptions struct {
	HotelName     string
	VATRate       decimal.Decimal
	AdminPassword string
	IDs           IDGenerator
}

// DefaultRoomTypes is the inventory template rooms are seeded from.
func DefaultRoomTypes() []models.RoomType {
	return []models.RoomType{
		{Type: "Standard", Rate: decimal.NewFromInt(2500), MaxGuests: 2, Beds: 1},
		{Type: "Deluxe", Rate: decimal.NewFromInt(4500), MaxGuests: 4, Beds: 2},
		{Type: "Suite", Rate: decimal.NewFromInt(7500), MaxGuests: 4, Beds: 2},
	}
}

// NewInitialState builds the fixed inventory: 30 rooms over 6 floors with
// types assigned round-robin, plus the default admin account.
func NewInitialState(opts SeedOptions) (*models.HotelState, error) {
	if opts.HotelName == "" {
		opts.HotelName = DefaultHotelName
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default admin password: %w", err)
	}

	types := DefaultRoomTypes()
	state := &models.HotelState{
		Rooms:        []models.Room{},
		Guests:       []models.Guest{},
		Transactions: []models.Transaction{},
		Users: []models.User{{
			ID:           opts.IDs.NewID(),
			Username:     "admin",
			PasswordHash: string(hash),
			FullName:     "System Administrator",
			Role:         models.RoleAdmin,
			IsActive:     true,
		}},
		Settings: models.HotelSetting{
			HotelName: opts.HotelName,
			VATRate:   opts.VATRate,
		},
		RoomTypes: types,
	}

	floors := [][]string{
		{"101", "102", "103", "104", "105"},
		{"106", "107", "108", "109", "110"},
		{"201", "202", "203", "204", "205"},
		{"206", "207", "208", "209", "210"},
		{"301", "302", "303", "304", "305"},
		{"306", "307", "308", "309", "310"},
	}
	for f, numbers := range floors {
		for i, number := range numbers {
			rt := types[i%len(types)]
			state.Rooms = append(state.Rooms, models.Room{
				Number:    number,
				Type:      rt.Type,
				Rate:      rt.Rate,
				MaxGuests: rt.MaxGuests,
				Beds:      rt.Beds,
				Floor:     f + 1,
				Status:    models.RoomVacant,
			})
		}
	}
	return state, nil
}
