package services

import "hotel-frontdesk/models"

// Hotel owns one HotelState and exposes the front-desk components over it.
// All mutation of the state goes through these components.
type Hotel struct {
	State        *models.HotelState
	Rooms        *RoomRegistry
	Guests       *GuestLedger
	Transactions *TransactionLog
	Reports      *ReportAggregator
	Billing      BillingEngine
}

type HotelDeps struct {
	Clock Clock
	IDs   IDGenerator
	// Billing overrides the VAT rate taken from the state's settings.
	Billing *BillingEngine
}

func NewHotel(state *models.HotelState, deps HotelDeps) *Hotel {
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = UUIDGenerator{}
	}
	billing := NewBillingEngine(state.Settings.VATRate)
	if deps.Billing != nil {
		billing = *deps.Billing
	}

	rooms := NewRoomRegistry(state)
	txlog := NewTransactionLog(state)
	return &Hotel{
		State:        state,
		Rooms:        rooms,
		Transactions: txlog,
		Billing:      billing,
		Guests: &GuestLedger{
			state:        state,
			rooms:        rooms,
			transactions: txlog,
			billing:      billing,
			clock:        deps.Clock,
			ids:          deps.IDs,
		},
		Reports: &ReportAggregator{
			state:        state,
			rooms:        rooms,
			transactions: txlog,
			clock:        deps.Clock,
		},
	}
}
