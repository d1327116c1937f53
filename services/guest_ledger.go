package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-frontdesk/models"
)

// GuestLedger owns stay records and drives the check-in/check-out flow
// through the registry, billing engine and transaction log.
type GuestLedger struct {
	state        *models.HotelState
	rooms        *RoomRegistry
	transactions *TransactionLog
	billing      BillingEngine
	clock        Clock
	ids          IDGenerator
}

type OpenStayRequest struct {
	Room     string
	Guest    models.GuestInfo
	Nights   int
	Adults   int
	Children int
	// RoomRate is the nightly rate agreed at the desk. Nil means the
	// room's current rate.
	RoomRate *decimal.Decimal
}

type CheckoutResult struct {
	Guest       models.Guest       `json:"guest"`
	Bill        Bill               `json:"bill"`
	Transaction models.Transaction `json:"transaction"`
}

// activeStay returns the checked-in stay for a room, if any.
func activeStay(state *models.HotelState, room string) *models.Guest {
	for i := range state.Guests {
		g := &state.Guests[i]
		if g.Room == room && g.Status == models.GuestCheckedIn {
			return g
		}
	}
	return nil
}

func (l *GuestLedger) FindActiveByRoom(room string) (models.Guest, bool) {
	g := activeStay(l.state, room)
	if g == nil {
		return models.Guest{}, false
	}
	return *g, true
}

func (l *GuestLedger) FindByID(id string) (models.Guest, error) {
	for _, g := range l.state.Guests {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Guest{}, fmt.Errorf("%w: %s", ErrGuestNotFound, id)
}

// Active lists current guests in check-in order.
func (l *GuestLedger) Active() []models.Guest {
	out := []models.Guest{}
	for _, g := range l.state.Guests {
		if g.Status == models.GuestCheckedIn {
			out = append(out, g)
		}
	}
	return out
}

// Search narrows the current guests to those whose name, phone, email or
// room contains term, ignoring case. An empty term returns every current
// guest.
func (l *GuestLedger) Search(term string) []models.Guest {
	term = strings.ToLower(strings.TrimSpace(term))
	active := l.Active()
	if term == "" {
		return active
	}
	out := []models.Guest{}
	for _, g := range active {
		for _, field := range []string{g.Name, g.Phone, g.Email, g.Room} {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

func validateStay(req OpenStayRequest) error {
	var missing []string
	if strings.TrimSpace(req.Guest.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Guest.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Room) == "" {
		missing = append(missing, "room")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	switch {
	case req.Nights < 1:
		return fmt.Errorf("%w: nights must be at least 1", ErrValidation)
	case req.Adults < 1:
		return fmt.Errorf("%w: at least one adult is required", ErrValidation)
	case req.Children < 0:
		return fmt.Errorf("%w: children cannot be negative", ErrValidation)
	case req.RoomRate != nil && req.RoomRate.IsNegative():
		return fmt.Errorf("%w: room rate cannot be negative", ErrValidation)
	}
	return nil
}

// OpenStay checks a guest into a vacant room.
func (l *GuestLedger) OpenStay(req OpenStayRequest, operator string) (models.Guest, error) {
	if err := validateStay(req); err != nil {
		return models.Guest{}, err
	}
	room, err := l.rooms.Find(req.Room)
	if err != nil {
		return models.Guest{}, fmt.Errorf("%w: %w", ErrRoomUnavailable, err)
	}
	if total := req.Adults + req.Children; total > room.MaxGuests {
		return models.Guest{}, fmt.Errorf("%w: room %s can only accommodate %d guests, got %d",
			ErrCapacityExceeded, room.Number, room.MaxGuests, total)
	}
	if err := l.rooms.checkOccupiable(room.Number); err != nil {
		return models.Guest{}, fmt.Errorf("%w: %w", ErrRoomUnavailable, err)
	}
	if g := activeStay(l.state, room.Number); g != nil {
		return models.Guest{}, fmt.Errorf("%w: room %s already has guest %s", ErrRoomUnavailable, room.Number, g.ID)
	}

	rate := room.Rate
	if req.RoomRate != nil {
		rate = *req.RoomRate
	}
	now := l.clock.Now()
	guest := models.Guest{
		ID:        l.ids.NewID(),
		GuestInfo: trimInfo(req.Guest),
		Room:      room.Number,
		CheckIn:   now,
		Nights:    req.Nights,
		Adults:    req.Adults,
		Children:  req.Children,
		RoomRate:  rate,
		Status:    models.GuestCheckedIn,
	}

	if err := l.rooms.TransitionToOccupied(room.Number, guest.ID); err != nil {
		return models.Guest{}, fmt.Errorf("%w: %w", ErrRoomUnavailable, err)
	}
	l.state.Guests = append(l.state.Guests, guest)
	l.transactions.Append(models.Transaction{
		ID:      l.ids.NewID(),
		Type:    models.TransactionCheckIn,
		GuestID: guest.ID,
		Room:    room.Number,
		Amount:  decimal.Zero,
		Date:    now,
		User:    operator,
	})
	return guest, nil
}

// PreviewBill prices the active stay in a room without closing it.
func (l *GuestLedger) PreviewBill(room string, extraCharges decimal.Decimal) (models.Guest, Bill, error) {
	if extraCharges.IsNegative() {
		return models.Guest{}, Bill{}, fmt.Errorf("%w: extra charges cannot be negative", ErrValidation)
	}
	g := activeStay(l.state, room)
	if g == nil {
		return models.Guest{}, Bill{}, fmt.Errorf("%w: %s", ErrNoActiveGuest, room)
	}
	return *g, l.billing.Bill(g.Nights, g.RoomRate, extraCharges), nil
}

// CloseStay checks out the active guest of a room, billing the rate
// captured at check-in.
func (l *GuestLedger) CloseStay(room string, extraCharges decimal.Decimal, operator string) (CheckoutResult, error) {
	if extraCharges.IsNegative() {
		return CheckoutResult{}, fmt.Errorf("%w: extra charges cannot be negative", ErrValidation)
	}
	g := activeStay(l.state, room)
	if g == nil {
		return CheckoutResult{}, fmt.Errorf("%w: %s", ErrNoActiveGuest, room)
	}
	if _, err := l.rooms.Find(room); err != nil {
		return CheckoutResult{}, err
	}
	for _, other := range l.state.Guests {
		if other.Room == room && other.Status == models.GuestCheckedIn && other.ID != g.ID {
			return CheckoutResult{}, fmt.Errorf("%w: room %s has more than one active stay", ErrOccupied, room)
		}
	}

	bill := l.billing.Bill(g.Nights, g.RoomRate, extraCharges)
	now := l.clock.Now()
	total := bill.Total
	extras := extraCharges
	g.Status = models.GuestCheckedOut
	g.CheckOut = &now
	g.TotalBill = &total
	g.ExtraCharges = &extras

	if err := l.rooms.TransitionToVacant(room); err != nil {
		return CheckoutResult{}, err
	}
	tx := models.Transaction{
		ID:      l.ids.NewID(),
		Type:    models.TransactionCheckOut,
		GuestID: g.ID,
		Room:    room,
		Amount:  total,
		Date:    now,
		User:    operator,
	}
	l.transactions.Append(tx)
	return CheckoutResult{Guest: *g, Bill: bill, Transaction: tx}, nil
}

func trimInfo(in models.GuestInfo) models.GuestInfo {
	return models.GuestInfo{
		Name:            strings.TrimSpace(in.Name),
		Phone:           strings.TrimSpace(in.Phone),
		Email:           strings.TrimSpace(in.Email),
		Address:         strings.TrimSpace(in.Address),
		IDType:          strings.TrimSpace(in.IDType),
		IDNumber:        strings.TrimSpace(in.IDNumber),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}
}
