package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-frontdesk/models"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type seqIDs struct {
	prefix string
	n      int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s%d", s.prefix, s.n)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrDec(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

var testNow = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

// smallState is a four-room hotel: R1 and R2 are Standard, R3 Deluxe and
// R4 Suite.
func smallState() *models.HotelState {
	return &models.HotelState{
		Rooms: []models.Room{
			{Number: "R1", Type: "Standard", Rate: dec("2000"), MaxGuests: 2, Beds: 1, Floor: 1, Status: models.RoomVacant},
			{Number: "R2", Type: "Standard", Rate: dec("2500"), MaxGuests: 2, Beds: 1, Floor: 1, Status: models.RoomVacant},
			{Number: "R3", Type: "Deluxe", Rate: dec("4500"), MaxGuests: 4, Beds: 2, Floor: 2, Status: models.RoomVacant},
			{Number: "R4", Type: "Suite", Rate: dec("7500"), MaxGuests: 4, Beds: 2, Floor: 2, Status: models.RoomVacant},
		},
		Guests:       []models.Guest{},
		Transactions: []models.Transaction{},
		Settings:     models.HotelSetting{HotelName: "Test Hotel", VATRate: dec("0.12")},
		RoomTypes:    DefaultRoomTypes(),
	}
}

func newTestHotel() (*Hotel, *fixedClock) {
	clock := &fixedClock{now: testNow}
	return NewHotel(smallState(), HotelDeps{Clock: clock, IDs: &seqIDs{prefix: "id-"}}), clock
}

func stayRequest(room string, adults, children int) OpenStayRequest {
	return OpenStayRequest{
		Room:     room,
		Guest:    models.GuestInfo{Name: "Juan Dela Cruz", Phone: "09171234567"},
		Nights:   2,
		Adults:   adults,
		Children: children,
	}
}
