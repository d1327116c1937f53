package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-frontdesk/models"
)

func TestTransitionToOccupiedGuards(t *testing.T) {
	h, _ := newTestHotel()

	require.NoError(t, h.Rooms.TransitionToOccupied("R1", "g1"))
	err := h.Rooms.TransitionToOccupied("R1", "g2")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	room, err := h.Rooms.Find("R1")
	require.NoError(t, err)
	require.NotNil(t, room.Guest)
	assert.Equal(t, "g1", *room.Guest)

	assert.ErrorIs(t, h.Rooms.TransitionToOccupied("X9", "g3"), ErrRoomNotFound)
}

func TestTransitionToOccupiedRejectsOutOfOrder(t *testing.T) {
	h, _ := newTestHotel()
	require.NoError(t, h.Rooms.MarkOutOfOrder("R2", OutOfOrderRequest{Reason: "Plumbing"}, "admin", testNow))

	assert.ErrorIs(t, h.Rooms.TransitionToOccupied("R2", "g1"), ErrInvalidTransition)
}

func TestTransitionToVacantRequiresCheckout(t *testing.T) {
	h, _ := newTestHotel()
	_, err := h.Guests.OpenStay(stayRequest("R1", 1, 0), "frontdesk")
	require.NoError(t, err)

	err = h.Rooms.TransitionToVacant("R1")
	assert.ErrorIs(t, err, ErrOccupied)

	room, _ := h.Rooms.Find("R1")
	assert.Equal(t, models.RoomOccupied, room.Status)
}

func TestTransitionToVacantClearsOutOfOrder(t *testing.T) {
	h, _ := newTestHotel()
	require.NoError(t, h.Rooms.MarkOutOfOrder("R3", OutOfOrderRequest{Reason: "Aircon"}, "admin", testNow))

	require.NoError(t, h.Rooms.TransitionToVacant("R3"))
	room, _ := h.Rooms.Find("R3")
	assert.Equal(t, models.RoomVacant, room.Status)
	assert.Nil(t, room.OutOfOrder)

	// vacant to vacant is a no-op
	require.NoError(t, h.Rooms.TransitionToVacant("R3"))
	assert.ErrorIs(t, h.Rooms.TransitionToVacant("nope"), ErrRoomNotFound)
}

func TestMarkOutOfOrder(t *testing.T) {
	h, _ := newTestHotel()
	eta := testNow.Add(72 * time.Hour)

	err := h.Rooms.MarkOutOfOrder("R4", OutOfOrderRequest{Reason: "  "}, "admin", testNow)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, h.Rooms.MarkOutOfOrder("R4", OutOfOrderRequest{
		Reason:        " Broken window ",
		Details:       "Glass cracked",
		EstimatedDate: &eta,
	}, "admin", testNow))

	room, _ := h.Rooms.Find("R4")
	assert.Equal(t, models.RoomOutOfOrder, room.Status)
	require.NotNil(t, room.OutOfOrder)
	assert.Equal(t, "Broken window", room.OutOfOrder.Reason)
	assert.Equal(t, "admin", room.OutOfOrder.MarkedBy)
	assert.Equal(t, testNow, room.OutOfOrder.MarkedDate)
	assert.Equal(t, &eta, room.OutOfOrder.EstimatedDate)

	err = h.Rooms.MarkOutOfOrder("R4", OutOfOrderRequest{Reason: "again"}, "admin", testNow)
	assert.ErrorIs(t, err, ErrAlreadyOutOfOrder)
}

func TestMarkOutOfOrderRejectsOccupiedRoom(t *testing.T) {
	h, _ := newTestHotel()
	g, err := h.Guests.OpenStay(stayRequest("R1", 1, 0), "frontdesk")
	require.NoError(t, err)

	err = h.Rooms.MarkOutOfOrder("R1", OutOfOrderRequest{Reason: "Leak"}, "admin", testNow)
	assert.ErrorIs(t, err, ErrOccupied)

	room, _ := h.Rooms.Find("R1")
	assert.Equal(t, models.RoomOccupied, room.Status)
	require.NotNil(t, room.Guest)
	assert.Equal(t, g.ID, *room.Guest)
	assert.Nil(t, room.OutOfOrder)

	assert.ErrorIs(t, h.Rooms.MarkOutOfOrder("X1", OutOfOrderRequest{Reason: "Leak"}, "admin", testNow), ErrRoomNotFound)
}

func TestListAvailableOrdersNumerically(t *testing.T) {
	state := &models.HotelState{Rooms: []models.Room{
		{Number: "110", Floor: 2, Status: models.RoomVacant},
		{Number: "99", Floor: 1, Status: models.RoomVacant},
		{Number: "101", Floor: 1, Status: models.RoomOccupied},
		{Number: "102", Floor: 1, Status: models.RoomVacant},
	}}
	reg := NewRoomRegistry(state)

	var numbers []string
	for _, r := range reg.ListAvailable() {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"99", "102", "110"}, numbers)

	floors := reg.Floors()
	require.Len(t, floors, 2)
	assert.Equal(t, 1, floors[0].Number)
	assert.Len(t, floors[0].Rooms, 3)
	assert.Equal(t, "110", floors[1].Rooms[0].Number)
}

func TestListOccupiedFallsBackToUnknown(t *testing.T) {
	h, _ := newTestHotel()
	g, err := h.Guests.OpenStay(stayRequest("R3", 2, 0), "frontdesk")
	require.NoError(t, err)

	// R2 occupied without a stay record
	require.NoError(t, h.Rooms.TransitionToOccupied("R2", "ghost"))

	occupied := h.Rooms.ListOccupied()
	require.Len(t, occupied, 2)
	assert.Equal(t, "R2", occupied[0].Room.Number)
	assert.Equal(t, UnknownGuest, occupied[0].GuestName)
	assert.Nil(t, occupied[0].Guest)
	assert.Equal(t, "R3", occupied[1].Room.Number)
	assert.Equal(t, g.Name, occupied[1].GuestName)
	require.NotNil(t, occupied[1].Guest)
	assert.Equal(t, g.ID, occupied[1].Guest.ID)
}
