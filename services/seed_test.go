package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-frontdesk/models"
)

func TestNewInitialState(t *testing.T) {
	state, err := NewInitialState(SeedOptions{VATRate: DefaultVATRate, AdminPassword: "pw", IDs: &seqIDs{}})
	require.NoError(t, err)

	assert.Equal(t, DefaultHotelName, state.Settings.HotelName)
	require.Len(t, state.Rooms, 30)

	first := state.Rooms[0]
	assert.Equal(t, "101", first.Number)
	assert.Equal(t, "Standard", first.Type)
	assertDecimal(t, "2500", first.Rate)
	assert.Equal(t, 1, first.Floor)

	assert.Equal(t, "Deluxe", state.Rooms[1].Type)
	assert.Equal(t, 4, state.Rooms[1].MaxGuests)
	assert.Equal(t, "Suite", state.Rooms[2].Type)
	assert.Equal(t, "310", state.Rooms[29].Number)
	assert.Equal(t, 6, state.Rooms[29].Floor)

	for _, r := range state.Rooms {
		assert.Equal(t, models.RoomVacant, r.Status)
	}

	require.Len(t, state.Users, 1)
	admin := state.Users[0]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("pw")))
}
