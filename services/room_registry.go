package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"hotel-frontdesk/models"
)

// UnknownGuest labels an occupied room whose stay record is missing.
const UnknownGuest = "Unknown"

// RoomRegistry owns room status and its transition rules.
type RoomRegistry struct {
	state *models.HotelState
}

func NewRoomRegistry(state *models.HotelState) *RoomRegistry {
	return &RoomRegistry{state: state}
}

type OccupiedRoom struct {
	Room      models.Room   `json:"room"`
	Guest     *models.Guest `json:"guest,omitempty"`
	GuestName string        `json:"guestName"`
}

type OutOfOrderRequest struct {
	Reason        string
	Details       string
	EstimatedDate *time.Time
}

type Floor struct {
	Number int           `json:"floor"`
	Rooms  []models.Room `json:"rooms"`
}

func (r *RoomRegistry) index(number string) int {
	for i := range r.state.Rooms {
		if r.state.Rooms[i].Number == number {
			return i
		}
	}
	return -1
}

// Find returns a copy of the room.
func (r *RoomRegistry) Find(number string) (models.Room, error) {
	i := r.index(number)
	if i < 0 {
		return models.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, number)
	}
	return r.state.Rooms[i], nil
}

func (r *RoomRegistry) Count() int {
	return len(r.state.Rooms)
}

// List returns all rooms ordered by floor, then number.
func (r *RoomRegistry) List() []models.Room {
	rooms := append([]models.Room(nil), r.state.Rooms...)
	sort.SliceStable(rooms, func(i, j int) bool {
		if rooms[i].Floor != rooms[j].Floor {
			return rooms[i].Floor < rooms[j].Floor
		}
		return lessRoomNumber(rooms[i].Number, rooms[j].Number)
	})
	return rooms
}

func (r *RoomRegistry) Floors() []Floor {
	var floors []Floor
	for _, room := range r.List() {
		if n := len(floors); n == 0 || floors[n-1].Number != room.Floor {
			floors = append(floors, Floor{Number: room.Floor})
		}
		last := &floors[len(floors)-1]
		last.Rooms = append(last.Rooms, room)
	}
	return floors
}

func (r *RoomRegistry) withStatus(status models.RoomStatus) []models.Room {
	rooms := []models.Room{}
	for _, room := range r.state.Rooms {
		if room.Status == status {
			rooms = append(rooms, room)
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return lessRoomNumber(rooms[i].Number, rooms[j].Number)
	})
	return rooms
}

// ListAvailable returns the vacant rooms by ascending room number.
func (r *RoomRegistry) ListAvailable() []models.Room {
	return r.withStatus(models.RoomVacant)
}

// ListOccupied pairs each occupied room with its active stay. A room
// without one is still listed, under UnknownGuest.
func (r *RoomRegistry) ListOccupied() []OccupiedRoom {
	rooms := r.withStatus(models.RoomOccupied)
	out := make([]OccupiedRoom, 0, len(rooms))
	for _, room := range rooms {
		entry := OccupiedRoom{Room: room, GuestName: UnknownGuest}
		if g := activeStay(r.state, room.Number); g != nil {
			guest := *g
			entry.Guest = &guest
			entry.GuestName = guest.Name
		}
		out = append(out, entry)
	}
	return out
}

func (r *RoomRegistry) CountByStatus(status models.RoomStatus) int {
	n := 0
	for _, room := range r.state.Rooms {
		if room.Status == status {
			n++
		}
	}
	return n
}

// checkOccupiable reports why the room cannot take a new occupant.
func (r *RoomRegistry) checkOccupiable(number string) error {
	i := r.index(number)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, number)
	}
	if status := r.state.Rooms[i].Status; status != models.RoomVacant {
		return fmt.Errorf("%w: room %s is %s", ErrInvalidTransition, number, status)
	}
	return nil
}

func (r *RoomRegistry) TransitionToOccupied(number, guestID string) error {
	if err := r.checkOccupiable(number); err != nil {
		return err
	}
	room := &r.state.Rooms[r.index(number)]
	room.Status = models.RoomOccupied
	room.Guest = &guestID
	room.OutOfOrder = nil
	return nil
}

// TransitionToVacant frees a room. The occupant must have been checked out
// first. Out-of-order details are always cleared; a vacant room stays vacant.
func (r *RoomRegistry) TransitionToVacant(number string) error {
	i := r.index(number)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, number)
	}
	if g := activeStay(r.state, number); g != nil {
		return fmt.Errorf("%w: room %s is occupied by %s", ErrOccupied, number, g.Name)
	}
	room := &r.state.Rooms[i]
	room.Status = models.RoomVacant
	room.Guest = nil
	room.OutOfOrder = nil
	return nil
}

func (r *RoomRegistry) MarkOutOfOrder(number string, req OutOfOrderRequest, operator string, at time.Time) error {
	i := r.index(number)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, number)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: reason is required", ErrValidation)
	}
	room := &r.state.Rooms[i]
	if g := activeStay(r.state, number); g != nil {
		return fmt.Errorf("%w: room %s is occupied by %s", ErrOccupied, number, g.Name)
	}
	if room.Status == models.RoomOccupied {
		return fmt.Errorf("%w: room %s", ErrOccupied, number)
	}
	if room.Status == models.RoomOutOfOrder {
		return fmt.Errorf("%w: room %s", ErrAlreadyOutOfOrder, number)
	}
	room.Status = models.RoomOutOfOrder
	room.Guest = nil
	room.OutOfOrder = &models.OutOfOrderInfo{
		Reason:        reason,
		Details:       strings.TrimSpace(req.Details),
		EstimatedDate: req.EstimatedDate,
		MarkedDate:    at,
		MarkedBy:      operator,
	}
	return nil
}

// lessRoomNumber orders numeric room numbers numerically and falls back to
// string order otherwise.
func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil && na != nb {
		return na < nb
	}
	return a < b
}
