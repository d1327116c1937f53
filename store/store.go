// Package store persists the front-desk HotelState as a single versioned
// blob. Every Save is atomic; a stale expected version is rejected with
// ErrVersionConflict instead of overwriting a concurrent writer.
package store

import (
	"context"
	"errors"

	"hotel-frontdesk/models"
)

var (
	ErrStateNotFound   = errors.New("hotel state not found")
	ErrVersionConflict = errors.New("hotel state was modified concurrently, retry")
)

// DefaultKey names the single hotel this deployment serves.
const DefaultKey = "hotel"

type Store interface {
	// Load returns the state and its version, or ErrStateNotFound.
	Load(ctx context.Context) (*models.HotelState, int64, error)
	// Save writes state if the stored version still equals expected (0 when
	// nothing has been stored yet) and returns the new version.
	Save(ctx context.Context, state *models.HotelState, expected int64) (int64, error)
}
