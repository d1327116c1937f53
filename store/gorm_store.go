package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// StateRecord is the row holding one hotel's serialized state.
type StateRecord struct {
	ID        uint           `gorm:"primaryKey"`
	StateKey  string         `gorm:"column:state_key;uniqueIndex;size:64"`
	Version   int64          `gorm:"column:version;not null"`
	Data      datatypes.JSON `gorm:"column:data"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StateRecord) TableName() string { return "hotel_states" }

type GormStore struct {
	DB  *gorm.DB
	Key string
}

// NewGormStore migrates the hotel_states table and returns a store for key.
// db must be opened with TranslateError so a lost first save is reported as
// ErrVersionConflict.
func NewGormStore(db *gorm.DB, key string) (*GormStore, error) {
	if key == "" {
		key = DefaultKey
	}
	if err := db.AutoMigrate(&StateRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate hotel_states: %w", err)
	}
	return &GormStore{DB: db, Key: key}, nil
}

func (s *GormStore) Load(ctx context.Context) (*models.HotelState, int64, error) {
	var rec StateRecord
	if err := s.DB.WithContext(ctx).Where("state_key = ?", s.Key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrStateNotFound
		}
		return nil, 0, fmt.Errorf("failed to load hotel state: %w", err)
	}
	var state models.HotelState
	if err := json.Unmarshal(rec.Data, &state); err != nil {
		return nil, 0, fmt.Errorf("failed to decode hotel state: %w", err)
	}
	return &state, rec.Version, nil
}

func (s *GormStore) Save(ctx context.Context, state *models.HotelState, expected int64) (int64, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("failed to encode hotel state: %w", err)
	}

	next := expected + 1
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if expected == 0 {
			// the unique state_key index decides which first writer wins
			err := tx.Create(&StateRecord{StateKey: s.Key, Version: next, Data: datatypes.JSON(raw)}).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrVersionConflict
			}
			return err
		}

		res := tx.Model(&StateRecord{}).
			Where("state_key = ? AND version = ?", s.Key, expected).
			Updates(map[string]interface{}{
				"data":    datatypes.JSON(raw),
				"version": next,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to save hotel state: %w", err)
	}
	return next, nil
}
