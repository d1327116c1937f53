package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hotel-frontdesk/events"
	"hotel-frontdesk/models"
	"hotel-frontdesk/store"
)

// FrontDeskService is the single writer for the hotel state in this
// process. Each mutation loads the stored state, applies the change to a
// copy and saves it against the loaded version, so a failed operation
// leaves the stored state untouched and a concurrent writer in another
// process surfaces as store.ErrVersionConflict.
type FrontDeskService struct {
	Store     store.Store
	Publisher events.Publisher
	Logger    *zap.Logger
	Clock     Clock
	IDs       IDGenerator

	mu sync.Mutex
}

type FrontDeskOptions struct {
	Publisher events.Publisher
	Logger    *zap.Logger
	Clock     Clock
	IDs       IDGenerator
}

func NewFrontDeskService(st store.Store, opts FrontDeskOptions) *FrontDeskService {
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	return &FrontDeskService{
		Store:     st,
		Publisher: opts.Publisher,
		Logger:    opts.Logger,
		Clock:     opts.Clock,
		IDs:       opts.IDs,
	}
}

// Bootstrap seeds the initial inventory when the store is empty. It reports
// whether it created the state.
func (s *FrontDeskService) Bootstrap(ctx context.Context, seed SeedOptions) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.Store.Load(ctx); err == nil {
		return false, nil
	} else if !errors.Is(err, store.ErrStateNotFound) {
		return false, err
	}

	if seed.IDs == nil {
		seed.IDs = s.IDs
	}
	state, err := NewInitialState(seed)
	if err != nil {
		return false, err
	}
	if _, err := s.Store.Save(ctx, state, 0); err != nil {
		return false, err
	}
	s.Logger.Info("hotel state seeded",
		zap.Int("rooms", len(state.Rooms)),
		zap.String("hotel", state.Settings.HotelName))
	return true, nil
}

func (s *FrontDeskService) hotel(state *models.HotelState) *Hotel {
	return NewHotel(state, HotelDeps{Clock: s.Clock, IDs: s.IDs})
}

func (s *FrontDeskService) read(ctx context.Context, fn func(h *Hotel) error) error {
	state, _, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(s.hotel(state))
}

func (s *FrontDeskService) mutate(ctx context.Context, fn func(h *Hotel) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, version, err := s.Store.Load(ctx)
	if err != nil {
		return err
	}
	working, err := loaded.Clone()
	if err != nil {
		return fmt.Errorf("failed to copy hotel state: %w", err)
	}
	if err := fn(s.hotel(working)); err != nil {
		return err
	}
	if _, err := s.Store.Save(ctx, working, version); err != nil {
		return err
	}
	return nil
}

func (s *FrontDeskService) publish(ctx context.Context, tx models.Transaction, guestName string) {
	if err := s.Publisher.Publish(ctx, events.NewStayEvent(tx, guestName)); err != nil {
		s.Logger.Warn("failed to publish stay event",
			zap.String("transaction_id", tx.ID),
			zap.String("type", string(tx.Type)),
			zap.Error(err))
	}
}

// CheckIn opens a stay and occupies the room.
func (s *FrontDeskService) CheckIn(ctx context.Context, req OpenStayRequest, operator string) (models.Guest, error) {
	var (
		guest models.Guest
		tx    models.Transaction
	)
	err := s.mutate(ctx, func(h *Hotel) error {
		g, err := h.Guests.OpenStay(req, operator)
		if err != nil {
			return err
		}
		guest = g
		tx = h.Transactions.Recent(1)[0]
		return nil
	})
	if err != nil {
		s.Logger.Info("check-in rejected", zap.String("room", req.Room), zap.Error(err))
		return models.Guest{}, err
	}
	s.Logger.Info("guest checked in",
		zap.String("guest_id", guest.ID),
		zap.String("room", guest.Room),
		zap.Int("nights", guest.Nights),
		zap.String("operator", operator))
	s.publish(ctx, tx, guest.Name)
	return guest, nil
}

// CheckOut closes the active stay in a room and bills it.
func (s *FrontDeskService) CheckOut(ctx context.Context, room string, extraCharges decimal.Decimal, operator string) (CheckoutResult, error) {
	var result CheckoutResult
	err := s.mutate(ctx, func(h *Hotel) error {
		r, err := h.Guests.CloseStay(strings.TrimSpace(room), extraCharges, operator)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		s.Logger.Info("check-out rejected", zap.String("room", room), zap.Error(err))
		return CheckoutResult{}, err
	}
	s.Logger.Info("guest checked out",
		zap.String("guest_id", result.Guest.ID),
		zap.String("room", result.Guest.Room),
		zap.String("total", result.Bill.Total.StringFixed(2)),
		zap.String("operator", operator))
	s.publish(ctx, result.Transaction, result.Guest.Name)
	return result, nil
}

type BillPreview struct {
	Guest models.Guest `json:"guest"`
	Bill  Bill         `json:"bill"`
}

func (s *FrontDeskService) PreviewCheckout(ctx context.Context, room string, extraCharges decimal.Decimal) (BillPreview, error) {
	var out BillPreview
	err := s.read(ctx, func(h *Hotel) error {
		g, bill, err := h.Guests.PreviewBill(room, extraCharges)
		out = BillPreview{Guest: g, Bill: bill}
		return err
	})
	return out, err
}

func (s *FrontDeskService) MarkOutOfOrder(ctx context.Context, room string, req OutOfOrderRequest, operator string) (models.Room, error) {
	var out models.Room
	err := s.mutate(ctx, func(h *Hotel) error {
		if err := h.Rooms.MarkOutOfOrder(room, req, operator, s.Clock.Now()); err != nil {
			return err
		}
		r, err := h.Rooms.Find(room)
		out = r
		return err
	})
	if err == nil {
		s.Logger.Info("room marked out of order",
			zap.String("room", room),
			zap.String("reason", out.OutOfOrder.Reason),
			zap.String("operator", operator))
	}
	return out, err
}

func (s *FrontDeskService) MarkVacant(ctx context.Context, room, operator string) (models.Room, error) {
	var out models.Room
	err := s.mutate(ctx, func(h *Hotel) error {
		if err := h.Rooms.TransitionToVacant(room); err != nil {
			return err
		}
		r, err := h.Rooms.Find(room)
		out = r
		return err
	})
	if err == nil {
		s.Logger.Info("room marked vacant", zap.String("room", room), zap.String("operator", operator))
	}
	return out, err
}

func (s *FrontDeskService) Rooms(ctx context.Context) ([]Floor, error) {
	var out []Floor
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Rooms.Floors()
		return nil
	})
	return out, err
}

func (s *FrontDeskService) AvailableRooms(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Rooms.ListAvailable()
		return nil
	})
	return out, err
}

func (s *FrontDeskService) OccupiedRooms(ctx context.Context) ([]OccupiedRoom, error) {
	var out []OccupiedRoom
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Rooms.ListOccupied()
		return nil
	})
	return out, err
}

func (s *FrontDeskService) RoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var out []models.RoomType
	err := s.read(ctx, func(h *Hotel) error {
		out = h.State.RoomTypes
		return nil
	})
	return out, err
}

func (s *FrontDeskService) CurrentGuests(ctx context.Context) ([]models.Guest, error) {
	var out []models.Guest
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Guests.Active()
		return nil
	})
	return out, err
}

func (s *FrontDeskService) SearchGuests(ctx context.Context, term string) ([]models.Guest, error) {
	var out []models.Guest
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Guests.Search(term)
		return nil
	})
	return out, err
}

func (s *FrontDeskService) Guest(ctx context.Context, id string) (models.Guest, error) {
	var out models.Guest
	err := s.read(ctx, func(h *Hotel) error {
		g, err := h.Guests.FindByID(id)
		out = g
		return err
	})
	return out, err
}

func (s *FrontDeskService) RecentTransactions(ctx context.Context, n int) ([]models.Transaction, error) {
	var out []models.Transaction
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Transactions.Recent(n)
		return nil
	})
	return out, err
}

func (s *FrontDeskService) Report(ctx context.Context, start, end time.Time) (Report, error) {
	var out Report
	err := s.read(ctx, func(h *Hotel) error {
		r, err := h.Reports.Aggregate(start, end)
		out = r
		return err
	})
	return out, err
}

// DailyReport covers today in the service clock's location.
func (s *FrontDeskService) DailyReport(ctx context.Context) (Report, error) {
	today := s.Clock.Now()
	return s.Report(ctx, today, today)
}

func (s *FrontDeskService) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := s.read(ctx, func(h *Hotel) error {
		out = h.Reports.Dashboard()
		return nil
	})
	return out, err
}

func (s *FrontDeskService) Settings(ctx context.Context) (models.HotelSetting, error) {
	var out models.HotelSetting
	err := s.read(ctx, func(h *Hotel) error {
		out = h.State.Settings
		return nil
	})
	return out, err
}

type SettingsUpdate struct {
	HotelName    string
	HotelAddress string
	HotelContact string
	VATRate      *decimal.Decimal
}

// UpdateSettings replaces the hotel details. An empty name falls back to
// the default name; VAT is kept unless given.
func (s *FrontDeskService) UpdateSettings(ctx context.Context, upd SettingsUpdate) (models.HotelSetting, error) {
	if upd.VATRate != nil && (upd.VATRate.IsNegative() || upd.VATRate.GreaterThan(decimal.NewFromInt(1))) {
		return models.HotelSetting{}, fmt.Errorf("%w: vat rate must be between 0 and 1", ErrValidation)
	}
	var out models.HotelSetting
	err := s.mutate(ctx, func(h *Hotel) error {
		settings := &h.State.Settings
		settings.HotelName = strings.TrimSpace(upd.HotelName)
		if settings.HotelName == "" {
			settings.HotelName = DefaultHotelName
		}
		settings.HotelAddress = strings.TrimSpace(upd.HotelAddress)
		settings.HotelContact = strings.TrimSpace(upd.HotelContact)
		if upd.VATRate != nil {
			settings.VATRate = *upd.VATRate
		}
		out = *settings
		return nil
	})
	return out, err
}
