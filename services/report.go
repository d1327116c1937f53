package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotel-frontdesk/models"
)

const (
	reportRecentLimit    = 10
	dashboardRecentLimit = 5
)

// ReportAggregator derives statistics from the transaction log and the
// current room and guest snapshot.
//
// Occupancy figures are taken from the live room statuses at call time,
// while counts and revenue come from the period's transactions. Revenue per
// room type uses the room's type as it is now, not as it was during the
// stay. Both are long-standing behaviours of the front desk reports and are
// kept as is.
type ReportAggregator struct {
	state        *models.HotelState
	rooms        *RoomRegistry
	transactions *TransactionLog
	clock        Clock
}

type RoomTypeBreakdown struct {
	Type          string          `json:"type"`
	TotalRooms    int             `json:"totalRooms"`
	OccupiedRooms int             `json:"occupiedRooms"`
	OccupancyRate float64         `json:"occupancyRate"`
	Revenue       decimal.Decimal `json:"revenue"`
	RevenueShare  float64         `json:"revenueShare"`
}

type Report struct {
	Start              time.Time            `json:"start"`
	End                time.Time            `json:"end"`
	GeneratedAt        time.Time            `json:"generatedAt"`
	CurrentGuests      int                  `json:"currentGuests"`
	CheckIns           int                  `json:"checkins"`
	CheckOuts          int                  `json:"checkouts"`
	TotalRevenue       decimal.Decimal      `json:"totalRevenue"`
	TotalRooms         int                  `json:"totalRooms"`
	OccupiedRooms      int                  `json:"occupiedRooms"`
	OccupancyRate      float64              `json:"occupancyRate"`
	ByRoomType         []RoomTypeBreakdown  `json:"byRoomType"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

type Activity struct {
	Transaction models.Transaction `json:"transaction"`
	GuestName   string             `json:"guestName"`
}

type Dashboard struct {
	TotalRooms      int             `json:"totalRooms"`
	OccupiedRooms   int             `json:"occupiedRooms"`
	VacantRooms     int             `json:"vacantRooms"`
	OutOfOrderRooms int             `json:"outOfOrderRooms"`
	CurrentGuests   int             `json:"currentGuests"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	RecentActivity  []Activity      `json:"recentActivity"`
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Aggregate reports on the days from start through end, both inclusive.
func (a *ReportAggregator) Aggregate(start, end time.Time) (Report, error) {
	from := StartOfDay(start)
	if StartOfDay(end).Before(from) {
		return Report{}, fmt.Errorf("%w: %s to %s", ErrEmptyRange, from.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	to := EndOfDay(end)

	inRange := func(tx models.Transaction) bool {
		return !tx.Date.Before(from) && !tx.Date.After(to)
	}

	report := Report{
		Start:        from,
		End:          to,
		GeneratedAt:  a.clock.Now(),
		TotalRevenue: decimal.Zero,
		TotalRooms:   a.rooms.Count(),
	}

	revenueByType := map[string]decimal.Decimal{}
	var period []models.Transaction
	for tx := range a.transactions.Query(inRange) {
		period = append(period, tx)
		switch tx.Type {
		case models.TransactionCheckIn:
			report.CheckIns++
		case models.TransactionCheckOut:
			report.CheckOuts++
			report.TotalRevenue = report.TotalRevenue.Add(tx.Amount)
			if roomType, ok := a.currentRoomType(tx.GuestID); ok {
				revenueByType[roomType] = revenueByType[roomType].Add(tx.Amount)
			}
		}
	}

	for _, g := range a.state.Guests {
		if g.Status == models.GuestCheckedIn {
			report.CurrentGuests++
		}
	}
	report.OccupiedRooms = a.rooms.CountByStatus(models.RoomOccupied)
	report.OccupancyRate = percent(report.OccupiedRooms, report.TotalRooms)
	report.ByRoomType = a.breakdown(revenueByType, report.TotalRevenue)
	report.RecentTransactions = lastN(period, reportRecentLimit)
	return report, nil
}

// currentRoomType resolves a stay's room to the type that room has today.
func (a *ReportAggregator) currentRoomType(guestID string) (string, bool) {
	for _, g := range a.state.Guests {
		if g.ID != guestID {
			continue
		}
		room, err := a.rooms.Find(g.Room)
		if err != nil || room.Type == "" {
			return "", false
		}
		return room.Type, true
	}
	return "", false
}

func (a *ReportAggregator) breakdown(revenue map[string]decimal.Decimal, total decimal.Decimal) []RoomTypeBreakdown {
	var order []string
	byType := map[string]*RoomTypeBreakdown{}
	add := func(t string) *RoomTypeBreakdown {
		if b, ok := byType[t]; ok {
			return b
		}
		order = append(order, t)
		b := &RoomTypeBreakdown{Type: t, Revenue: decimal.Zero}
		byType[t] = b
		return b
	}
	for _, room := range a.state.Rooms {
		b := add(room.Type)
		b.TotalRooms++
		if room.Status == models.RoomOccupied {
			b.OccupiedRooms++
		}
	}
	for t, amount := range revenue {
		add(t).Revenue = amount
	}

	out := make([]RoomTypeBreakdown, 0, len(order))
	for _, t := range order {
		b := byType[t]
		b.OccupancyRate = percent(b.OccupiedRooms, b.TotalRooms)
		if total.IsPositive() {
			b.RevenueShare = b.Revenue.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		out = append(out, *b)
	}
	return out
}

// Dashboard summarizes the hotel as of now.
func (a *ReportAggregator) Dashboard() Dashboard {
	now := a.clock.Now()
	d := Dashboard{
		TotalRooms:      a.rooms.Count(),
		OccupiedRooms:   a.rooms.CountByStatus(models.RoomOccupied),
		VacantRooms:     a.rooms.CountByStatus(models.RoomVacant),
		OutOfOrderRooms: a.rooms.CountByStatus(models.RoomOutOfOrder),
		TodayRevenue:    decimal.Zero,
	}
	from, to := StartOfDay(now), EndOfDay(now)
	for tx := range a.transactions.Query(OfType(models.TransactionCheckOut)) {
		if !tx.Date.Before(from) && !tx.Date.After(to) {
			d.TodayRevenue = d.TodayRevenue.Add(tx.Amount)
		}
	}
	names := map[string]string{}
	for _, g := range a.state.Guests {
		names[g.ID] = g.Name
		if g.Status == models.GuestCheckedIn {
			d.CurrentGuests++
		}
	}
	for _, tx := range a.transactions.Recent(dashboardRecentLimit) {
		name, ok := names[tx.GuestID]
		if !ok {
			name = "Guest"
		}
		d.RecentActivity = append(d.RecentActivity, Activity{Transaction: tx, GuestName: name})
	}
	if d.RecentActivity == nil {
		d.RecentActivity = []Activity{}
	}
	return d
}
