package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hotelera/internal/agg"
	"hotelera/internal/board"
	"hotelera/internal/domain"
	"hotelera/internal/format"
)

// cache keys; commands invalidate the same names
func keyBoard(day string) string        { return "board:" + day }
func keyAgenda(weekStart string) string { return "agenda:" + weekStart }
func keyDashboard(month string) string  { return "dashboard:" + month }

const (
	keyGuests   = "guests"
	keyPayments = "payments"
)

// BoardView is everything the reception board shows for one day.
type BoardView struct {
	Date         string
	DateLabel    string
	Rooms        []domain.RoomView
	Stats        board.Stats
	Arrivals     []board.Arrival
	Departures   []board.Departure
	Alerts       []board.Alert
	Housekeeping []board.HousekeepingTask
}

// AgendaView is one week of bookings grouped by check-in day.
type AgendaView struct {
	Week     format.WeekRange
	Groups   []agg.DayGroup
	Counts   agg.BookingCounts
	Channels []string
}

// GuestsView is the guest registry with derived profiles.
type GuestsView struct {
	Profiles []domain.GuestProfile
	Counts   agg.GuestCounts
	Tags     []string
}

// PaymentsView is the payment ledger with running totals.
type PaymentsView struct {
	Payments []domain.Payment
	Totals   agg.PaymentTotals
	Channels []agg.ChannelSlice
}

// DashboardView carries one month's KPIs with month-over-month trends.
type DashboardView struct {
	Month          string
	MonthLabel     string
	KPIs           agg.KPIAggregate
	RevenueTrend   agg.Trend
	OccupancyTrend agg.Trend
	NightsTrend    agg.Trend
	Channels       []agg.ChannelSlice
}

type QueryService struct {
	repo      domain.FrontDeskRepository
	cache     domain.Cache
	cacheTTL  time.Duration
	roomCount int
	lookahead int
	now       func() time.Time
}

func NewQueryService(r domain.FrontDeskRepository, c domain.Cache, ttl time.Duration, roomCount, lookaheadDays int) *QueryService {
	return &QueryService{
		repo:      r,
		cache:     c,
		cacheTTL:  ttl,
		roomCount: roomCount,
		lookahead: lookaheadDays,
		now:       time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *QueryService) WithClock(now func() time.Time) *QueryService {
	s.now = now
	return s
}

// Board derives today's room board. Rooms and the bookings touching the
// lookahead window load concurrently; the derivation itself is pure.
func (s *QueryService) Board(ctx context.Context) (BoardView, error) {
	today := format.FormatDateKey(s.now())

	var view BoardView
	if ok, _ := s.cache.Get(ctx, keyBoard(today), &view); ok {
		return view, nil
	}

	window := domain.DateRange{
		Start: today,
		End:   format.FormatDateKey(s.now().AddDate(0, 0, s.lookahead)),
	}

	var (
		rooms    []domain.Room
		bookings []domain.BookingSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rooms, err = s.repo.ListRooms(gctx)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.repo.ListBookingSummaries(gctx, domain.BookingWindowQuery{Range: window})
		return err
	})
	if err := g.Wait(); err != nil {
		return BoardView{}, err
	}

	views := board.Build(rooms, bookings, today)
	view = BoardView{
		Date:         today,
		DateLabel:    format.FormatLongDate(&today),
		Rooms:        views,
		Stats:        board.Summarize(views),
		Arrivals:     board.Arrivals(bookings, today),
		Departures:   board.Departures(bookings, today),
		Alerts:       board.Alerts(views),
		Housekeeping: board.HousekeepingQueue(views),
	}
	_ = s.cache.Set(ctx, keyBoard(today), view, int(s.cacheTTL.Seconds()))
	return view, nil
}

// Agenda groups the week containing dayKey (today when empty) by check-in
// day, after applying the caller's facet and text filters. The unfiltered
// week is what gets cached; filters run per call.
func (s *QueryService) Agenda(ctx context.Context, dayKey string, filter agg.BookingFilter) (AgendaView, error) {
	base := s.now()
	if t, ok := format.ParseDateKey(&dayKey); ok {
		base = t
	}
	week := format.WeekOf(base)
	today := format.FormatDateKey(s.now())

	summaries, err := s.weekSummaries(ctx, week)
	if err != nil {
		return AgendaView{}, err
	}

	names := make([]*string, 0, len(summaries))
	for i := range summaries {
		names = append(names, summaries[i].ChannelName)
	}

	filtered := agg.FilterBookings(summaries, filter)
	return AgendaView{
		Week:     week,
		Groups:   agg.GroupBookingsByDay(filtered, today),
		Counts:   agg.CountBookings(filtered),
		Channels: agg.KnownChannels(names),
	}, nil
}

func (s *QueryService) weekSummaries(ctx context.Context, week format.WeekRange) ([]domain.BookingSummary, error) {
	var out []domain.BookingSummary
	if ok, _ := s.cache.Get(ctx, keyAgenda(week.Start), &out); ok {
		return out, nil
	}
	out, err := s.repo.ListBookingSummaries(ctx, domain.BookingWindowQuery{
		Range:     domain.DateRange{Start: week.Start, End: week.End},
		ByCheckIn: true,
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyAgenda(week.Start), out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// Guests loads the registry and its stay history concurrently and derives
// per-guest profiles. Filters run on the derived profiles.
func (s *QueryService) Guests(ctx context.Context, filter agg.GuestFilter) (GuestsView, error) {
	var profiles []domain.GuestProfile
	if ok, _ := s.cache.Get(ctx, keyGuests, &profiles); !ok {
		var (
			guests []domain.Guest
			stays  []domain.GuestStay
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			guests, err = s.repo.ListGuests(gctx)
			return err
		})
		g.Go(func() (err error) {
			stays, err = s.repo.ListGuestStays(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return GuestsView{}, err
		}
		profiles = agg.BuildGuestProfiles(guests, stays)
		_ = s.cache.Set(ctx, keyGuests, profiles, int(s.cacheTTL.Seconds()))
	}

	filtered := agg.FilterGuests(profiles, filter)
	return GuestsView{
		Profiles: filtered,
		Counts:   agg.CountGuests(filtered),
		Tags:     agg.AvailableTags(profiles),
	}, nil
}

// Payments loads the ledger and totals it. Refunds stay in the revenue sum.
func (s *QueryService) Payments(ctx context.Context, filter agg.PaymentFilter) (PaymentsView, error) {
	var payments []domain.Payment
	if ok, _ := s.cache.Get(ctx, keyPayments, &payments); !ok {
		var err error
		payments, err = s.repo.ListPayments(ctx)
		if err != nil {
			return PaymentsView{}, err
		}
		_ = s.cache.Set(ctx, keyPayments, payments, int(s.cacheTTL.Seconds()))
	}

	filtered := agg.FilterPayments(payments, filter)
	return PaymentsView{
		Payments: filtered,
		Totals:   agg.TotalPayments(filtered),
		Channels: agg.ChannelBreakdown(filtered),
	}, nil
}

// Dashboard aggregates one month's KPI rows (the current month when
// monthKey is empty) and compares them against the previous month.
func (s *QueryService) Dashboard(ctx context.Context, monthKey string) (DashboardView, error) {
	base := s.now()
	if t, ok := format.ParseDateKey(&monthKey); ok {
		base = t
	}
	month := format.MonthKey(base)
	prev := format.MonthKey(format.AddMonths(base, -1))

	var view DashboardView
	if ok, _ := s.cache.Get(ctx, keyDashboard(month), &view); ok {
		return view, nil
	}

	rows, err := s.repo.ListMonthlyKPIs(ctx, []string{prev, month})
	if err != nil {
		return DashboardView{}, err
	}

	curRows := agg.MonthRows(rows, month)
	cur := agg.AggregateKPIs(curRows, month, s.roomCount)
	last := agg.AggregateKPIs(agg.MonthRows(rows, prev), prev, s.roomCount)

	view = DashboardView{
		Month:          month,
		MonthLabel:     format.FormatLongDate(&month),
		KPIs:           cur,
		RevenueTrend:   agg.CalculateTrend(cur.Revenue, last.Revenue),
		OccupancyTrend: agg.CalculateTrend(cur.OccupancyRate, last.OccupancyRate),
		NightsTrend:    agg.CalculateTrend(float64(cur.NightsSold), float64(last.NightsSold)),
		Channels:       agg.ChannelRevenue(curRows),
	}
	_ = s.cache.Set(ctx, keyDashboard(month), view, int(s.cacheTTL.Seconds()))
	return view, nil
}

// Channels lists the sales channels, for booking forms.
func (s *QueryService) Channels(ctx context.Context) ([]domain.Channel, error) {
	return s.repo.ListChannels(ctx)
}

// GetBooking fetches one booking by id, uncached.
func (s *QueryService) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}
