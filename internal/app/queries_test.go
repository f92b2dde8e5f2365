package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelera/internal/agg"
	"hotelera/internal/app"
	"hotelera/internal/domain"
	"hotelera/internal/validate"
)

// ---- fakes ----

type fakeRepo struct {
	rooms     []domain.Room
	summaries []domain.BookingSummary
	guests    []domain.Guest
	stays     []domain.GuestStay
	payments  []domain.Payment
	kpis      []domain.MonthlyKPI
	channels  []domain.Channel
	booking   domain.Booking

	insertedBookings []domain.Booking
	insertedPayments []domain.PaymentRecord
	statusUpdates    []domain.BookingStatus
}

func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.Room, error) { return f.rooms, nil }
func (f *fakeRepo) ListBookingSummaries(ctx context.Context, q domain.BookingWindowQuery) ([]domain.BookingSummary, error) {
	return f.summaries, nil
}
func (f *fakeRepo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	if f.booking.ID != id {
		return domain.Booking{}, domain.ErrNotFound
	}
	return f.booking, nil
}
func (f *fakeRepo) ListGuests(ctx context.Context) ([]domain.Guest, error) { return f.guests, nil }
func (f *fakeRepo) ListGuestStays(ctx context.Context) ([]domain.GuestStay, error) {
	return f.stays, nil
}
func (f *fakeRepo) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return f.payments, nil
}
func (f *fakeRepo) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	return f.channels, nil
}
func (f *fakeRepo) ListMonthlyKPIs(ctx context.Context, months []string) ([]domain.MonthlyKPI, error) {
	return f.kpis, nil
}
func (f *fakeRepo) InsertBooking(ctx context.Context, b domain.Booking) error {
	f.insertedBookings = append(f.insertedBookings, b)
	return nil
}
func (f *fakeRepo) UpdateBooking(ctx context.Context, b domain.Booking) error { return nil }
func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}
func (f *fakeRepo) InsertGuest(ctx context.Context, g domain.Guest) error { return nil }
func (f *fakeRepo) UpdateGuest(ctx context.Context, g domain.Guest) error { return nil }
func (f *fakeRepo) InsertPayment(ctx context.Context, p domain.PaymentRecord) error {
	f.insertedPayments = append(f.insertedPayments, p)
	return nil
}
func (f *fakeRepo) UpdatePayment(ctx context.Context, p domain.PaymentRecord) error { return nil }

type fakeCache struct {
	store   map[string]any
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *app.BoardView:
		*d = v.(app.BoardView)
	case *app.DashboardView:
		*d = v.(app.DashboardView)
	case *[]domain.BookingSummary:
		*d = v.([]domain.BookingSummary)
	case *[]domain.GuestProfile:
		*d = v.([]domain.GuestProfile)
	case *[]domain.Payment:
		*d = v.([]domain.Payment)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.store, key)
	return nil
}

// july6 is a Sunday; its week runs Mon 2025-06-30 through Sun 2025-07-06.
var july6 = time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time { return func() time.Time { return t } }

// ---- query tests ----

func TestBoard_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{
		rooms: []domain.Room{
			{ID: "r1", Number: "101", Floor: 1, Active: true},
			{ID: "r2", Number: "202", Floor: 2, Active: true},
		},
		summaries: []domain.BookingSummary{
			{
				ID: "b1", RoomNumber: ptr("202"), GuestName: ptr("Laura Diaz"),
				CheckInDate: ptr("2025-07-05"), CheckOutDate: ptr("2025-07-08"),
				Status: domain.BookingCheckedIn,
			},
		},
	}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute, 2, 14).WithClock(clockAt(july6))

	view, err := q.Board(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.Date != "2025-07-06" {
		t.Fatalf("unexpected date: %s", view.Date)
	}
	byNumber := map[string]domain.RoomView{}
	for _, rv := range view.Rooms {
		byNumber[rv.Number] = rv
	}
	if byNumber["202"].Status != domain.RoomOccupied {
		t.Fatalf("room 202 should be occupied, got %s", byNumber["202"].Status)
	}
	if byNumber["101"].Status != domain.RoomAvailable {
		t.Fatalf("room 101 should be available, got %s", byNumber["101"].Status)
	}
	if view.Stats.Occupied != 1 || view.Stats.Total != 2 {
		t.Fatalf("unexpected stats: %+v", view.Stats)
	}

	// Mutate repo to prove the second read is served from cache.
	repo.rooms = nil
	view2, err := q.Board(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(view2.Rooms) != 2 {
		t.Fatalf("expected cached board, got %d rooms", len(view2.Rooms))
	}
}

func TestAgenda_GroupsAndFilter(t *testing.T) {
	repo := &fakeRepo{
		summaries: []domain.BookingSummary{
			{ID: "b1", GuestName: ptr("Ana Rojas"), CheckInDate: ptr("2025-07-01"), Status: domain.BookingConfirmed, ChannelName: ptr("Directo")},
			{ID: "b2", GuestName: ptr("Luis Paz"), CheckInDate: ptr("2025-07-01"), Status: domain.BookingPending, ChannelName: ptr("Booking")},
			{ID: "b3", GuestName: ptr("Mia Leon"), Status: domain.BookingConfirmed},
		},
	}
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute, 2, 14).WithClock(clockAt(july6))

	view, err := q.Agenda(context.Background(), "", agg.BookingFilter{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.Week.Start != "2025-06-30" || view.Week.End != "2025-07-06" {
		t.Fatalf("unexpected week: %+v", view.Week)
	}
	if len(view.Groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(view.Groups))
	}
	// The undated group sorts last.
	if view.Groups[len(view.Groups)-1].Key != agg.UndatedKey {
		t.Fatalf("undated group should be last, got %s", view.Groups[len(view.Groups)-1].Key)
	}
	if view.Counts.Total != 3 || view.Counts.Pending != 1 {
		t.Fatalf("unexpected counts: %+v", view.Counts)
	}

	// Facet filter narrows the groups but the channel list stays complete.
	filtered, err := q.Agenda(context.Background(), "", agg.BookingFilter{
		Statuses: []domain.BookingStatus{domain.BookingPending},
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if filtered.Counts.Total != 1 {
		t.Fatalf("expected 1 pending booking, got %d", filtered.Counts.Total)
	}
	if len(filtered.Channels) != 3 {
		t.Fatalf("channel facet should list all channels, got %v", filtered.Channels)
	}
}

func TestGuests_DerivedProfiles(t *testing.T) {
	repo := &fakeRepo{
		guests: []domain.Guest{
			{ID: "g1", FullName: "Carmen Silva", Email: "carmen@mail.com"},
		},
		stays: []domain.GuestStay{
			{GuestID: "g1", CheckInDate: ptr("2025-01-10"), CheckOutDate: ptr("2025-01-12"), Status: domain.BookingCheckedOut},
			{GuestID: "g1", CheckInDate: ptr("2025-03-02"), CheckOutDate: ptr("2025-03-04"), Status: domain.BookingCheckedOut},
			{GuestID: "g1", CheckInDate: ptr("2025-06-20"), CheckOutDate: ptr("2025-06-22"), Status: domain.BookingCheckedOut},
		},
	}
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute, 2, 14).WithClock(clockAt(july6))

	view, err := q.Guests(context.Background(), agg.GuestFilter{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(view.Profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(view.Profiles))
	}
	p := view.Profiles[0]
	if p.Visits != 3 || p.Status != domain.GuestVIP {
		t.Fatalf("three visits should make a VIP, got %+v", p)
	}
	if view.Counts.VIP != 1 {
		t.Fatalf("unexpected counts: %+v", view.Counts)
	}
}

func TestDashboard_Trends(t *testing.T) {
	repo := &fakeRepo{
		kpis: []domain.MonthlyKPI{
			{Month: "2025-06-01", ChannelName: ptr("Directo"), NightsSold: 40, Revenue: 10_000_000, Bookings: 10},
			{Month: "2025-07-01", ChannelName: ptr("Directo"), NightsSold: 30, Revenue: 8_000_000, Bookings: 8},
			{Month: "2025-07-01", ChannelName: ptr("Booking"), NightsSold: 10, Revenue: 3_000_000, Bookings: 4},
		},
	}
	q := app.NewQueryService(repo, &fakeCache{}, time.Minute, 20, 14).WithClock(clockAt(july6))

	view, err := q.Dashboard(context.Background(), "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.Month != "2025-07-01" {
		t.Fatalf("unexpected month: %s", view.Month)
	}
	if view.KPIs.Revenue != 11_000_000 || view.KPIs.NightsSold != 40 {
		t.Fatalf("unexpected KPIs: %+v", view.KPIs)
	}
	if view.RevenueTrend.Direction != agg.TrendUp {
		t.Fatalf("revenue 11M vs 10M should trend up, got %+v", view.RevenueTrend)
	}
	if len(view.Channels) != 2 || view.Channels[0].Label != "Directo" {
		t.Fatalf("unexpected channel breakdown: %+v", view.Channels)
	}
}

// ---- command tests ----

func TestCreateBooking_RejectsInvalidDraft(t *testing.T) {
	repo := &fakeRepo{}
	c := app.NewCommandService(repo, &fakeCache{}).WithClock(clockAt(july6))

	_, err := c.CreateBooking(context.Background(), validate.BookingDraft{
		RoomID: "r1", ChannelID: "ch1",
		CheckInDate: "2025-07-10", CheckOutDate: "2025-07-08",
		PricePerNight: "320000", NumberOfGuests: "2",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["guestId"] == "" || verr.Fields["checkOutDate"] == "" {
		t.Fatalf("missing field messages: %+v", verr.Fields)
	}
	if len(repo.insertedBookings) != 0 {
		t.Fatal("invalid draft must not reach the store")
	}
}

func TestCreateBooking_InsertsAndInvalidates(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{}
	c := app.NewCommandService(repo, cache).WithClock(clockAt(july6))

	b, err := c.CreateBooking(context.Background(), validate.BookingDraft{
		GuestID: "g1", RoomID: "r1", ChannelID: "ch1",
		CheckInDate: "2025-07-10", CheckOutDate: "2025-07-12",
		PricePerNight: "320000", NumberOfGuests: "2",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.ID == "" || b.Reference == nil {
		t.Fatalf("booking should get an id and reference: %+v", b)
	}
	if len(repo.insertedBookings) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.insertedBookings))
	}
	if !contains(cache.deleted, "board:2025-07-06") {
		t.Fatalf("board cache should be evicted, deleted: %v", cache.deleted)
	}
	if !contains(cache.deleted, "agenda:2025-07-07") {
		t.Fatalf("the booking's agenda week should be evicted, deleted: %v", cache.deleted)
	}
}

func TestCancelBooking_KeepsRecord(t *testing.T) {
	repo := &fakeRepo{booking: domain.Booking{ID: "b1", CheckInDate: ptr("2025-07-10")}}
	c := app.NewCommandService(repo, &fakeCache{}).WithClock(clockAt(july6))

	if err := c.CancelBooking(context.Background(), "b1"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.statusUpdates) != 1 || repo.statusUpdates[0] != domain.BookingCancelled {
		t.Fatalf("expected a single cancel status update, got %v", repo.statusUpdates)
	}
}

func TestCancelBooking_UnknownID(t *testing.T) {
	c := app.NewCommandService(&fakeRepo{}, &fakeCache{}).WithClock(clockAt(july6))
	if err := c.CancelBooking(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreatePayment_DefaultsDateToToday(t *testing.T) {
	repo := &fakeRepo{}
	c := app.NewCommandService(repo, &fakeCache{}).WithClock(clockAt(july6))

	p, err := c.CreatePayment(context.Background(), validate.PaymentDraft{
		BookingID: "b1", Amount: "$ 320.000", Method: "CASH",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.PaymentDate == nil || *p.PaymentDate != "2025-07-06" {
		t.Fatalf("payment date should default to today, got %v", p.PaymentDate)
	}
	if p.Amount != 320000 {
		t.Fatalf("formatted amount should parse to 320000, got %v", p.Amount)
	}
	if len(repo.insertedPayments) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.insertedPayments))
	}
}

func ptr[T any](v T) *T { return &v }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
