package board_test

import (
	"testing"

	"hotelera/internal/board"
	"hotelera/internal/domain"
)

const today = "2025-07-06"

func ptr[T any](v T) *T { return &v }

func room(number string, active bool, notes *string) domain.Room {
	return domain.Room{ID: "id-" + number, Number: number, Floor: 1, Capacity: 2, Active: active, Notes: notes}
}

func stay(roomNumber, in, out string, status domain.BookingStatus) domain.BookingSummary {
	return domain.BookingSummary{
		ID:         "b-" + roomNumber + "-" + in,
		RoomNumber: ptr(roomNumber),
		GuestName:  ptr("Laura Diaz"),
		CheckInDate: func() *string {
			if in == "" {
				return nil
			}
			return ptr(in)
		}(),
		CheckOutDate: func() *string {
			if out == "" {
				return nil
			}
			return ptr(out)
		}(),
		Status:        status,
		PricePerNight: ptr(320000.0),
		ChannelName:   ptr("Directo"),
	}
}

func buildOne(t *testing.T, r domain.Room, bookings ...domain.BookingSummary) domain.RoomView {
	t.Helper()
	views := board.Build([]domain.Room{r}, bookings, today)
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	return views[0]
}

func TestBuild_InactiveRoomWinsOverEverything(t *testing.T) {
	// Even a checked-in stay cannot override an out-of-service room.
	v := buildOne(t, room("101", false, ptr("Fuga de agua")),
		stay("101", "2025-07-05", "2025-07-08", domain.BookingCheckedIn))
	if v.Status != domain.RoomMaintenance {
		t.Fatalf("status: %s", v.Status)
	}
	if v.Note == nil || *v.Note != "Fuga de agua" {
		t.Fatalf("note: %v", v.Note)
	}
}

func TestBuild_InactiveRoomDefaultNote(t *testing.T) {
	v := buildOne(t, room("101", false, nil))
	if v.Note == nil || *v.Note != "Fuera de servicio" {
		t.Fatalf("note: %v", v.Note)
	}
}

func TestBuild_ActiveStayOccupies(t *testing.T) {
	v := buildOne(t, room("202", true, nil),
		stay("202", "2025-07-05", "2025-07-07", domain.BookingCheckedIn))
	if v.Status != domain.RoomOccupied {
		t.Fatalf("status: %s", v.Status)
	}
	if v.Guest == nil || *v.Guest != "Laura Diaz" {
		t.Fatalf("guest: %v", v.Guest)
	}
	if v.Rate == nil || *v.Rate != 320000 {
		t.Fatalf("rate: %v", v.Rate)
	}
}

func TestBuild_CheckoutDayIsNotOccupied(t *testing.T) {
	// The stay interval is [check-in, check-out): the departure day itself
	// no longer counts as occupied.
	v := buildOne(t, room("202", true, nil),
		stay("202", "2025-07-03", today, domain.BookingConfirmed))
	if v.Status == domain.RoomOccupied {
		t.Fatal("checkout day must not read as occupied")
	}
}

func TestBuild_CancelledStayNeverOccupies(t *testing.T) {
	v := buildOne(t, room("202", true, nil),
		stay("202", "2025-07-05", "2025-07-08", domain.BookingCancelled))
	if v.Status == domain.RoomOccupied {
		t.Fatal("cancelled stay must not occupy")
	}
}

func TestBuild_SameDayCheckoutCleans(t *testing.T) {
	v := buildOne(t, room("303", true, nil),
		stay("303", "2025-07-03", today, domain.BookingCheckedOut))
	if v.Status != domain.RoomCleaning {
		t.Fatalf("status: %s", v.Status)
	}
	if v.Housekeeping == nil || *v.Housekeeping != "Limpieza programada" {
		t.Fatalf("housekeeping: %v", v.Housekeeping)
	}
}

func TestBuild_NextArrivalAnnotatesAvailable(t *testing.T) {
	v := buildOne(t, room("404", true, nil),
		stay("404", "2025-07-20", "2025-07-22", domain.BookingConfirmed),
		stay("404", "2025-07-10", "2025-07-12", domain.BookingConfirmed))
	if v.Status != domain.RoomAvailable {
		t.Fatalf("status: %s", v.Status)
	}
	// the chronologically earliest arrival wins
	if v.Note == nil || *v.Note != "Ingreso 10 jul" {
		t.Fatalf("note: %v", v.Note)
	}
}

func TestBuild_ReadyRoom(t *testing.T) {
	v := buildOne(t, room("505", true, nil))
	if v.Status != domain.RoomAvailable {
		t.Fatalf("status: %s", v.Status)
	}
	if v.Housekeeping == nil || *v.Housekeeping != "Lista para check-in" {
		t.Fatalf("housekeeping: %v", v.Housekeeping)
	}
}

func TestBuild_MissingDatesNeverDriveStatus(t *testing.T) {
	v := buildOne(t, room("606", true, nil),
		stay("606", "", "", domain.BookingConfirmed))
	if v.Status != domain.RoomAvailable {
		t.Fatalf("status: %s", v.Status)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	rooms := []domain.Room{room("101", true, nil), room("202", true, nil)}
	bookings := []domain.BookingSummary{
		stay("202", "2025-07-05", "2025-07-08", domain.BookingCheckedIn),
		stay("101", "2025-07-10", "2025-07-12", domain.BookingConfirmed),
	}
	a := board.Build(rooms, bookings, today)
	b := board.Build(rooms, bookings, today)
	if len(a) != len(b) {
		t.Fatal("length mismatch")
	}
	for i := range a {
		if a[i].Status != b[i].Status || a[i].Number != b[i].Number {
			t.Fatalf("non-deterministic build at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	views := []domain.RoomView{
		{Status: domain.RoomOccupied},
		{Status: domain.RoomOccupied},
		{Status: domain.RoomCleaning},
		{Status: domain.RoomAvailable},
	}
	s := board.Summarize(views)
	if s.Total != 4 || s.Occupied != 2 || s.Cleaning != 1 || s.Available != 1 {
		t.Fatalf("stats: %+v", s)
	}
	if s.OccupancyRate != 50 {
		t.Fatalf("occupancy: %d", s.OccupancyRate)
	}
}

func TestArrivalsAndDepartures(t *testing.T) {
	bookings := []domain.BookingSummary{
		stay("101", today, "2025-07-08", domain.BookingConfirmed),
		stay("202", today, "2025-07-09", domain.BookingCancelled), // excluded
		func() domain.BookingSummary {
			b := stay("303", "2025-07-03", today, domain.BookingCheckedOut)
			b.BalanceDue = ptr(120000.0)
			return b
		}(),
	}
	arr := board.Arrivals(bookings, today)
	if len(arr) != 1 || arr[0].Room != "101" {
		t.Fatalf("arrivals: %+v", arr)
	}
	dep := board.Departures(bookings, today)
	if len(dep) != 1 || dep[0].Settled {
		t.Fatalf("departures: %+v", dep)
	}
}

func TestHousekeepingQueue(t *testing.T) {
	views := board.Build(
		[]domain.Room{room("303", true, nil), room("404", true, nil)},
		[]domain.BookingSummary{stay("303", "2025-07-03", today, domain.BookingCheckedOut)},
		today,
	)
	q := board.HousekeepingQueue(views)
	if len(q) != 1 || q[0].Room != "303" {
		t.Fatalf("queue: %+v", q)
	}
}
