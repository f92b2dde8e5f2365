// Package board derives the live room board for one day: each room joined
// against the bookings that touch it, reduced to a single operational status.
package board

import (
	"sort"

	"hotelera/internal/domain"
	"hotelera/internal/format"
)

const (
	defaultMaintenanceNote  = "Fuera de servicio"
	defaultHousekeepingNote = "Limpieza programada"
	readyNote               = "Lista para check-in"
)

// Build computes one RoomView per room for todayKey. It is deterministic,
// order-independent across rooms and never fails: bookings with missing
// dates simply never drive a status.
func Build(rooms []domain.Room, bookings []domain.BookingSummary, todayKey string) []domain.RoomView {
	byRoom := make(map[string][]domain.BookingSummary)
	for _, b := range bookings {
		if b.RoomNumber == nil {
			continue
		}
		byRoom[*b.RoomNumber] = append(byRoom[*b.RoomNumber], b)
	}

	views := make([]domain.RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, buildRoom(room, byRoom[room.Number], todayKey))
	}
	return views
}

// buildRoom applies the status priority: out-of-service wins over everything,
// then an active stay, then a same-day completed checkout, then the nearest
// upcoming arrival, else the room is simply ready.
func buildRoom(room domain.Room, bookings []domain.BookingSummary, todayKey string) domain.RoomView {
	view := domain.RoomView{
		ID:     room.ID,
		Number: room.Number,
		Floor:  room.Floor,
		Status: domain.RoomAvailable,
	}

	if !room.Active {
		view.Status = domain.RoomMaintenance
		note := defaultMaintenanceNote
		if room.Notes != nil && *room.Notes != "" {
			note = *room.Notes
		}
		view.Note = &note
		return view
	}

	if active := activeStay(bookings, todayKey); active != nil {
		view.Status = domain.RoomOccupied
		view.Guest = active.GuestName
		view.CheckIn = shortDate(active.CheckInDate)
		view.CheckOut = shortDate(active.CheckOutDate)
		view.Channel = active.ChannelName
		view.Rate = active.PricePerNight
		return view
	}

	if checkout := sameDayCheckout(bookings, todayKey); checkout != nil {
		view.Status = domain.RoomCleaning
		view.Guest = checkout.GuestName
		view.CheckOut = shortDate(checkout.CheckOutDate)
		view.Channel = checkout.ChannelName
		view.Rate = checkout.PricePerNight
		hk := defaultHousekeepingNote
		view.Housekeeping = &hk
		return view
	}

	if next := nextArrival(bookings, todayKey); next != nil {
		view.Guest = next.GuestName
		view.CheckIn = shortDate(next.CheckInDate)
		view.CheckOut = shortDate(next.CheckOutDate)
		view.Channel = next.ChannelName
		view.Rate = next.PricePerNight
		note := "Ingreso " + format.FormatShortDate(next.CheckInDate)
		view.Note = &note
		return view
	}

	ready := readyNote
	view.Housekeeping = &ready
	return view
}

// activeStay picks the first booking whose [check-in, check-out) interval
// contains today and that is not cancelled.
func activeStay(bookings []domain.BookingSummary, todayKey string) *domain.BookingSummary {
	for i, b := range bookings {
		if b.CheckInDate == nil || b.CheckOutDate == nil {
			continue
		}
		if *b.CheckInDate <= todayKey && *b.CheckOutDate > todayKey && b.Status != domain.BookingCancelled {
			return &bookings[i]
		}
	}
	return nil
}

// sameDayCheckout picks a booking that completed checkout today.
func sameDayCheckout(bookings []domain.BookingSummary, todayKey string) *domain.BookingSummary {
	for i, b := range bookings {
		if b.CheckOutDate != nil && *b.CheckOutDate == todayKey && b.Status == domain.BookingCheckedOut {
			return &bookings[i]
		}
	}
	return nil
}

// nextArrival picks the chronologically earliest booking checking in after
// today. Date keys compare lexicographically.
func nextArrival(bookings []domain.BookingSummary, todayKey string) *domain.BookingSummary {
	var upcoming []*domain.BookingSummary
	for i, b := range bookings {
		if b.CheckInDate != nil && *b.CheckInDate > todayKey {
			upcoming = append(upcoming, &bookings[i])
		}
	}
	if len(upcoming) == 0 {
		return nil
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return *upcoming[i].CheckInDate < *upcoming[j].CheckInDate
	})
	return upcoming[0]
}

func shortDate(key *string) *string {
	if key == nil {
		return nil
	}
	s := format.FormatShortDate(key)
	return &s
}

// Stats are the board's headline counters.
type Stats struct {
	Total         int
	Occupied      int
	Available     int
	Cleaning      int
	Maintenance   int
	OccupancyRate int // rounded percentage of occupied rooms
}

func Summarize(views []domain.RoomView) Stats {
	var s Stats
	s.Total = len(views)
	for _, v := range views {
		switch v.Status {
		case domain.RoomOccupied:
			s.Occupied++
		case domain.RoomCleaning:
			s.Cleaning++
		case domain.RoomMaintenance:
			s.Maintenance++
		default:
			s.Available++
		}
	}
	if s.Total > 0 {
		s.OccupancyRate = int(float64(s.Occupied)/float64(s.Total)*100 + 0.5)
	}
	return s
}

// Arrival is a same-day check-in for the dashboard and board sidebars.
type Arrival struct {
	Guest   string
	Room    string
	Date    string
	Channel string
}

// Departure is a same-day check-out, flagged when a balance remains.
type Departure struct {
	Guest   string
	Room    string
	Date    string
	Settled bool
}

// Arrivals lists today's non-cancelled check-ins.
func Arrivals(bookings []domain.BookingSummary, todayKey string) []Arrival {
	out := make([]Arrival, 0)
	for _, b := range bookings {
		if b.CheckInDate == nil || *b.CheckInDate != todayKey || b.Status == domain.BookingCancelled {
			continue
		}
		out = append(out, Arrival{
			Guest:   textOr(b.GuestName, "Sin huesped"),
			Room:    textOr(b.RoomNumber, "-"),
			Date:    format.FormatShortDate(b.CheckInDate),
			Channel: textOr(b.ChannelName, "Sin canal"),
		})
	}
	return out
}

// Departures lists today's non-cancelled check-outs.
func Departures(bookings []domain.BookingSummary, todayKey string) []Departure {
	out := make([]Departure, 0)
	for _, b := range bookings {
		if b.CheckOutDate == nil || *b.CheckOutDate != todayKey || b.Status == domain.BookingCancelled {
			continue
		}
		settled := b.BalanceDue == nil || *b.BalanceDue <= 0
		out = append(out, Departure{
			Guest:   textOr(b.GuestName, "Sin huesped"),
			Room:    textOr(b.RoomNumber, "-"),
			Date:    format.FormatShortDate(b.CheckOutDate),
			Settled: settled,
		})
	}
	return out
}

// Alert is one priority item for the board sidebar.
type Alert struct {
	Title  string
	Detail string
}

// Alerts surfaces at most one room per attention bucket, in the order the
// front desk triages them.
func Alerts(views []domain.RoomView) []Alert {
	out := make([]Alert, 0, 3)
	if v := firstWithStatus(views, domain.RoomMaintenance); v != nil {
		out = append(out, Alert{
			Title:  "Mantenimiento pendiente",
			Detail: "Habitacion " + v.Number + " · " + textOr(v.Note, "Revision programada"),
		})
	}
	if v := firstWithStatus(views, domain.RoomCleaning); v != nil {
		out = append(out, Alert{
			Title:  "Limpieza en curso",
			Detail: "Habitacion " + v.Number + " · " + textOr(v.Housekeeping, "En progreso"),
		})
	}
	if v := firstWithStatus(views, domain.RoomOccupied); v != nil {
		out = append(out, Alert{
			Title:  "Salida programada",
			Detail: "Habitacion " + v.Number + " · " + textOr(v.CheckOut, "Salida hoy"),
		})
	}
	return out
}

// HousekeepingTask is one entry of the cleaning queue.
type HousekeepingTask struct {
	Room string
	Task string
}

func HousekeepingQueue(views []domain.RoomView) []HousekeepingTask {
	out := make([]HousekeepingTask, 0)
	for _, v := range views {
		if v.Status != domain.RoomCleaning {
			continue
		}
		out = append(out, HousekeepingTask{
			Room: v.Number,
			Task: textOr(v.Housekeeping, defaultHousekeepingNote),
		})
	}
	return out
}

func firstWithStatus(views []domain.RoomView, status domain.RoomStatus) *domain.RoomView {
	for i, v := range views {
		if v.Status == status {
			return &views[i]
		}
	}
	return nil
}

func textOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
