package agg

import (
	"sort"

	"hotelera/internal/domain"
	"hotelera/internal/format"
)

// UndatedKey groups bookings that lost their check-in date. Groups sort by
// plain string compare against ISO date keys, so the sentinel starts with a
// tilde, which sorts after every digit: the undated group always lands last.
const UndatedKey = "~sin-fecha"

// DayGroup is one agenda day.
type DayGroup struct {
	Key      string
	Label    string // "lun 06", or "Sin fecha" for the undated group
	Date     string // "06 jul"
	IsToday  bool
	Bookings []domain.BookingSummary
}

// GroupBookingsByDay buckets summaries by check-in date key and sorts the
// buckets ascending. Booking order within a bucket follows input order.
func GroupBookingsByDay(items []domain.BookingSummary, todayKey string) []DayGroup {
	buckets := make(map[string][]domain.BookingSummary)
	for _, b := range items {
		key := UndatedKey
		if b.CheckInDate != nil && *b.CheckInDate != "" {
			key = *b.CheckInDate
		}
		buckets[key] = append(buckets[key], b)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for key, bookings := range buckets {
		g := DayGroup{Key: key, IsToday: key == todayKey, Bookings: bookings}
		if key == UndatedKey {
			g.Label = "Sin fecha"
			g.Date = format.Empty
		} else {
			k := key
			g.Label = format.FormatDayLabel(&k)
			g.Date = format.FormatShortDate(&k)
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}
