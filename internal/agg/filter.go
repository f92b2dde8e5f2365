package agg

import (
	"strings"

	"hotelera/internal/domain"
)

// noChannel stands in for records whose booking lost its channel join.
const noChannel = "Sin canal"

// ChannelOf is the facet value a record contributes for its channel.
func ChannelOf(name *string) string {
	if name == nil || *name == "" {
		return noChannel
	}
	return *name
}

// BookingFilter is the agenda's active selection snapshot.
type BookingFilter struct {
	Statuses []domain.BookingStatus
	Channels []string
	Query    string
}

func (f BookingFilter) matches(b domain.BookingSummary) bool {
	if !facetMatch(f.Statuses, b.Status) {
		return false
	}
	if !facetMatch(f.Channels, ChannelOf(b.ChannelName)) {
		return false
	}
	return matchesQuery(f.Query, deref(b.GuestName), deref(b.Reference), deref(b.RoomNumber))
}

// FilterBookings returns the summaries passing the facet and text filters,
// preserving input order.
func FilterBookings(items []domain.BookingSummary, f BookingFilter) []domain.BookingSummary {
	out := make([]domain.BookingSummary, 0, len(items))
	for _, b := range items {
		if f.matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// GuestFilter is the registry's active selection snapshot. Tags is a
// multi-valued facet: a guest passes with any overlapping tag, and an empty
// active tag set matches everyone.
type GuestFilter struct {
	Statuses []domain.GuestStatus
	Tags     []string
	Query    string
}

func (f GuestFilter) matches(g domain.GuestProfile) bool {
	if !facetMatch(f.Statuses, g.Status) {
		return false
	}
	if len(f.Tags) > 0 && !containsAny(f.Tags, g.Tags) {
		return false
	}
	return matchesQuery(f.Query, g.FullName, g.Email)
}

func FilterGuests(items []domain.GuestProfile, f GuestFilter) []domain.GuestProfile {
	out := make([]domain.GuestProfile, 0, len(items))
	for _, g := range items {
		if f.matches(g) {
			out = append(out, g)
		}
	}
	return out
}

// PaymentFilter is the ledger's active selection snapshot.
type PaymentFilter struct {
	Statuses []domain.PaymentStatus
	Channels []string
	Query    string
}

func (f PaymentFilter) matches(p domain.Payment) bool {
	if !facetMatch(f.Statuses, p.Status()) {
		return false
	}
	if !facetMatch(f.Channels, ChannelOf(p.ChannelName)) {
		return false
	}
	return matchesQuery(f.Query, deref(p.Reference), deref(p.GuestName))
}

func FilterPayments(items []domain.Payment, f PaymentFilter) []domain.Payment {
	out := make([]domain.Payment, 0, len(items))
	for _, p := range items {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// facetMatch treats an empty facet selection as "all".
func facetMatch[T comparable](set []T, value T) bool {
	return len(set) == 0 || contains(set, value)
}

// matchesQuery does a case-insensitive substring match over the entity's
// searchable fields. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
