package agg

import (
	"sort"
	"strings"

	"hotelera/internal/domain"
	"hotelera/internal/format"
)

// BuildGuestProfiles joins each guest against their stays and derives visit
// count, total nights, last stay, loyalty status and tags. Cancelled stays
// never count.
func BuildGuestProfiles(guests []domain.Guest, stays []domain.GuestStay) []domain.GuestProfile {
	byGuest := make(map[string][]domain.GuestStay)
	for _, s := range stays {
		if s.Status == domain.BookingCancelled {
			continue
		}
		byGuest[s.GuestID] = append(byGuest[s.GuestID], s)
	}

	out := make([]domain.GuestProfile, 0, len(guests))
	for _, g := range guests {
		visits := byGuest[g.ID]

		profile := domain.GuestProfile{Guest: g, Visits: len(visits)}
		for _, v := range visits {
			profile.TotalNights += format.DiffInDays(v.CheckInDate, v.CheckOutDate)
		}
		if last := latestCheckIn(visits); last != nil {
			profile.LastStay = last
		}
		profile.Status = deriveGuestStatus(g, profile.Visits)
		profile.Tags = deriveGuestTags(g, profile.Visits, profile.TotalNights)
		out = append(out, profile)
	}
	return out
}

func latestCheckIn(stays []domain.GuestStay) *string {
	keys := make([]string, 0, len(stays))
	for _, s := range stays {
		if s.CheckInDate != nil && *s.CheckInDate != "" {
			keys = append(keys, *s.CheckInDate)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	last := keys[len(keys)-1]
	return &last
}

// deriveGuestStatus: blocked notes win, then loyalty, else active.
func deriveGuestStatus(g domain.Guest, visits int) domain.GuestStatus {
	notes := lowerNotes(g)
	if strings.Contains(notes, "bloqueado") || strings.Contains(notes, "no show") {
		return domain.GuestBlocked
	}
	if visits >= 3 {
		return domain.GuestVIP
	}
	return domain.GuestActive
}

func deriveGuestTags(g domain.Guest, visits, nights int) []string {
	notes := lowerNotes(g)
	var tags []string
	if visits >= 3 {
		tags = append(tags, "Preferente")
	}
	if nights >= 4 {
		tags = append(tags, "Larga estadia")
	}
	if strings.Contains(notes, "late") {
		tags = append(tags, "Late check-out")
	}
	if strings.Contains(notes, "directo") {
		tags = append(tags, "Reserva directa")
	}
	return tags
}

func lowerNotes(g domain.Guest) string {
	if g.Notes == nil {
		return ""
	}
	return strings.ToLower(*g.Notes)
}

// GuestCounts are the registry's headline counters.
type GuestCounts struct {
	Total   int
	VIP     int
	Blocked int
}

func CountGuests(items []domain.GuestProfile) GuestCounts {
	var c GuestCounts
	c.Total = len(items)
	for _, g := range items {
		switch g.Status {
		case domain.GuestVIP:
			c.VIP++
		case domain.GuestBlocked:
			c.Blocked++
		}
	}
	return c
}

// AvailableTags is the sorted union of tags across the registry, the tag
// facet's "all known values" set.
func AvailableTags(items []domain.GuestProfile) []string {
	set := make(map[string]struct{})
	for _, g := range items {
		for _, t := range g.Tags {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// KnownChannels is the sorted union of channel facet values in items.
func KnownChannels(names []*string) []string {
	set := make(map[string]struct{})
	for _, n := range names {
		set[ChannelOf(n)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
