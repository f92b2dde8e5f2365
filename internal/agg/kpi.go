package agg

import (
	"sort"

	"hotelera/internal/domain"
	"hotelera/internal/format"
)

// KPIAggregate folds one month's KPI rows into the dashboard numbers.
type KPIAggregate struct {
	Revenue       float64
	RevenueNoTax  float64
	NightsSold    int
	Bookings      int
	OccupancyRate float64 // percentage of available room-nights sold
	ADR           float64 // revenue per night sold
	RevPAR        float64 // revenue per available room-night
}

// AggregateKPIs sums the month's rows (one per channel) and derives
// occupancy, ADR and RevPAR against roomCount rooms over the month's
// calendar length. Every ratio guards its zero denominator.
func AggregateKPIs(rows []domain.MonthlyKPI, monthKey string, roomCount int) KPIAggregate {
	var out KPIAggregate
	for _, r := range rows {
		out.Revenue += r.Revenue
		out.RevenueNoTax += r.RevenueNoTax
		out.NightsSold += r.NightsSold
		out.Bookings += r.Bookings
	}

	days := 30
	if t, ok := format.ParseDateKey(&monthKey); ok {
		days = format.DaysInMonth(t)
	}
	available := roomCount * days

	if available > 0 {
		out.OccupancyRate = float64(out.NightsSold) / float64(available) * 100
		out.RevPAR = out.Revenue / float64(available)
	}
	if out.NightsSold > 0 {
		out.ADR = out.Revenue / float64(out.NightsSold)
	}
	return out
}

// ChannelRevenue folds per-channel KPI rows into revenue slices, sorted by
// share descending. Rows without a channel fall under "Sin canal".
func ChannelRevenue(rows []domain.MonthlyKPI) []ChannelSlice {
	sums := make(map[string]float64)
	order := make([]string, 0)
	var total float64
	for _, r := range rows {
		label := ChannelOf(r.ChannelName)
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		sums[label] += r.Revenue
		total += r.Revenue
	}

	out := make([]ChannelSlice, 0, len(order))
	for _, label := range order {
		s := ChannelSlice{Label: label, Sum: sums[label]}
		if total > 0 {
			s.Share = sums[label] / total
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Share > out[j].Share })
	return out
}

// MonthRows filters the KPI rows belonging to monthKey.
func MonthRows(rows []domain.MonthlyKPI, monthKey string) []domain.MonthlyKPI {
	out := make([]domain.MonthlyKPI, 0, len(rows))
	for _, r := range rows {
		if r.Month == monthKey {
			out = append(out, r)
		}
	}
	return out
}
