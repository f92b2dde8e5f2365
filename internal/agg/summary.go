package agg

import (
	"fmt"
	"math"
	"sort"

	"hotelera/internal/domain"
)

// BookingCounts are the agenda's headline counters.
type BookingCounts struct {
	Total     int
	Pending   int
	CheckIns  int
	Cancelled int
}

func CountBookings(items []domain.BookingSummary) BookingCounts {
	var c BookingCounts
	c.Total = len(items)
	for _, b := range items {
		switch b.Status {
		case domain.BookingPending:
			c.Pending++
		case domain.BookingCheckedIn:
			c.CheckIns++
		case domain.BookingCancelled:
			c.Cancelled++
		}
	}
	return c
}

// PaymentTotals are the ledger's headline numbers. Refunded amounts stay in
// Revenue; the ledger is a payment history, not a net statement.
type PaymentTotals struct {
	Revenue      float64
	RefundTotal  float64
	PendingCount int
}

func TotalPayments(items []domain.Payment) PaymentTotals {
	var t PaymentTotals
	for _, p := range items {
		t.Revenue += p.Amount
		switch p.Status() {
		case domain.PaymentRefunded:
			t.RefundTotal += p.Amount
		case domain.PaymentPending:
			t.PendingCount++
		}
	}
	return t
}

// ChannelSlice is one channel's cut of the revenue.
type ChannelSlice struct {
	Label string
	Sum   float64
	Share float64 // Sum / total, 0 when the total is 0
}

// ChannelBreakdown sums payment amounts per channel and computes each
// channel's share, sorted by share descending. Shares sum to 1 whenever the
// total is positive.
func ChannelBreakdown(items []domain.Payment) []ChannelSlice {
	sums := make(map[string]float64)
	order := make([]string, 0)
	var total float64
	for _, p := range items {
		label := ChannelOf(p.ChannelName)
		if _, seen := sums[label]; !seen {
			order = append(order, label)
		}
		sums[label] += p.Amount
		total += p.Amount
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

// TrendDirection flags which way a metric moved month over month.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// Trend is the display-ready comparison against the previous period.
type Trend struct {
	Text      string
	Direction TrendDirection
}

// CalculateTrend compares current against previous as a percentage change.
// A zero or non-finite previous (or non-finite current) yields a flat
// placeholder instead of propagating NaN or Inf into the display.
func CalculateTrend(current, previous float64) Trend {
	if math.IsNaN(current) || math.IsInf(current, 0) ||
		math.IsNaN(previous) || math.IsInf(previous, 0) || previous == 0 {
		return Trend{Text: "—", Direction: TrendFlat}
	}
	diff := (current - previous) / math.Abs(previous) * 100
	if diff == 0 {
		return Trend{Text: "0.0% vs mes anterior", Direction: TrendFlat}
	}
	dir := TrendUp
	sign := "+"
	if diff < 0 {
		dir = TrendDown
		sign = ""
	}
	return Trend{Text: fmt.Sprintf("%s%.1f%% vs mes anterior", sign, diff), Direction: dir}
}
