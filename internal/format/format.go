// Package format holds the pure date-key and currency display helpers shared
// by every page. Calendar dates travel as YYYY-MM-DD keys; amounts are COP
// with no decimals. Absent values render as an em dash.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// DateKeyLayout is the canonical calendar-date key.
	DateKeyLayout = "2006-01-02"

	// Empty is the placeholder for absent display values.
	Empty = "—"
)

var monthAbbr = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

var weekdayAbbr = [...]string{"dom", "lun", "mar", "mie", "jue", "vie", "sab"}

// FormatDateKey renders t as a date key in t's location.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a date key, tolerating RFC3339 timestamps (the store
// returns those for created_at style columns). ok is false for empty or
// malformed input; callers treat that as "no date", never as an error.
func ParseDateKey(key *string) (time.Time, bool) {
	if key == nil || *key == "" {
		return time.Time{}, false
	}
	v := *key
	if strings.Contains(v, "T") {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		// timestamp without zone, e.g. 2025-07-06T00:00:00
		if t, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	t, err := time.Parse(DateKeyLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatShortDate renders "06 jul".
func FormatShortDate(key *string) string {
	t, ok := ParseDateKey(key)
	if !ok {
		return Empty
	}
	return fmt.Sprintf("%02d %s", t.Day(), monthAbbr[t.Month()-1])
}

// FormatDayLabel renders "lun 06".
func FormatDayLabel(key *string) string {
	t, ok := ParseDateKey(key)
	if !ok {
		return Empty
	}
	return fmt.Sprintf("%s %02d", weekdayAbbr[int(t.Weekday())], t.Day())
}

// FormatLongDate renders "06 jul 2025".
func FormatLongDate(key *string) string {
	t, ok := ParseDateKey(key)
	if !ok {
		return Empty
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), monthAbbr[t.Month()-1], t.Year())
}

// FormatCurrency renders whole COP with dot grouping: 320000 → "$ 320.000".
func FormatCurrency(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Empty
	}
	n := int64(math.Round(*v))
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "$ " + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// ParseCurrency keeps only digits: "$ 320.000" → 320000. Anything without a
// digit parses to 0.
func ParseCurrency(v string) float64 {
	var digits strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	var n float64
	_, _ = fmt.Sscanf(digits.String(), "%f", &n)
	return n
}

// DiffInDays is the whole-day difference end−start, floored at 0.
// A missing date on either side yields 0.
func DiffInDays(start, end *string) int {
	s, okS := ParseDateKey(start)
	e, okE := ParseDateKey(end)
	if !okS || !okE {
		return 0
	}
	d := int(math.Round(e.Sub(s).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

// WeekRange is the Monday..Sunday week around base, with a display label.
type WeekRange struct {
	Start string
	End   string
	Label string
}

// WeekOf returns the week containing base, starting Monday.
func WeekOf(base time.Time) WeekRange {
	offset := int(base.Weekday()) - 1
	if base.Weekday() == time.Sunday {
		offset = 6
	}
	start := base.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	startKey := FormatDateKey(start)
	endKey := FormatDateKey(end)
	return WeekRange{
		Start: startKey,
		End:   endKey,
		Label: FormatShortDate(&startKey) + " - " + FormatShortDate(&endKey),
	}
}

// MonthKey returns the first-of-month date key for t.
func MonthKey(t time.Time) string {
	return FormatDateKey(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
}

// AddMonths moves to the first day of the month amount months away.
func AddMonths(t time.Time, amount int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(amount), 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth reports the calendar length of t's month.
func DaysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// FormatPercentage renders "75.0%"; Empty for absent or non-finite values.
func FormatPercentage(v *float64, precision int) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return Empty
	}
	return fmt.Sprintf("%.*f%%", precision, *v)
}
