package domain

import "strings"

// PaymentMethod is the canonical payment method enum.
type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
	PayOnline   PaymentMethod = "online"
)

var AllPaymentMethods = []PaymentMethod{PayCash, PayCard, PayTransfer, PayOnline}

// MapPaymentMethod maps a raw store method (CASH, CARD, ...) to the enum.
// The bool reports whether the raw value was recognized.
func MapPaymentMethod(raw string) (PaymentMethod, bool) {
	switch raw {
	case "CASH":
		return PayCash, true
	case "CARD":
		return PayCard, true
	case "TRANSFER":
		return PayTransfer, true
	case "ONLINE":
		return PayOnline, true
	default:
		return "", false
	}
}

// ParsePaymentMethod accepts the canonical lower-case values the API and
// forms use as well as the raw store spelling.
func ParsePaymentMethod(v string) (PaymentMethod, bool) {
	for _, m := range AllPaymentMethods {
		if v == string(m) {
			return m, true
		}
	}
	return MapPaymentMethod(v)
}

func RawPaymentMethod(m PaymentMethod) string {
	switch m {
	case PayCard:
		return "CARD"
	case PayTransfer:
		return "TRANSFER"
	case PayOnline:
		return "ONLINE"
	default:
		return "CASH"
	}
}

func (m PaymentMethod) Label() string {
	switch m {
	case PayCash:
		return "Efectivo"
	case PayCard:
		return "Tarjeta"
	case PayTransfer:
		return "Transferencia"
	case PayOnline:
		return "Online"
	default:
		return "Sin metodo"
	}
}

// PaymentStatus is derived, never stored: refunded when the notes carry
// refund language, received when a payment date exists, pending otherwise.
type PaymentStatus string

const (
	PaymentReceived PaymentStatus = "received"
	PaymentPending  PaymentStatus = "pending"
	PaymentRefunded PaymentStatus = "refunded"
)

var AllPaymentStatuses = []PaymentStatus{PaymentReceived, PaymentPending, PaymentRefunded}

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentReceived:
		return "Recibido"
	case PaymentRefunded:
		return "Reembolsado"
	default:
		return "Pendiente"
	}
}

// Payment is the joined ledger read model: the payment row plus the booking
// reference, guest and channel it settles.
type Payment struct {
	ID          string
	BookingID   string
	Reference   *string
	GuestName   *string
	ChannelName *string
	Amount      float64
	Method      *PaymentMethod
	PaymentDate *string // date key, nil while pending
	CreatedAt   *string
	Notes       *string
}

// Status derives the payment's display status from notes and date.
func (p Payment) Status() PaymentStatus {
	notes := ""
	if p.Notes != nil {
		notes = strings.ToLower(*p.Notes)
	}
	if strings.Contains(notes, "reembolso") || strings.Contains(notes, "refund") {
		return PaymentRefunded
	}
	if p.PaymentDate != nil && *p.PaymentDate != "" {
		return PaymentReceived
	}
	return PaymentPending
}

// MonthlyKPI is one aggregated row of the monthly_kpis view.
type MonthlyKPI struct {
	Month        string // first-of-month date key
	ChannelName  *string
	NightsSold   int
	Revenue      float64
	RevenueNoTax float64
	Bookings     int
}
