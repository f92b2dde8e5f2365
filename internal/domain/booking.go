package domain

// BookingStatus is the canonical booking lifecycle status. The store keeps
// upper-case strings (PENDING, CONFIRMED, ...); MapBookingStatus converts at
// the gateway boundary and nothing deeper branches on raw strings.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// AllBookingStatuses is the full facet domain, in display order.
var AllBookingStatuses = []BookingStatus{
	BookingConfirmed,
	BookingPending,
	BookingCheckedIn,
	BookingCheckedOut,
	BookingCancelled,
}

// MapBookingStatus maps a raw store status to the canonical enum.
// Unknown or empty values fall back to pending, matching the console.
func MapBookingStatus(raw string) BookingStatus {
	switch raw {
	case "CONFIRMED":
		return BookingConfirmed
	case "CHECKED_IN":
		return BookingCheckedIn
	case "CHECKED_OUT":
		return BookingCheckedOut
	case "CANCELLED":
		return BookingCancelled
	default:
		return BookingPending
	}
}

// ParseBookingStatus accepts the canonical lower-case values the API and
// forms use, falling back to the raw store spelling.
func ParseBookingStatus(v string) BookingStatus {
	for _, s := range AllBookingStatuses {
		if v == string(s) {
			return s
		}
	}
	return MapBookingStatus(v)
}

// RawBookingStatus is the inverse mapping, used on writes.
func RawBookingStatus(s BookingStatus) string {
	switch s {
	case BookingConfirmed:
		return "CONFIRMED"
	case BookingCheckedIn:
		return "CHECKED_IN"
	case BookingCheckedOut:
		return "CHECKED_OUT"
	case BookingCancelled:
		return "CANCELLED"
	default:
		return "PENDING"
	}
}

// Label returns the Spanish display label shown on the agenda.
func (s BookingStatus) Label() string {
	switch s {
	case BookingConfirmed:
		return "Confirmada"
	case BookingCheckedIn:
		return "Check-in"
	case BookingCheckedOut:
		return "Check-out"
	case BookingCancelled:
		return "Cancelada"
	default:
		return "Pendiente"
	}
}

// Booking is the persisted reservation record.
type Booking struct {
	ID                string
	Reference         *string
	GuestID           string
	RoomID            string
	ChannelID         string
	CheckInDate       *string // date key YYYY-MM-DD
	CheckOutDate      *string
	PricePerNight     *float64
	Status            BookingStatus
	IncludesBreakfast bool
	BreakfastQuantity int
	NumberOfGuests    int
	Observations      *string
}

// BookingSummary is the joined read model the agenda and board consume
// (bookings joined with guest, room and channel).
type BookingSummary struct {
	ID            string
	Reference     *string
	GuestName     *string
	RoomNumber    *string
	ChannelName   *string
	CheckInDate   *string
	CheckOutDate  *string
	TotalNights   *int
	PricePerNight *float64
	TotalAmount   *float64
	BalanceDue    *float64
	Status        BookingStatus
}

// Channel is a sales channel (Directo, Booking, ...).
type Channel struct {
	ID   string
	Name string
}
