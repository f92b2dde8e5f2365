package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError carries a field→message map for a rejected draft.
// It blocks submission locally and is never fatal.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid draft" }

// DateRange is an inclusive [Start, End] window of date keys.
type DateRange struct {
	Start string
	End   string
}

// FrontDeskRepository is the narrow contract against the remote store.
// Reads return joined view rows; each write is a single atomic statement.
type FrontDeskRepository interface {
	// Read paths
	ListRooms(ctx context.Context) ([]Room, error)
	ListBookingSummaries(ctx context.Context, q BookingWindowQuery) ([]BookingSummary, error)
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListGuests(ctx context.Context) ([]Guest, error)
	ListGuestStays(ctx context.Context) ([]GuestStay, error)
	ListPayments(ctx context.Context) ([]Payment, error)
	ListChannels(ctx context.Context) ([]Channel, error)
	ListMonthlyKPIs(ctx context.Context, months []string) ([]MonthlyKPI, error)

	// Write paths
	InsertBooking(ctx context.Context, b Booking) error
	UpdateBooking(ctx context.Context, b Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) error
	InsertGuest(ctx context.Context, g Guest) error
	UpdateGuest(ctx context.Context, g Guest) error
	InsertPayment(ctx context.Context, p PaymentRecord) error
	UpdatePayment(ctx context.Context, p PaymentRecord) error
}

// BookingWindowQuery selects summaries whose stay touches the window.
// ByCheckIn restricts on check-in date instead (the agenda week view);
// otherwise the window matches any overlapping stay (the board view).
type BookingWindowQuery struct {
	Range     DateRange
	ByCheckIn bool
}

// PaymentRecord is the writable slice of a payment.
type PaymentRecord struct {
	ID          string
	BookingID   string
	Amount      float64
	Method      PaymentMethod
	PaymentDate *string
	Notes       *string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
