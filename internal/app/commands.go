package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotelera/internal/domain"
	"hotelera/internal/format"
	"hotelera/internal/validate"
)

// CommandService runs the front desk's write paths. Every command validates
// its draft first, issues exactly one store statement and then evicts the
// cache entries the write made stale.
type CommandService struct {
	repo  domain.FrontDeskRepository
	cache domain.Cache
	now   func() time.Time
}

func NewCommandService(r domain.FrontDeskRepository, c domain.Cache) *CommandService {
	return &CommandService{repo: r, cache: c, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *CommandService) WithClock(now func() time.Time) *CommandService {
	s.now = now
	return s
}

func (s *CommandService) CreateBooking(ctx context.Context, d validate.BookingDraft) (domain.Booking, error) {
	if errs := validate.Booking(d); len(errs) > 0 {
		return domain.Booking{}, &domain.ValidationError{Fields: errs}
	}
	b := bookingFromDraft(d)
	b.ID = uuid.NewString()
	ref := newBookingReference()
	b.Reference = &ref
	if err := s.repo.InsertBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	s.invalidateBookings(ctx, b.CheckInDate)
	return b, nil
}

func (s *CommandService) UpdateBooking(ctx context.Context, id string, d validate.BookingDraft) (domain.Booking, error) {
	if errs := validate.Booking(d); len(errs) > 0 {
		return domain.Booking{}, &domain.ValidationError{Fields: errs}
	}
	b := bookingFromDraft(d)
	b.ID = id
	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	s.invalidateBookings(ctx, b.CheckInDate)
	return b, nil
}

// CancelBooking flips only the status; the record stays on the agenda.
func (s *CommandService) CancelBooking(ctx context.Context, id string) error {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateBookingStatus(ctx, id, domain.BookingCancelled); err != nil {
		return err
	}
	s.invalidateBookings(ctx, b.CheckInDate)
	return nil
}

func (s *CommandService) CreateGuest(ctx context.Context, d validate.GuestDraft) (domain.Guest, error) {
	if errs := validate.Guest(d); len(errs) > 0 {
		return domain.Guest{}, &domain.ValidationError{Fields: errs}
	}
	g := guestFromDraft(d)
	g.ID = uuid.NewString()
	if err := s.repo.InsertGuest(ctx, g); err != nil {
		return domain.Guest{}, err
	}
	_ = s.cache.Del(ctx, keyGuests)
	return g, nil
}

func (s *CommandService) UpdateGuest(ctx context.Context, id string, d validate.GuestDraft) (domain.Guest, error) {
	if errs := validate.Guest(d); len(errs) > 0 {
		return domain.Guest{}, &domain.ValidationError{Fields: errs}
	}
	g := guestFromDraft(d)
	g.ID = id
	if err := s.repo.UpdateGuest(ctx, g); err != nil {
		return domain.Guest{}, err
	}
	_ = s.cache.Del(ctx, keyGuests)
	return g, nil
}

// CreatePayment records a payment. A missing payment date defaults to today,
// so a fresh payment reads as received rather than pending.
func (s *CommandService) CreatePayment(ctx context.Context, d validate.PaymentDraft) (domain.PaymentRecord, error) {
	if errs := validate.Payment(d); len(errs) > 0 {
		return domain.PaymentRecord{}, &domain.ValidationError{Fields: errs}
	}
	p := s.paymentFromDraft(d)
	p.ID = uuid.NewString()
	if p.PaymentDate == nil {
		today := format.FormatDateKey(s.now())
		p.PaymentDate = &today
	}
	if err := s.repo.InsertPayment(ctx, p); err != nil {
		return domain.PaymentRecord{}, err
	}
	s.invalidatePayments(ctx)
	return p, nil
}

func (s *CommandService) UpdatePayment(ctx context.Context, id string, d validate.PaymentDraft) (domain.PaymentRecord, error) {
	if errs := validate.Payment(d); len(errs) > 0 {
		return domain.PaymentRecord{}, &domain.ValidationError{Fields: errs}
	}
	p := s.paymentFromDraft(d)
	p.ID = id
	if err := s.repo.UpdatePayment(ctx, p); err != nil {
		return domain.PaymentRecord{}, err
	}
	s.invalidatePayments(ctx)
	return p, nil
}

// A booking write moves the board, its agenda week and the month's KPIs.
func (s *CommandService) invalidateBookings(ctx context.Context, checkIn *string) {
	today := format.FormatDateKey(s.now())
	_ = s.cache.Del(ctx, keyBoard(today))
	_ = s.cache.Del(ctx, keyGuests)

	if t, ok := format.ParseDateKey(checkIn); ok {
		_ = s.cache.Del(ctx, keyAgenda(format.WeekOf(t).Start))
		_ = s.cache.Del(ctx, keyDashboard(format.MonthKey(t)))
	}
	_ = s.cache.Del(ctx, keyAgenda(format.WeekOf(s.now()).Start))
}

// A payment write moves the ledger and the balances shown on the board.
func (s *CommandService) invalidatePayments(ctx context.Context) {
	today := s.now()
	_ = s.cache.Del(ctx, keyPayments)
	_ = s.cache.Del(ctx, keyBoard(format.FormatDateKey(today)))
	_ = s.cache.Del(ctx, keyAgenda(format.WeekOf(today).Start))
}

func bookingFromDraft(d validate.BookingDraft) domain.Booking {
	price, _ := strconv.ParseFloat(d.PricePerNight, 64)
	guests, _ := strconv.Atoi(d.NumberOfGuests)
	breakfast := 0
	if d.IncludesBreakfast {
		breakfast, _ = strconv.Atoi(d.BreakfastQuantity)
	}
	return domain.Booking{
		GuestID:           d.GuestID,
		RoomID:            d.RoomID,
		ChannelID:         d.ChannelID,
		CheckInDate:       ptr(d.CheckInDate),
		CheckOutDate:      ptr(d.CheckOutDate),
		PricePerNight:     &price,
		Status:            domain.ParseBookingStatus(d.Status),
		IncludesBreakfast: d.IncludesBreakfast,
		BreakfastQuantity: breakfast,
		NumberOfGuests:    guests,
		Observations:      ptr(d.Observations),
	}
}

func guestFromDraft(d validate.GuestDraft) domain.Guest {
	return domain.Guest{
		FullName:              strings.TrimSpace(d.FullName),
		Email:                 strings.TrimSpace(d.Email),
		Phone:                 strings.TrimSpace(d.Phone),
		City:                  ptr(d.City),
		Country:               ptr(d.Country),
		Nationality:           ptr(d.Nationality),
		Address:               ptr(d.Address),
		DocumentType:          d.DocumentType,
		DocumentNumber:        strings.TrimSpace(d.DocumentNumber),
		EmergencyContactName:  ptr(d.EmergencyContactName),
		EmergencyContactPhone: ptr(d.EmergencyContactPhone),
		Notes:                 ptr(d.Notes),
	}
}

func (s *CommandService) paymentFromDraft(d validate.PaymentDraft) domain.PaymentRecord {
	method, _ := domain.ParsePaymentMethod(d.Method)
	return domain.PaymentRecord{
		BookingID:   d.BookingID,
		Amount:      format.ParseCurrency(d.Amount),
		Method:      method,
		PaymentDate: ptr(d.PaymentDate),
		Notes:       ptr(d.Notes),
	}
}

// newBookingReference builds a short human-readable reference.
func newBookingReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RES-" + id[:8]
}

func ptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
