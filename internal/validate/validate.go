// Package validate checks drafts before they reach the store. Every function
// returns a field→message map; an empty map means the draft is valid. Nothing
// here has side effects or fails.
package validate

import (
	"strconv"
	"strings"

	"hotelera/internal/domain"
	"hotelera/internal/format"
)

// BookingDraft carries the booking form fields as submitted, numbers still
// as strings.
type BookingDraft struct {
	GuestID           string
	RoomID            string
	ChannelID         string
	CheckInDate       string
	CheckOutDate      string
	PricePerNight     string
	Status            string
	IncludesBreakfast bool
	BreakfastQuantity string
	NumberOfGuests    string
	Observations      string
}

// Booking validates a booking draft. Check-out must fall strictly after
// check-in; date keys compare lexicographically.
func Booking(d BookingDraft) map[string]string {
	errs := map[string]string{}
	if d.GuestID == "" {
		errs["guestId"] = "Huesped obligatorio."
	}
	if d.RoomID == "" {
		errs["roomId"] = "Habitacion obligatoria."
	}
	if d.ChannelID == "" {
		errs["channelId"] = "Canal obligatorio."
	}
	if d.CheckInDate == "" {
		errs["checkInDate"] = "Fecha de ingreso obligatoria."
	}
	if d.CheckOutDate == "" {
		errs["checkOutDate"] = "Fecha de salida obligatoria."
	}
	if price, err := strconv.ParseFloat(d.PricePerNight, 64); d.PricePerNight == "" || err != nil || price <= 0 {
		errs["pricePerNight"] = "Tarifa invalida."
	}
	if d.CheckInDate != "" && d.CheckOutDate != "" && d.CheckOutDate <= d.CheckInDate {
		errs["checkOutDate"] = "Salida debe ser posterior al ingreso."
	}
	if n, err := strconv.Atoi(d.NumberOfGuests); d.NumberOfGuests == "" || err != nil || n <= 0 {
		errs["numberOfGuests"] = "Numero de huespedes invalido."
	}
	if d.IncludesBreakfast {
		if q, err := strconv.Atoi(d.BreakfastQuantity); err != nil || q < 0 {
			errs["breakfastQuantity"] = "Cantidad de desayunos invalida."
		}
	}
	return errs
}

// GuestDraft carries the guest form fields.
type GuestDraft struct {
	FullName              string
	DocumentType          string
	DocumentNumber        string
	Country               string
	Phone                 string
	Email                 string
	City                  string
	Nationality           string
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	Notes                 string
}

// Guest checks presence only. Email and phone shapes are deliberately not
// validated; the front desk records whatever the guest gives them.
func Guest(d GuestDraft) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.FullName) == "" {
		errs["fullName"] = "Nombre obligatorio."
	}
	if strings.TrimSpace(d.DocumentNumber) == "" {
		errs["documentNumber"] = "Documento obligatorio."
	}
	if strings.TrimSpace(d.Country) == "" {
		errs["country"] = "Pais obligatorio."
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Telefono obligatorio."
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Correo obligatorio."
	}
	return errs
}

// PaymentDraft carries the payment form fields; Amount may arrive formatted
// ("$ 320.000") and is parsed digits-only.
type PaymentDraft struct {
	BookingID   string
	Amount      string
	Method      string
	PaymentDate string
	Notes       string
}

// Payment validates a payment draft. The method must be one of the
// enumerated raw values.
func Payment(d PaymentDraft) map[string]string {
	errs := map[string]string{}
	if d.BookingID == "" {
		errs["bookingId"] = "Reserva obligatoria."
	}
	if d.Amount == "" || format.ParseCurrency(d.Amount) <= 0 {
		errs["amount"] = "Monto invalido."
	}
	if _, ok := domain.ParsePaymentMethod(d.Method); !ok {
		errs["paymentMethod"] = "Metodo obligatorio."
	}
	return errs
}
