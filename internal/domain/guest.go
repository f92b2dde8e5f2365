package domain

// GuestStatus is derived from a guest's history and notes, not stored.
type GuestStatus string

const (
	GuestActive  GuestStatus = "active"
	GuestVIP     GuestStatus = "vip"
	GuestBlocked GuestStatus = "blocked"
)

var AllGuestStatuses = []GuestStatus{GuestActive, GuestVIP, GuestBlocked}

func (s GuestStatus) Label() string {
	switch s {
	case GuestVIP:
		return "VIP"
	case GuestBlocked:
		return "Bloqueado"
	default:
		return "Activo"
	}
}

// Guest is the persisted registry record.
type Guest struct {
	ID                    string
	FullName              string
	Email                 string
	Phone                 string
	City                  *string
	Country               *string
	Nationality           *string
	Address               *string
	DocumentType          string
	DocumentNumber        string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Notes                 *string
}

// GuestStay is the slice of a booking the registry needs to derive
// visit counts and loyalty signals.
type GuestStay struct {
	GuestID      string
	CheckInDate  *string
	CheckOutDate *string
	Status       BookingStatus
}

// GuestProfile is a Guest enriched with derived attributes.
type GuestProfile struct {
	Guest
	Visits      int
	TotalNights int
	LastStay    *string // date key of latest check-in
	Status      GuestStatus
	Tags        []string
}
