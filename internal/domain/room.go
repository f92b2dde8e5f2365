package domain

// RoomStatus is the derived operational status shown on the board.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

var AllRoomStatuses = []RoomStatus{RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance}

func (s RoomStatus) Label() string {
	switch s {
	case RoomOccupied:
		return "Ocupada"
	case RoomCleaning:
		return "Limpieza"
	case RoomMaintenance:
		return "Mantenimiento"
	default:
		return "Disponible"
	}
}

// Room is the persisted inventory record. Inactive rooms are out of service
// and never appear as occupied or available.
type Room struct {
	ID       string
	Number   string
	Floor    int
	Capacity int
	Notes    *string
	Active   bool
}

// RoomView is a Room joined against its bookings for one day. It is derived,
// never persisted, and always carries exactly one status.
type RoomView struct {
	ID           string
	Number       string
	Floor        int
	Status       RoomStatus
	Guest        *string
	CheckIn      *string // formatted short date
	CheckOut     *string
	Channel      *string
	Rate         *float64
	Housekeeping *string
	Note         *string
}
