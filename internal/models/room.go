package models

// RoomStatus represents the occupancy state of a ward room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomMaintenance RoomStatus = "Maintenance"
	RoomReserved    RoomStatus = "Reserved"
)

// Room represents a ward room. CurrentPatient and AssignedDoctor hold display
// names rather than entity ids; the ward screens never resolve them back.
type Room struct {
	ID             string     `json:"id"`
	Status         RoomStatus `json:"status"`
	CurrentPatient string     `json:"currentPatient,omitempty"`
	AssignedDoctor string     `json:"assignedDoctor,omitempty"`
	OccupiedBeds   int        `json:"occupiedBeds"`
}
