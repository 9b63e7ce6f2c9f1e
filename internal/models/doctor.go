package models

// Availability represents a doctor's duty status.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBusy      Availability = "Busy"
	AvailabilityOffDuty   Availability = "Off-Duty"
)

// Doctor represents a doctor on the hospital staff.
type Doctor struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Specialization string       `json:"specialization"`
	Contact        string       `json:"contact"`
	Availability   Availability `json:"availability"`
}
