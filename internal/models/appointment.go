package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a scheduled visit between a patient and a doctor.
// PatientID and DoctorID are not enforced against the patient and doctor
// collections; a dangling reference is tolerated.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	DoctorID  string            `json:"doctorId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

// Settled reports whether the appointment has reached a terminal status.
func (a Appointment) Settled() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}
