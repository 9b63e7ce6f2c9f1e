package store

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// CreateAppointmentRequest carries the fields for booking an appointment.
// The patient and doctor ids are not checked against their collections.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Notes     string `json:"notes"`
}

// UpdateAppointmentRequest carries a partial update of the booking details.
// Status changes go through UpdateAppointmentStatus instead.
type UpdateAppointmentRequest struct {
	PatientID *string `json:"patientId,omitempty"`
	DoctorID  *string `json:"doctorId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// AddAppointment validates the payload and books a new appointment in the
// Scheduled state.
func (s *Store) AddAppointment(req CreateAppointmentRequest) (models.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Appointment{}, err
	}

	appointment := models.Appointment{
		ID:        uuid.New().String(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusScheduled,
		Notes:     req.Notes,
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, appointment)
	s.persist(storage.KeyAppointments, s.appointments)
	s.mu.Unlock()

	s.log.Debug("appointment added", zap.String("id", appointment.ID))
	s.notify(storage.KeyAppointments)
	return appointment, nil
}

// UpdateAppointment overwrites only the supplied booking fields. An unknown
// id is a silent no-op.
func (s *Store) UpdateAppointment(id string, req UpdateAppointmentRequest) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("update for unknown appointment ignored", zap.String("id", id))
		return
	}

	a := &s.appointments[idx]
	if req.PatientID != nil {
		a.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		a.DoctorID = *req.DoctorID
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Time != nil {
		a.Time = *req.Time
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	s.persist(storage.KeyAppointments, s.appointments)
	s.mu.Unlock()

	s.notify(storage.KeyAppointments)
}

// UpdateAppointmentStatus moves a Scheduled appointment to the given status.
// Completed and Cancelled are terminal: an appointment that has settled never
// changes status again, so repeating a transition is harmless. Unknown ids
// are silent no-ops.
func (s *Store) UpdateAppointmentStatus(id string, status models.AppointmentStatus) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("status change for unknown appointment ignored", zap.String("id", id))
		return
	}

	a := &s.appointments[idx]
	if a.Settled() {
		s.mu.Unlock()
		s.log.Debug("status change for settled appointment ignored",
			zap.String("id", id), zap.String("status", string(a.Status)))
		return
	}
	if status == a.Status {
		s.mu.Unlock()
		return
	}

	a.Status = status
	s.persist(storage.KeyAppointments, s.appointments)
	s.mu.Unlock()

	s.log.Debug("appointment status changed",
		zap.String("id", id), zap.String("status", string(status)))
	s.notify(storage.KeyAppointments)
}

// CancelAppointment marks a Scheduled appointment as Cancelled.
func (s *Store) CancelAppointment(id string) {
	s.UpdateAppointmentStatus(id, models.StatusCancelled)
}

// DeleteAppointment removes the appointment with the given id. An unknown id
// is a silent no-op.
func (s *Store) DeleteAppointment(id string) {
	s.mu.Lock()
	before := len(s.appointments)
	s.appointments = slices.DeleteFunc(s.appointments, func(a models.Appointment) bool { return a.ID == id })
	removed := len(s.appointments) != before
	if removed {
		s.persist(storage.KeyAppointments, s.appointments)
	}
	s.mu.Unlock()

	if removed {
		s.notify(storage.KeyAppointments)
	} else {
		s.log.Debug("delete for unknown appointment ignored", zap.String("id", id))
	}
}
