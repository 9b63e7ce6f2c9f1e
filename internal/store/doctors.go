package store

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// CreateDoctorRequest carries the fields for adding a doctor to the staff.
type CreateDoctorRequest struct {
	Name           string              `json:"name" validate:"required"`
	Specialization string              `json:"specialization" validate:"required"`
	Contact        string              `json:"contact"`
	Availability   models.Availability `json:"availability" validate:"required,oneof=Available Busy Off-Duty"`
}

// UpdateDoctorRequest carries a partial update; nil fields are left as-is.
type UpdateDoctorRequest struct {
	Name           *string              `json:"name,omitempty"`
	Specialization *string              `json:"specialization,omitempty"`
	Contact        *string              `json:"contact,omitempty"`
	Availability   *models.Availability `json:"availability,omitempty"`
}

// AddDoctor validates the payload, assigns a fresh id and appends the doctor
// to the collection.
func (s *Store) AddDoctor(req CreateDoctorRequest) (models.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Doctor{}, err
	}

	doctor := models.Doctor{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Specialization: req.Specialization,
		Contact:        req.Contact,
		Availability:   req.Availability,
	}

	s.mu.Lock()
	s.doctors = append(s.doctors, doctor)
	s.persist(storage.KeyDoctors, s.doctors)
	s.mu.Unlock()

	s.log.Debug("doctor added", zap.String("id", doctor.ID), zap.String("name", doctor.Name))
	s.notify(storage.KeyDoctors)
	return doctor, nil
}

// UpdateDoctor overwrites only the supplied fields. An unknown id is a
// silent no-op.
func (s *Store) UpdateDoctor(id string, req UpdateDoctorRequest) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.doctors, func(d models.Doctor) bool { return d.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("update for unknown doctor ignored", zap.String("id", id))
		return
	}

	d := &s.doctors[idx]
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Specialization != nil {
		d.Specialization = *req.Specialization
	}
	if req.Contact != nil {
		d.Contact = *req.Contact
	}
	if req.Availability != nil {
		d.Availability = *req.Availability
	}
	s.persist(storage.KeyDoctors, s.doctors)
	s.mu.Unlock()

	s.notify(storage.KeyDoctors)
}

// DeleteDoctor removes the doctor with the given id. Rooms keep whatever
// display name was assigned and appointments keep their doctorId; neither is
// cascaded. An unknown id is a silent no-op.
func (s *Store) DeleteDoctor(id string) {
	s.mu.Lock()
	before := len(s.doctors)
	s.doctors = slices.DeleteFunc(s.doctors, func(d models.Doctor) bool { return d.ID == id })
	removed := len(s.doctors) != before
	if removed {
		s.persist(storage.KeyDoctors, s.doctors)
	}
	s.mu.Unlock()

	if removed {
		s.notify(storage.KeyDoctors)
	} else {
		s.log.Debug("delete for unknown doctor ignored", zap.String("id", id))
	}
}
