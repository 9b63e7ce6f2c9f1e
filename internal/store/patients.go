package store

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// CreatePatientRequest carries the fields for registering a new patient.
type CreatePatientRequest struct {
	Name      string        `json:"name" validate:"required"`
	Email     string        `json:"email" validate:"omitempty,email"`
	Phone     string        `json:"phone"`
	Age       int           `json:"age" validate:"gte=0,lte=150"`
	Gender    models.Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	Contact   string        `json:"contact"`
	History   string        `json:"history"`
	LastVisit string        `json:"lastVisit"`
}

// UpdatePatientRequest carries a partial update; nil fields are left as-is.
type UpdatePatientRequest struct {
	Name      *string        `json:"name,omitempty"`
	Email     *string        `json:"email,omitempty"`
	Phone     *string        `json:"phone,omitempty"`
	Age       *int           `json:"age,omitempty"`
	Gender    *models.Gender `json:"gender,omitempty"`
	Contact   *string        `json:"contact,omitempty"`
	History   *string        `json:"history,omitempty"`
	LastVisit *string        `json:"lastVisit,omitempty"`
}

// AddPatient validates the payload, assigns a fresh id and appends the
// patient to the collection.
func (s *Store) AddPatient(req CreatePatientRequest) (models.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Patient{}, err
	}

	patient := models.Patient{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Age:       req.Age,
		Gender:    req.Gender,
		Contact:   req.Contact,
		History:   req.History,
		LastVisit: req.LastVisit,
	}

	s.mu.Lock()
	s.patients = append(s.patients, patient)
	s.persist(storage.KeyPatients, s.patients)
	s.mu.Unlock()

	s.log.Debug("patient added", zap.String("id", patient.ID), zap.String("name", patient.Name))
	s.notify(storage.KeyPatients)
	return patient, nil
}

// UpdatePatient overwrites only the supplied fields. An unknown id is a
// silent no-op.
func (s *Store) UpdatePatient(id string, req UpdatePatientRequest) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.patients, func(p models.Patient) bool { return p.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("update for unknown patient ignored", zap.String("id", id))
		return
	}

	p := &s.patients[idx]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Age != nil {
		p.Age = *req.Age
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Contact != nil {
		p.Contact = *req.Contact
	}
	if req.History != nil {
		p.History = *req.History
	}
	if req.LastVisit != nil {
		p.LastVisit = *req.LastVisit
	}
	s.persist(storage.KeyPatients, s.patients)
	s.mu.Unlock()

	s.notify(storage.KeyPatients)
}

// DeletePatient removes the patient with the given id. Appointments that
// reference it are left dangling, matching the console's behaviour. An
// unknown id is a silent no-op.
func (s *Store) DeletePatient(id string) {
	s.mu.Lock()
	before := len(s.patients)
	s.patients = slices.DeleteFunc(s.patients, func(p models.Patient) bool { return p.ID == id })
	removed := len(s.patients) != before
	if removed {
		s.persist(storage.KeyPatients, s.patients)
	}
	s.mu.Unlock()

	if removed {
		s.notify(storage.KeyPatients)
	} else {
		s.log.Debug("delete for unknown patient ignored", zap.String("id", id))
	}
}
