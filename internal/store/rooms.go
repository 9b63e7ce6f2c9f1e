package store

import (
	"slices"

	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// UpdateRoomStatus sets a room's status directly, for states the occupancy
// invariant does not govern (Maintenance, Reserved). An unknown id is a
// silent no-op.
func (s *Store) UpdateRoomStatus(id string, status models.RoomStatus) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.rooms, func(r models.Room) bool { return r.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("status change for unknown room ignored", zap.String("id", id))
		return
	}

	s.rooms[idx].Status = status
	s.persist(storage.KeyRooms, s.rooms)
	s.mu.Unlock()

	s.notify(storage.KeyRooms)
}

// AssignPatientToRoom places the named patient in the room, or clears the
// room when name is empty. The occupancy invariant holds either way: a named
// patient forces Occupied with at least one bed in use, clearing forces
// Available with zero beds.
func (s *Store) AssignPatientToRoom(id string, name string) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.rooms, func(r models.Room) bool { return r.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("patient assignment for unknown room ignored", zap.String("id", id))
		return
	}

	r := &s.rooms[idx]
	if name != "" {
		r.CurrentPatient = name
		r.Status = models.RoomOccupied
		if r.OccupiedBeds < 1 {
			r.OccupiedBeds = 1
		}
	} else {
		r.CurrentPatient = ""
		r.Status = models.RoomAvailable
		r.OccupiedBeds = 0
	}
	s.persist(storage.KeyRooms, s.rooms)
	s.mu.Unlock()

	s.log.Debug("room patient assignment changed", zap.String("id", id), zap.String("patient", name))
	s.notify(storage.KeyRooms)
}

// AssignDoctorToRoom sets or clears the room's attending doctor by display
// name. Doctor assignment never touches the room status.
func (s *Store) AssignDoctorToRoom(id string, name string) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.rooms, func(r models.Room) bool { return r.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		s.log.Debug("doctor assignment for unknown room ignored", zap.String("id", id))
		return
	}

	s.rooms[idx].AssignedDoctor = name
	s.persist(storage.KeyRooms, s.rooms)
	s.mu.Unlock()

	s.notify(storage.KeyRooms)
}
