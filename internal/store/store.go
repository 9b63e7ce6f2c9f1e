// Package store owns the in-memory entity collections behind every hospital
// console screen and keeps the durable key-value mirror in sync with them.
// The in-memory state is the source of truth for the running session; the
// mirror only exists so the next session starts where this one left off.
package store

import (
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// Event names the collection whose contents changed. Subscribers re-read the
// matching snapshot; the event itself carries no entity data.
type Event struct {
	Collection string
}

// Store holds the authoritative collections. Collaborators receive snapshots
// from the read accessors and change state only through the mutators; they
// never hold a mutable reference into the store.
type Store struct {
	mu       sync.RWMutex
	kv       *storage.KV
	log      *zap.Logger
	validate *validator.Validate

	patients     []models.Patient
	doctors      []models.Doctor
	appointments []models.Appointment
	rooms        []models.Room

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// New hydrates each collection from the durable store, falling back to seed
// data per key when a value is missing or malformed.
func New(kv *storage.KV, log *zap.Logger) *Store {
	s := &Store{
		kv:       kv,
		log:      log,
		validate: validator.New(),
		subs:     make(map[int]func(Event)),
	}
	s.patients = hydrate(s, storage.KeyPatients, seedPatients())
	s.doctors = hydrate(s, storage.KeyDoctors, seedDoctors())
	s.appointments = hydrate(s, storage.KeyAppointments, seedAppointments())
	s.rooms = hydrate(s, storage.KeyRooms, seedRooms())
	return s
}

// Subscribe registers fn to run synchronously after every mutation. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(collection string) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(Event{Collection: collection})
	}
}

// Patients returns a snapshot of the patient collection in insertion order.
func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.patients)
}

// Doctors returns a snapshot of the doctor collection in insertion order.
func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.doctors)
}

// Appointments returns a snapshot of the appointment collection in insertion order.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments)
}

// Rooms returns a snapshot of the ward rooms in insertion order.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rooms)
}

// hydrate reads one collection from the mirror. A missing key is the normal
// first-run case; a malformed value resets that key alone to seed data.
func hydrate[T any](s *Store, key string, seed []T) []T {
	raw, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("reading stored collection failed, seeding",
				zap.String("key", key), zap.Error(err))
		}
		s.persist(key, seed)
		return seed
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("stored collection is malformed, resetting to seed data",
			zap.String("key", key), zap.Error(err))
		s.persist(key, seed)
		return seed
	}
	return out
}

// persist serializes the whole collection under its key. A write failure does
// not roll back memory; the mirror stays stale until the next write.
func (s *Store) persist(key string, collection any) {
	raw, err := json.Marshal(collection)
	if err != nil {
		s.log.Warn("serializing collection failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Put(key, raw); err != nil {
		s.log.Warn("mirroring collection failed, in-memory state is ahead of storage",
			zap.String("key", key), zap.Error(err))
	}
}
