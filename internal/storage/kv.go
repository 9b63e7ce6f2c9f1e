// Package storage provides the durable key-value store backing the in-memory
// collections. Each collection is serialized whole under its own key, so a
// corrupt value for one key never blocks hydration of the others.
package storage

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Well-known keys, one per mirrored collection.
const (
	KeyPatients     = "patients"
	KeyDoctors      = "doctors"
	KeyAppointments = "appointments"
	KeyRooms        = "rooms"
	KeyLoginHistory = "login_history"
	KeyTheme        = "theme"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Record is one serialized collection stored under its well-known key.
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

// KV is a durable key-value store over a local sqlite file.
type KV struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite file at path and migrates the
// records table.
func Open(path string) (*KV, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &KV{db: db}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *KV) Get(key string) ([]byte, error) {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

// Put stores value under key, replacing any previous value.
func (s *KV) Put(key string, value []byte) error {
	return s.db.Save(&Record{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}

// Delete removes the value under key. Deleting a missing key is a no-op.
func (s *KV) Delete(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}

// Close releases the underlying database handle.
func (s *KV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
