// Package session tracks who is signed in to the console and keeps a capped,
// mirrored audit trail of login events.
package session

import (
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// History keeps the 50 most recent entries, newest first.
const maxHistory = 50

// Tracker owns the current user and the login history. The current user is
// session-only state; the history is mirrored under its own key.
type Tracker struct {
	mu      sync.RWMutex
	kv      *storage.KV
	log     *zap.Logger
	current *models.User
	history []models.HistoryEntry

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int

	// now is swapped out in tests.
	now func() time.Time
}

// NewTracker hydrates the login history from the durable store; a missing or
// malformed value starts the history empty.
func NewTracker(kv *storage.KV, log *zap.Logger) *Tracker {
	t := &Tracker{
		kv:   kv,
		log:  log,
		subs: make(map[int]func()),
		now:  time.Now,
	}

	raw, err := kv.Get(storage.KeyLoginHistory)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("reading login history failed, starting empty", zap.Error(err))
		}
		return t
	}
	if err := json.Unmarshal(raw, &t.history); err != nil {
		log.Warn("stored login history is malformed, starting empty", zap.Error(err))
		t.history = nil
	}
	return t
}

// Subscribe registers fn to run synchronously after every session change.
// The returned function removes the subscription.
func (t *Tracker) Subscribe(fn func()) func() {
	t.subMu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		delete(t.subs, id)
		t.subMu.Unlock()
	}
}

func (t *Tracker) notify() {
	t.subMu.Lock()
	fns := make([]func(), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// CurrentUser returns a copy of the signed-in user, or nil when no session is
// active. Collaborators treat nil as "unauthenticated".
func (t *Tracker) CurrentUser() *models.User {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == nil {
		return nil
	}
	u := *t.current
	return &u
}

// History returns a snapshot of the login history, newest first.
func (t *Tracker) History() []models.HistoryEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.history)
}

// Login records user as the current session and prepends an Active history
// entry, dropping the oldest entries beyond the cap.
func (t *Tracker) Login(user models.User) {
	now := t.now()
	entry := models.HistoryEntry{
		ID:     uuid.New().String(),
		User:   user.Name,
		Role:   user.Role,
		Date:   now.Format("Jan 2, 2006"),
		Time:   now.Format("3:04 PM"),
		Status: models.SessionActive,
	}

	t.mu.Lock()
	t.current = &user
	t.history = append([]models.HistoryEntry{entry}, t.history...)
	if len(t.history) > maxHistory {
		t.history = t.history[:maxHistory]
	}
	t.persist()
	t.mu.Unlock()

	t.log.Info("user logged in", zap.String("user", user.Name), zap.String("role", string(user.Role)))
	t.notify()
}

// Logout ends the current session: the most recent Active entry matching the
// current user's name flips to Logged Out and the current user is cleared.
// Confirmation gating happens in the caller; calling Logout is the confirmed
// path. Without an active session this is a no-op.
func (t *Tracker) Logout() {
	t.mu.Lock()
	if t.current == nil {
		t.mu.Unlock()
		return
	}
	name := t.current.Name
	for i := range t.history {
		if t.history[i].Status == models.SessionActive && t.history[i].User == name {
			t.history[i].Status = models.SessionLoggedOut
			break
		}
	}
	t.current = nil
	t.persist()
	t.mu.Unlock()

	t.log.Info("user logged out", zap.String("user", name))
	t.notify()
}

// persist mirrors the history. Write failures leave the mirror stale without
// touching the in-memory state.
func (t *Tracker) persist() {
	raw, err := json.Marshal(t.history)
	if err != nil {
		t.log.Warn("serializing login history failed", zap.Error(err))
		return
	}
	if err := t.kv.Put(storage.KeyLoginHistory, raw); err != nil {
		t.log.Warn("mirroring login history failed", zap.Error(err))
	}
}
