// Package theme resolves the appearance the console renders with, combining
// the operator's explicit preference with the live OS colour scheme.
package theme

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

// ApplyFunc is invoked once per effective appearance change, so the
// presentation layer can toggle its global dark-mode marker in one place.
type ApplyFunc func(models.Scheme)

// Manager tracks the explicit theme preference and the shadow system scheme,
// and exposes the resolved value downstream consumers actually render with.
type Manager struct {
	mu     sync.RWMutex
	kv     *storage.KV
	log    *zap.Logger
	pref   models.Theme
	system models.Scheme
	apply  ApplyFunc

	subMu   sync.Mutex
	subs    map[int]func(models.Scheme)
	nextSub int

	source SystemSchemeSource
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewManager hydrates the persisted preference (falling back to "system") and
// starts consuming scheme changes from source. source and apply may be nil.
func NewManager(kv *storage.KV, source SystemSchemeSource, apply ApplyFunc, log *zap.Logger) *Manager {
	m := &Manager{
		kv:     kv,
		log:    log,
		pref:   models.ThemeSystem,
		system: models.SchemeLight,
		apply:  apply,
		subs:   make(map[int]func(models.Scheme)),
		source: source,
		done:   make(chan struct{}),
	}

	raw, err := kv.Get(storage.KeyTheme)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("reading theme preference failed, using system", zap.Error(err))
		}
	} else if t := models.Theme(raw); t.Valid() {
		m.pref = t
	} else {
		log.Warn("stored theme preference is malformed, using system", zap.String("value", string(raw)))
	}

	if source != nil {
		m.wg.Add(1)
		go m.watch()
	}
	return m
}

// watch feeds OS scheme changes into the shadow sub-state until Close.
func (m *Manager) watch() {
	defer m.wg.Done()
	for {
		select {
		case scheme, ok := <-m.source.Schemes():
			if !ok {
				return
			}
			m.setSystemScheme(scheme)
		case <-m.done:
			return
		}
	}
}

// Close stops the system-scheme subscription. The manager keeps answering
// reads afterwards; only the live signal goes away.
func (m *Manager) Close() error {
	close(m.done)
	m.wg.Wait()
	if m.source != nil {
		return m.source.Close()
	}
	return nil
}

// Subscribe registers fn to run with the new resolved scheme after every
// effective change. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(models.Scheme)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Theme returns the explicit preference.
func (m *Manager) Theme() models.Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pref
}

// ResolvedTheme returns the appearance to render: the preference when
// explicit, otherwise the last observed system scheme.
func (m *Manager) ResolvedTheme() models.Scheme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resolvedLocked()
}

func (m *Manager) resolvedLocked() models.Scheme {
	switch m.pref {
	case models.ThemeLight:
		return models.SchemeLight
	case models.ThemeDark:
		return models.SchemeDark
	default:
		return m.system
	}
}

// Palette returns the colour palette for the current resolved scheme.
func (m *Manager) Palette() Palette {
	return PaletteFor(m.ResolvedTheme())
}

// SetTheme records an explicit preference, persists it immediately and fans
// out the resolved appearance if it changed. Invalid values are ignored.
func (m *Manager) SetTheme(t models.Theme) {
	if !t.Valid() {
		m.log.Debug("ignoring unknown theme preference", zap.String("value", string(t)))
		return
	}

	m.mu.Lock()
	before := m.resolvedLocked()
	m.pref = t
	after := m.resolvedLocked()
	if err := m.kv.Put(storage.KeyTheme, []byte(t)); err != nil {
		m.log.Warn("persisting theme preference failed", zap.Error(err))
	}
	m.mu.Unlock()

	if before != after {
		m.fanout(after)
	}
}

// setSystemScheme updates the shadow sub-state tracked while the preference
// is "system". It never touches the preference itself.
func (m *Manager) setSystemScheme(scheme models.Scheme) {
	m.mu.Lock()
	before := m.resolvedLocked()
	m.system = scheme
	after := m.resolvedLocked()
	m.mu.Unlock()

	if before != after {
		m.log.Debug("system colour scheme changed", zap.String("scheme", string(scheme)))
		m.fanout(after)
	}
}

func (m *Manager) fanout(resolved models.Scheme) {
	if m.apply != nil {
		m.apply(resolved)
	}

	m.subMu.Lock()
	fns := make([]func(models.Scheme), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(resolved)
	}
}
