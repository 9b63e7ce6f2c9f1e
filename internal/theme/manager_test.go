package theme

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hospital-admin-core/internal/models"
	"hospital-admin-core/internal/storage"
)

type fakeSource struct {
	ch chan models.Scheme
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan models.Scheme)}
}

func (f *fakeSource) Schemes() <-chan models.Scheme { return f.ch }
func (f *fakeSource) Close() error                  { return nil }

func openTestKV(t *testing.T) *storage.KV {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "theme.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func waitForScheme(t *testing.T, m *Manager, want models.Scheme) {
	t.Helper()
	require.Eventually(t, func() bool {
		return m.ResolvedTheme() == want
	}, time.Second, 5*time.Millisecond)
}

func TestDefaultsToSystemLight(t *testing.T) {
	m := NewManager(openTestKV(t), nil, nil, zap.NewNop())
	defer m.Close()

	require.Equal(t, models.ThemeSystem, m.Theme())
	require.Equal(t, models.SchemeLight, m.ResolvedTheme())
}

func TestSystemPreferenceFollowsOSScheme(t *testing.T) {
	source := newFakeSource()
	m := NewManager(openTestKV(t), source, nil, zap.NewNop())
	defer m.Close()

	m.SetTheme(models.ThemeSystem)
	source.ch <- models.SchemeDark
	waitForScheme(t, m, models.SchemeDark)

	source.ch <- models.SchemeLight
	waitForScheme(t, m, models.SchemeLight)
}

func TestExplicitPreferenceIgnoresOSScheme(t *testing.T) {
	source := newFakeSource()
	m := NewManager(openTestKV(t), source, nil, zap.NewNop())
	defer m.Close()

	m.SetTheme(models.ThemeLight)
	source.ch <- models.SchemeDark

	// the shadow sub-state changed but the resolved value must not
	require.Never(t, func() bool {
		return m.ResolvedTheme() != models.SchemeLight
	}, 50*time.Millisecond, 5*time.Millisecond)

	// switching back to system exposes the tracked OS scheme
	m.SetTheme(models.ThemeSystem)
	waitForScheme(t, m, models.SchemeDark)
}

func TestSetThemeInvalidValueIgnored(t *testing.T) {
	m := NewManager(openTestKV(t), nil, nil, zap.NewNop())
	defer m.Close()

	m.SetTheme(models.ThemeDark)
	m.SetTheme("sepia")

	require.Equal(t, models.ThemeDark, m.Theme())
}

func TestPreferencePersistsAcrossRestart(t *testing.T) {
	kv := openTestKV(t)

	first := NewManager(kv, nil, nil, zap.NewNop())
	first.SetTheme(models.ThemeDark)
	require.NoError(t, first.Close())

	second := NewManager(kv, nil, nil, zap.NewNop())
	defer second.Close()
	require.Equal(t, models.ThemeDark, second.Theme())
	require.Equal(t, models.SchemeDark, second.ResolvedTheme())
}

func TestMalformedStoredPreferenceFallsBackToSystem(t *testing.T) {
	kv := openTestKV(t)
	require.NoError(t, kv.Put(storage.KeyTheme, []byte("chartreuse")))

	m := NewManager(kv, nil, nil, zap.NewNop())
	defer m.Close()
	require.Equal(t, models.ThemeSystem, m.Theme())
}

func TestApplyHookAndSubscribersFireOnEffectiveChange(t *testing.T) {
	applied := make(chan models.Scheme, 8)
	m := NewManager(openTestKV(t), nil, func(s models.Scheme) { applied <- s }, zap.NewNop())
	defer m.Close()

	var notified []models.Scheme
	unsubscribe := m.Subscribe(func(s models.Scheme) { notified = append(notified, s) })

	m.SetTheme(models.ThemeDark)
	require.Equal(t, models.SchemeDark, <-applied)
	require.Equal(t, []models.Scheme{models.SchemeDark}, notified)

	// same resolved value again: no fanout
	m.SetTheme(models.ThemeDark)
	select {
	case s := <-applied:
		t.Fatalf("unexpected apply call with %q", s)
	case <-time.After(20 * time.Millisecond):
	}

	unsubscribe()
	m.SetTheme(models.ThemeLight)
	require.Equal(t, models.SchemeLight, <-applied)
	require.Len(t, notified, 1)
}

func TestPaletteFollowsResolvedTheme(t *testing.T) {
	m := NewManager(openTestKV(t), nil, nil, zap.NewNop())
	defer m.Close()

	m.SetTheme(models.ThemeLight)
	require.Equal(t, PaletteFor(models.SchemeLight), m.Palette())

	m.SetTheme(models.ThemeDark)
	require.Equal(t, PaletteFor(models.SchemeDark), m.Palette())
	require.NotEqual(t, PaletteFor(models.SchemeLight), m.Palette())
}
