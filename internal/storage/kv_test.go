package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestPutGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put(KeyPatients, []byte(`[{"id":"p-1"}]`)))

	got, err := kv.Get(KeyPatients)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"p-1"}]`, string(got))
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	_, err := kv.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Put(KeyTheme, []byte("light")))
	require.NoError(t, kv.Put(KeyTheme, []byte("dark")))

	got, err := kv.Get(KeyTheme)
	require.NoError(t, err)
	require.Equal(t, "dark", string(got))
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.Delete("nope"))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(KeyRooms, []byte(`[{"id":"101"}]`)))
	require.NoError(t, kv.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(KeyRooms)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"101"}]`, string(got))
}
