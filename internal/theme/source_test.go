package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hospital-admin-core/internal/models"
)

func TestFileSourceEmitsInitialScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "color-scheme")
	require.NoError(t, os.WriteFile(path, []byte("prefer-dark"), 0o644))

	source, err := NewFileSource(path)
	require.NoError(t, err)
	defer source.Close()

	select {
	case scheme := <-source.Schemes():
		require.Equal(t, models.SchemeDark, scheme)
	case <-time.After(time.Second):
		t.Fatal("no initial scheme emitted")
	}
}

func TestFileSourceEmitsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "color-scheme")
	require.NoError(t, os.WriteFile(path, []byte("default"), 0o644))

	source, err := NewFileSource(path)
	require.NoError(t, err)
	defer source.Close()

	// drain the initial light value
	require.Equal(t, models.SchemeLight, <-source.Schemes())

	require.NoError(t, os.WriteFile(path, []byte("prefer-dark"), 0o644))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case scheme := <-source.Schemes():
			if scheme == models.SchemeDark {
				return
			}
		case <-deadline:
			t.Fatal("dark scheme never observed")
		}
	}
}

func TestFileSourceSurvivesReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "color-scheme")
	require.NoError(t, os.WriteFile(path, []byte("default"), 0o644))

	source, err := NewFileSource(path)
	require.NoError(t, err)
	defer source.Close()

	require.Equal(t, models.SchemeLight, <-source.Schemes())

	// settings daemons write a temp file and rename it over the target
	replace := func(content string) {
		tmp := filepath.Join(dir, ".color-scheme.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
		require.NoError(t, os.Rename(tmp, path))
	}

	waitFor := func(want models.Scheme) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case scheme := <-source.Schemes():
				if scheme == want {
					return
				}
			case <-deadline:
				t.Fatalf("scheme %q never observed", want)
			}
		}
	}

	replace("prefer-dark")
	waitFor(models.SchemeDark)

	// the watch survives the first replacement and sees the next
	replace("prefer-light")
	waitFor(models.SchemeLight)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
