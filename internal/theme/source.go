package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"hospital-admin-core/internal/models"
)

// SystemSchemeSource delivers OS colour-scheme changes. Implementations own a
// channel that stays open until Close.
type SystemSchemeSource interface {
	Schemes() <-chan models.Scheme
	Close() error
}

// FileSource watches a desktop colour-scheme settings file and emits a scheme
// whenever it changes. It is the stand-in for the OS prefers-dark signal on
// platforms that expose the setting as a file.
type FileSource struct {
	path    string
	watcher *fsnotify.Watcher
	ch      chan models.Scheme
	done    chan struct{}
}

// NewFileSource starts watching path. The file's current content is emitted
// first so consumers start from the real OS state. The watch is on the parent
// directory with events filtered by name: settings daemons replace the file
// by rename, which would silently end a watch on the file itself.
func NewFileSource(path string) (*FileSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	s := &FileSource{
		path:    filepath.Clean(path),
		watcher: watcher,
		ch:      make(chan models.Scheme, 1),
		done:    make(chan struct{}),
	}
	s.emit(readScheme(path))
	go s.loop()
	return s, nil
}

// Schemes returns the channel of observed schemes.
func (s *FileSource) Schemes() <-chan models.Scheme {
	return s.ch
}

// Close stops the watcher and closes the scheme channel.
func (s *FileSource) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *FileSource) loop() {
	defer close(s.ch)
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.emit(readScheme(s.path))
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		case <-s.done:
			return
		}
	}
}

// emit never blocks: with a full buffer the stale pending value is replaced.
func (s *FileSource) emit(scheme models.Scheme) {
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- scheme:
	case <-s.done:
	}
}

// readScheme maps the settings file content onto light/dark. Anything that
// mentions dark ("dark", "prefer-dark") counts as dark; everything else,
// including an unreadable file, is light.
func readScheme(path string) models.Scheme {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.SchemeLight
	}
	if strings.Contains(strings.ToLower(string(bytes.TrimSpace(raw))), "dark") {
		return models.SchemeDark
	}
	return models.SchemeLight
}
