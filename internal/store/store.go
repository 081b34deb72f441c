// Package store persists session snapshots at a fixed location, the CLI
// counterpart of the calculator's autosave slot.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/snapshot"
)

// Store reads and writes the autosaved snapshot.
type Store struct {
	path string
}

// New creates a store over the given state file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Save captures the session and writes it atomically (temp file + rename)
// so a crash mid-write never corrupts the previous save.
func (s *Store) Save(session *footprint.Session) error {
	data, err := snapshot.Build(session, time.Now()).Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the saved snapshot, reconciles it against the current catalog
// and returns a session. A missing file yields (nil, nil): first run, the
// caller seeds a default session. A malformed file yields
// snapshot.ErrMalformed: the caller falls back to defaults and reports it.
func (s *Store) Load() (*footprint.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	parsed, err := snapshot.Parse(data)
	if err != nil {
		return nil, err
	}

	params := parsed.ApplyParams(footprint.DefaultParameters())
	return footprint.NewSession(snapshot.Reconcile(parsed), params), nil
}

// LoadOrDefault returns the saved session, or a fresh default one when
// nothing usable is stored. The returned message is a one-line status for
// the user ("" when the load was clean).
func (s *Store) LoadOrDefault() (*footprint.Session, string) {
	session, err := s.Load()
	if err != nil {
		return footprint.DefaultSession(), "Falha ao ler dados salvos. O estado padrão será usado."
	}
	if session == nil {
		return footprint.DefaultSession(), ""
	}
	return session, ""
}
