package auth

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/furniture-crm/crm-cli/internal/pkg/encoding/json"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
)

const (
	sessionDir  = "crm"
	sessionFile = "session.json"
)

// Store persists the session between CLI invocations.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store of the "<configDir>/crm/session.json" file.
func NewStore(fs afero.Fs, configDir string) *Store {
	return &Store{fs: fs, path: filepath.Join(configDir, sessionDir, sessionFile)}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns nil if no session is stored.
func (s *Store) Load() (*Session, error) {
	content, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, `cannot read session file "%s"`, s.path)
	}

	session := &Session{}
	if err := json.Decode(content, session); err != nil {
		return nil, errors.Wrapf(err, `cannot decode session file "%s"`, s.path)
	}
	return session, nil
}

func (s *Store) Save(session *Session) error {
	content, err := json.Encode(session, true)
	if err != nil {
		return errors.Wrap(err, "cannot encode session")
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrapf(err, `cannot create dir "%s"`, filepath.Dir(s.path))
	}
	if err := afero.WriteFile(s.fs, s.path, content, 0o600); err != nil {
		return errors.Wrapf(err, `cannot write session file "%s"`, s.path)
	}
	return nil
}

// Delete removes the stored session, a missing file is not an error.
func (s *Store) Delete() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, `cannot remove session file "%s"`, s.path)
	}
	return nil
}
