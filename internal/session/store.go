package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	apperrors "skydesk/pkg/errors"
	"skydesk/pkg/logger"
	"skydesk/pkg/model"
)

// Store persists the session as a JSON file. The file carries the bearer
// token, so it is written owner-only.
type Store struct {
	path string
	log  *logger.Logger
}

func NewStore(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Load reads the persisted session. A missing file is not an error, it is
// the anonymous session.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, apperrors.Internal("could not read session file", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt session file falls back to anonymous rather than
		// locking the user out of the app.
		s.log.Warn("Session file is corrupt, starting anonymous", "path", s.path, "error", err)
		return &Session{}, nil
	}
	return &sess, nil
}

// Save writes the session after a successful login.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apperrors.Internal("could not create session directory", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return apperrors.Internal("could not encode session", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return apperrors.Internal("could not write session file", err)
	}

	s.log.Info("Session saved", "user_id", sess.UserID, "is_admin", sess.IsAdmin)
	return nil
}

// Clear removes the persisted session on logout. Clearing an absent session
// is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.Internal("could not remove session file", err)
	}
	s.log.Info("Session cleared")
	return nil
}

// FromLogin builds the session out of a login response.
func FromLogin(login *model.LoginResponse) *Session {
	return &Session{
		Token:    login.AccessToken,
		UserID:   login.UserID,
		FullName: login.FullName,
		IsAdmin:  login.IsAdmin,
	}
}
