// Package session holds the authenticated user context with an explicit
// lifecycle: loaded from disk at startup, saved after login, cleared on
// logout. Components receive it by injection instead of reading ambient
// storage.
package session

import (
	apperrors "skydesk/pkg/errors"
)

// Session is the persisted client identity. The zero value is the anonymous
// session.
type Session struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

func (s *Session) Authenticated() bool {
	return s.Token != "" && s.UserID > 0
}

// RequireUser returns the user id, or a session-missing error that callers
// treat as fatal to the workflow (redirect to sign-in, no retry).
func (s *Session) RequireUser() (int, error) {
	if !s.Authenticated() {
		return 0, apperrors.SessionMissing()
	}
	return s.UserID, nil
}

// RequireAdmin gates admin-only operations.
func (s *Session) RequireAdmin() error {
	if !s.Authenticated() {
		return apperrors.SessionMissing()
	}
	if !s.IsAdmin {
		return apperrors.Unauthorized("administrator privileges required")
	}
	return nil
}
