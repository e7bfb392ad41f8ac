// Package session owns the current authenticated user: the single piece of
// process-wide state with an explicit restore/login/logout lifecycle. The
// user record is persisted to local device storage under a fixed key.
package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"tradepulse/internal/domain"
	"tradepulse/internal/store"
)

// SessionKey is the fixed storage key for the persisted session record.
const SessionKey = "trade_pulse_user"

// ErrNoSession is returned by Restore when no valid session is stored.
var ErrNoSession = errors.New("session: no stored session")

// ValidationError reports a rejected auth form. Error() is a short inline
// message suitable for display; the form input is retained by the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Mode selects which auth-form fields are required.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeRegister
)

// Credentials is the auth-form input.
type Credentials struct {
	Mode        Mode
	Username    string
	DisplayName string
	Email       string
	Password    string
}

// Store holds the exclusive current-user slot and its persisted record.
type Store struct {
	kv      store.KV
	log     *slog.Logger
	current *domain.User
}

// NewStore creates a session store backed by the given key-value storage.
func NewStore(kv store.KV, log *slog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Restore loads the persisted session record, if any. An absent or
// unparsable record yields ErrNoSession — never a crash; the client starts
// logged out.
func (s *Store) Restore() (*domain.User, error) {
	raw, err := s.kv.Get(SessionKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("reading stored session", "error", err)
		}
		return nil, ErrNoSession
	}

	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		s.log.Warn("stored session unparsable, treating as logged out", "error", err)
		return nil, ErrNoSession
	}

	s.current = &u
	return &u, nil
}

// Login validates credentials, synthesizes the member record, and stores it
// as the current session, replacing any prior one. Validation failures
// return a *ValidationError; nothing is mutated on failure.
func (s *Store) Login(creds Credentials) (*domain.User, error) {
	if err := validate(creds); err != nil {
		return nil, err
	}

	u := domain.NewUser(creds.Username, creds.DisplayName, creds.Email)

	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if err := s.kv.Set(SessionKey, string(raw)); err != nil {
		return nil, err
	}

	s.current = &u
	s.log.Info("session started", "user", u.Username)
	return &u, nil
}

// Logout clears the current session and its persisted record. Calling it
// with no active session is a no-op.
func (s *Store) Logout() error {
	if err := s.kv.Delete(SessionKey); err != nil {
		return err
	}
	if s.current != nil {
		s.log.Info("session ended", "user", s.current.Username)
	}
	s.current = nil
	return nil
}

// Current returns the current user, or nil when logged out.
func (s *Store) Current() *domain.User {
	return s.current
}

func validate(creds Credentials) error {
	if strings.TrimSpace(creds.Username) == "" {
		return &ValidationError{Field: "username", Reason: "username is required"}
	}
	if creds.Mode == ModeRegister {
		if strings.TrimSpace(creds.Email) == "" {
			return &ValidationError{Field: "email", Reason: "email is required"}
		}
		if !emailShaped(creds.Email) {
			return &ValidationError{Field: "email", Reason: "email looks invalid"}
		}
		if creds.Password == "" {
			return &ValidationError{Field: "password", Reason: "password is required"}
		}
	}
	return nil
}

// emailShaped checks for an "@"-structured address: non-empty local part and
// domain. Full RFC validation is out of scope for a mock auth form.
func emailShaped(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && strings.Count(email, "@") == 1
}
