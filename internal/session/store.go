// Package session owns the single authenticated identity and its durable
// persistence. The store is an explicit object handed to every consumer;
// there is no ambient session state anywhere else in the program.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clubportal/internal/api"
	"clubportal/internal/auth"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// Result is the outcome of a login or registration attempt.
type Result struct {
	Success bool
	User    *model.User
}

// Store manages the current session. Safe for concurrent use.
type Store struct {
	client   *api.Client
	storage  *Storage
	notifier notify.Notifier

	mu      sync.Mutex
	current *model.User
	token   string
}

// NewStore creates a session store.
func NewStore(client *api.Client, storage *Storage, notifier notify.Notifier) *Store {
	return &Store{client: client, storage: storage, notifier: notifier}
}

// Current returns the active identity, or nil when logged out.
func (s *Store) Current() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the bearer token for the active session.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Restore adopts a previously persisted session, if any. Missing or
// malformed storage reads as no session; a token that parses as a JWT with
// an elapsed expiry drops the stale session and clears storage. Calling
// Restore twice with the same persisted state yields the same identity.
func (s *Store) Restore() *model.User {
	user, token := s.storage.Read()
	if user == nil {
		return nil
	}
	if exp, ok := auth.ExpiresAt(token); ok && time.Now().After(exp) {
		s.storage.Clear()
		return nil
	}
	s.mu.Lock()
	s.current = user
	s.token = token
	s.mu.Unlock()
	return user
}

// Login authenticates and, on success, adopts and persists the identity.
// Failures are outcomes, not errors: the server message (or a generic one)
// is surfaced as a notification and Success is false.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		notify.Error(s.notifier, "Login failed", "could not reach the server")
		return Result{}
	}
	if !res.Success || res.User == nil {
		msg := res.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		notify.Error(s.notifier, "Login failed", msg)
		return Result{}
	}
	s.adopt(res.User, res.Token)
	notify.Info(s.notifier, "Logged in", fmt.Sprintf("Welcome back, %s", res.User.FullName))
	return Result{Success: true, User: res.User}
}

// Register creates an account and adopts the returned identity on success.
func (s *Store) Register(ctx context.Context, email, password, fullName string) Result {
	res, err := s.client.Register(ctx, email, password, fullName)
	if err != nil {
		notify.Error(s.notifier, "Registration failed", "could not reach the server")
		return Result{}
	}
	if !res.Success || res.User == nil {
		msg := res.Message
		if msg == "" {
			msg = "registration rejected"
		}
		notify.Error(s.notifier, "Registration failed", msg)
		return Result{}
	}
	s.adopt(res.User, res.Token)
	notify.Info(s.notifier, "Registered", "Welcome to the club!")
	return Result{Success: true, User: res.User}
}

// Logout clears the in-memory session and durable storage synchronously.
// No server call is made.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()
	s.storage.Clear()
	notify.Info(s.notifier, "Logged out", "")
}

func (s *Store) adopt(user *model.User, token string) {
	s.mu.Lock()
	s.current = user
	s.token = token
	s.mu.Unlock()
	if err := s.storage.Write(user, token); err != nil {
		notify.Error(s.notifier, "Session not saved", err.Error())
	}
}
