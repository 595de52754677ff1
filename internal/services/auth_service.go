package services

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"leafline/internal/domain"
	"leafline/internal/store"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService is the demo identity layer: registered users live in the
// persisted users collection, session bindings are in-memory only and
// therefore reset on restart.
type AuthService struct {
	store *store.Store

	mu       sync.RWMutex
	sessions map[string]string // sid -> user id
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st, sessions: make(map[string]string)}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	users, err := s.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := users[i]
		if !strings.EqualFold(u.Email, email) || u.Hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
			return nil, ErrBadCreds
		}
		s.mu.Lock()
		s.sessions[sid] = u.ID
		s.mu.Unlock()
		return &u, nil
	}
	return nil, ErrBadCreds
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

// CurrentUser resolves the session's user, or nil when signed out.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	s.mu.RLock()
	userID, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	users, err := s.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Customers lists registered non-staff profiles for the admin dashboard.
func (s *AuthService) Customers() ([]domain.User, error) {
	users, err := s.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	out := users[:0:0]
	for _, u := range users {
		if u.Role != "ADMIN" {
			out = append(out, u)
		}
	}
	return out, nil
}
