// Package session implements the cookie session store backing
// authentication. A session is an opaque id handed to the browser as a
// cookie; the user snapshot it resolves to lives in redis with a TTL.
package session

import (
	"time"

	"github.com/daygrid/scheduler/pkg/model"

	"github.com/google/uuid"
)

func NewService(repository repository, ttl time.Duration) *Service {
	return &Service{
		repository: repository,
		ttl:        ttl,
	}
}

type repository interface {
	SetSession(id string, user model.User, ttl time.Duration) error
	GetSession(id string) (*model.User, error)
	DeleteSessions(userID uint) error
}

type Service struct {
	repository repository
	ttl        time.Duration
}

// Create opens a new session for user and returns its id.
func (s Service) Create(user *model.User) (string, error) {
	id := uuid.NewString()
	if err := s.repository.SetSession(id, *user, s.ttl); err != nil {
		return "", err
	}
	return id, nil
}

// Find resolves a session id to the user it was created for.
func (s Service) Find(id string) (*model.User, error) {
	return s.repository.GetSession(id)
}

// SignOut drops every session of the user, not just the one attached to
// the current request.
func (s Service) SignOut(userID uint) error {
	return s.repository.DeleteSessions(userID)
}

// TTL is the session lifetime, also used as the cookie max age.
func (s Service) TTL() time.Duration {
	return s.ttl
}
