// Package account provides the simulated account backend. Nothing here is
// durable: the store seeds one demo user in memory and applies updates to it
// after a fixed simulated network delay.
package account

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/profile.space/internal/profile"
)

// DefaultUserID is the seeded demo user.
const DefaultUserID = "user-123"

// DefaultDelay approximates one backend round trip.
const DefaultDelay = 150 * time.Millisecond

// Store is a thread-safe in-memory profile store.
type Store struct {
	mu    sync.RWMutex
	users map[string]profile.UserProfile
	delay time.Duration
}

// NewStore creates a store seeded with the demo user.
func NewStore(delay time.Duration) *Store {
	return &Store{
		users: map[string]profile.UserProfile{
			DefaultUserID: {
				ID:     DefaultUserID,
				Name:   "John Doe",
				Email:  "john@example.com",
				Bio:    "Frontend developer passionate about creating seamless user experiences.",
				Avatar: "/images/placeholder.jpg",
			},
		},
		delay: delay,
	}
}

// GetUser returns the demo user's profile after the simulated delay.
func (s *Store) GetUser(ctx context.Context) (profile.UserProfile, error) {
	return s.User(ctx, DefaultUserID)
}

// User returns one profile by id after the simulated delay.
func (s *Store) User(ctx context.Context, id string) (profile.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return profile.UserProfile{}, err
	}
	s.mu.RLock()
	user, ok := s.users[id]
	s.mu.RUnlock()
	if !ok {
		return profile.UserProfile{}, fmt.Errorf("user %q not found", id)
	}
	return user, nil
}

// UpdateUser applies submitted fields to a stored profile. The stored id is
// immutable and the stored avatar is untouched; avatar uploads never persist.
func (s *Store) UpdateUser(ctx context.Context, id string, fields profile.FormFields) (profile.UserProfile, error) {
	if err := s.wait(ctx); err != nil {
		return profile.UserProfile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return profile.UserProfile{}, fmt.Errorf("user %q not found", id)
	}
	user.Name = fields.Name
	user.Email = fields.Email
	user.Bio = fields.Bio
	s.users[id] = user
	return user, nil
}

// SaveProfile persists a validated submission for the demo user.
// It implements profile.Saver.
func (s *Store) SaveProfile(ctx context.Context, fields profile.FormFields) error {
	_, err := s.UpdateUser(ctx, DefaultUserID, fields)
	return err
}

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
