package service

import (
	"fmt"
	"strings"
	"sync"

	"minifeed/internal/repository"
	"minifeed/internal/validation"
)

// FollowService handles the set of followed handles. The set is unscoped:
// the app models a single local session, not multiple users.
type FollowService struct {
	follows *repository.FollowRepository
	mu      sync.Mutex
}

// NewFollowService creates a new follow service
func NewFollowService(follows *repository.FollowRepository) *FollowService {
	return &FollowService{follows: follows}
}

// IsFollowing checks membership for a handle
func (s *FollowService) IsFollowing(handle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles, err := s.follows.All()
	if err != nil {
		return false, fmt.Errorf("failed to read follows: %w", err)
	}
	return contains(handles, strings.TrimSpace(handle)), nil
}

// Toggle flips membership for a handle and returns the new state
func (s *FollowService) Toggle(handle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateText("handle", handle); err != nil {
		return false, err
	}
	handle = strings.TrimSpace(handle)

	handles, err := s.follows.All()
	if err != nil {
		return false, fmt.Errorf("failed to read follows: %w", err)
	}

	if contains(handles, handle) {
		remaining := make([]string, 0, len(handles)-1)
		for _, h := range handles {
			if h != handle {
				remaining = append(remaining, h)
			}
		}
		if err := s.follows.Save(remaining); err != nil {
			return false, fmt.Errorf("failed to save follows: %w", err)
		}
		return false, nil
	}

	if err := s.follows.Save(append(handles, handle)); err != nil {
		return false, fmt.Errorf("failed to save follows: %w", err)
	}
	return true, nil
}

func contains(handles []string, handle string) bool {
	for _, h := range handles {
		if h == handle {
			return true
		}
	}
	return false
}
