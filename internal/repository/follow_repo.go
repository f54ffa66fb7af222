package repository

import (
	"encoding/json"
	"fmt"

	"minifeed/internal/kvstore"
)

// FollowRepository handles persistence for the set of followed handles
type FollowRepository struct {
	kv kvstore.Store
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(kv kvstore.Store) *FollowRepository {
	return &FollowRepository{kv: kv}
}

// All returns the followed handles, defaulting an absent document
func (r *FollowRepository) All() ([]string, error) {
	raw, ok, err := r.kv.Get(followingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read following: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	var handles []string
	if err := json.Unmarshal([]byte(raw), &handles); err != nil {
		return nil, fmt.Errorf("failed to decode following: %w", err)
	}
	if handles == nil {
		handles = []string{}
	}
	return handles, nil
}

// Save writes the followed handles back
func (r *FollowRepository) Save(handles []string) error {
	raw, err := json.Marshal(handles)
	if err != nil {
		return fmt.Errorf("failed to encode following: %w", err)
	}
	if err := r.kv.Set(followingKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write following: %w", err)
	}
	return nil
}
