package repository

import (
	"encoding/json"
	"fmt"

	"minifeed/internal/kvstore"
	"minifeed/internal/models"
)

// PostRepository handles persistence for the ordered post collection and
// the one-time seeding sentinel.
type PostRepository struct {
	kv kvstore.Store
}

// NewPostRepository creates a new post repository
func NewPostRepository(kv kvstore.Store) *PostRepository {
	return &PostRepository{kv: kv}
}

// load reads the full post list, defaulting an absent document
func (r *PostRepository) load() ([]models.Post, error) {
	raw, ok, err := r.kv.Get(postsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	if !ok {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	// Default nested collections dropped by older encodings
	for i := range posts {
		if posts[i].Likes == nil {
			posts[i].Likes = []string{}
		}
		if posts[i].Comments == nil {
			posts[i].Comments = []models.Comment{}
		}
	}
	return posts, nil
}

// save writes the full post list back
func (r *PostRepository) save(posts []models.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	if err := r.kv.Set(postsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to write posts: %w", err)
	}
	return nil
}

// All returns the posts in stored (insertion) order
func (r *PostRepository) All() ([]models.Post, error) {
	return r.load()
}

// Append adds a post to the end of the collection
func (r *PostRepository) Append(post *models.Post) error {
	posts, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(posts, *post))
}

// Update replaces the post with a matching ID. Returns false if no post
// with that ID exists; nothing is written in that case.
func (r *PostRepository) Update(post *models.Post) (bool, error) {
	posts, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return true, r.save(posts)
		}
	}
	return false, nil
}

// Delete removes the post with the given ID. Returns false if no post with
// that ID exists; nothing is written in that case.
func (r *PostRepository) Delete(postID string) (bool, error) {
	posts, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range posts {
		if posts[i].ID == postID {
			return true, r.save(append(posts[:i], posts[i+1:]...))
		}
	}
	return false, nil
}

// Seeded reports whether demo posts were already seeded. Presence of the
// sentinel key is what matters, not its value.
func (r *PostRepository) Seeded() (bool, error) {
	_, ok, err := r.kv.Get(postsSeededKey)
	if err != nil {
		return false, fmt.Errorf("failed to read seed sentinel: %w", err)
	}
	return ok, nil
}

// MarkSeeded records that demo posts were seeded
func (r *PostRepository) MarkSeeded() error {
	if err := r.kv.Set(postsSeededKey, "true"); err != nil {
		return fmt.Errorf("failed to write seed sentinel: %w", err)
	}
	return nil
}
