package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"minifeed/internal/models"
	"minifeed/internal/repository"
	"minifeed/internal/validation"
)

// FeedService handles the post collection: composing, liking, commenting,
// deleting and one-time demo seeding.
type FeedService struct {
	posts *repository.PostRepository
	mu    sync.Mutex
}

// NewFeedService creates a new feed service
func NewFeedService(posts *repository.PostRepository) *FeedService {
	return &FeedService{posts: posts}
}

// List returns all posts ordered newest-created-first
func (s *FeedService) List() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.posts.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	// Posts are appended on create, so reversing the stored order yields
	// newest-first even when timestamps collide
	reversed := make([]models.Post, 0, len(posts))
	for i := len(posts) - 1; i >= 0; i-- {
		reversed = append(reversed, posts[i])
	}
	return reversed, nil
}

// Add appends a new post with empty likes and comments
func (s *FeedService) Add(author, text string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateText("post", text); err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now(),
		Likes:     []string{},
		Comments:  []models.Comment{},
	}

	if err := s.posts.Append(post); err != nil {
		return nil, fmt.Errorf("failed to add post: %w", err)
	}
	return post, nil
}

// ToggleLike flips the username's membership in the post's like set and
// returns the new like count. Toggling twice restores the original count.
func (s *FeedService) ToggleLike(postID, username string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.find(postID)
	if err != nil {
		return 0, err
	}

	if post.LikedBy(username) {
		likes := make([]string, 0, len(post.Likes)-1)
		for _, u := range post.Likes {
			if u != username {
				likes = append(likes, u)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, username)
	}

	if err := s.update(post); err != nil {
		return 0, err
	}
	return post.LikeCount(), nil
}

// Delete removes the post permanently
func (s *FeedService) Delete(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.posts.Delete(postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if !found {
		return NotFoundError{Entity: "post", ID: postID}
	}
	return nil
}

// AddComment appends a comment to the post and returns the new comment count
func (s *FeedService) AddComment(postID, author, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.ValidateText("comment", text); err != nil {
		return 0, err
	}

	post, err := s.find(postID)
	if err != nil {
		return 0, err
	}

	post.Comments = append(post.Comments, models.Comment{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now(),
	})

	if err := s.update(post); err != nil {
		return 0, err
	}
	return len(post.Comments), nil
}

// Seed populates two demo posts exactly once per store lifetime. Reruns are
// no-ops thanks to the persisted sentinel flag.
func (s *FeedService) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded, err := s.posts.Seeded()
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if seeded {
		return nil
	}

	demo := []models.Post{
		{
			ID:        uuid.New().String(),
			Author:    "maya",
			Text:      "Just set up my feed here. Hello, world!",
			CreatedAt: time.Now().Add(-2 * time.Hour),
			Likes:     []string{},
			Comments:  []models.Comment{},
		},
		{
			ID:        uuid.New().String(),
			Author:    "leo",
			Text:      "Trying out the compose box. So far so good.",
			CreatedAt: time.Now().Add(-1 * time.Hour),
			Likes:     []string{},
			Comments:  []models.Comment{},
		},
	}

	for i := range demo {
		if err := s.posts.Append(&demo[i]); err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
	}

	if err := s.posts.MarkSeeded(); err != nil {
		return fmt.Errorf("failed to mark seeded: %w", err)
	}
	return nil
}

// find returns the post with the given ID or a NotFoundError
func (s *FeedService) find(postID string) (*models.Post, error) {
	posts, err := s.posts.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	for i := range posts {
		if posts[i].ID == postID {
			return &posts[i], nil
		}
	}
	return nil, NotFoundError{Entity: "post", ID: postID}
}

// update writes a mutated post back
func (s *FeedService) update(post *models.Post) error {
	found, err := s.posts.Update(post)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if !found {
		return NotFoundError{Entity: "post", ID: post.ID}
	}
	return nil
}
