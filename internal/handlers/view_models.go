package handlers

import (
	"time"

	"minifeed/internal/models"
)

// PostView is a post annotated for the requesting user
type PostView struct {
	ID           string           `json:"id"`
	Author       string           `json:"author"`
	Text         string           `json:"text"`
	CreatedAt    time.Time        `json:"createdAt"`
	LikeCount    int              `json:"likeCount"`
	LikedByMe    bool             `json:"likedByMe"`
	CommentCount int              `json:"commentCount"`
	Comments     []models.Comment `json:"comments"`
}

func newPostView(post *models.Post, username string) PostView {
	return PostView{
		ID:           post.ID,
		Author:       post.Author,
		Text:         post.Text,
		CreatedAt:    post.CreatedAt,
		LikeCount:    post.LikeCount(),
		LikedByMe:    post.LikedBy(username),
		CommentCount: len(post.Comments),
		Comments:     post.Comments,
	}
}

func newPostViews(posts []models.Post, username string) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i], username))
	}
	return views
}
