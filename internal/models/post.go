package models

import "time"

// Post represents a feed entry with its nested likes and comments
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// Comment represents a comment on a post. Comments are immutable once
// created and owned exclusively by their parent post.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeCount returns the number of users who liked the post
func (p *Post) LikeCount() int {
	return len(p.Likes)
}

// LikedBy checks whether the given user has liked the post
func (p *Post) LikedBy(username string) bool {
	for _, u := range p.Likes {
		if u == username {
			return true
		}
	}
	return false
}
