package handlers

import (
	"encoding/json"
	"net/http"

	"minifeed/internal/service"
)

// FeedHandler handles post and follow HTTP requests
type FeedHandler struct {
	feedService   *service.FeedService
	followService *service.FollowService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService, followService *service.FollowService) *FeedHandler {
	return &FeedHandler{
		feedService:   feedService,
		followService: followService,
	}
}

type createPostRequest struct {
	Text string `json:"text"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// ListPosts returns all posts newest-first, annotated for the current user
func (h *FeedHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	posts, err := h.feedService.List()
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newPostViews(posts, user.Username))
}

// CreatePost composes a new post authored by the current user
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	post, err := h.feedService.Add(user.Username, req.Text)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, newPostView(post, user.Username))
}

// DeletePost removes a post permanently
func (h *FeedHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("id")

	if err := h.feedService.Delete(postID); err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// ToggleLike flips the current user's like on a post
func (h *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	postID := r.PathValue("id")

	count, err := h.feedService.ToggleLike(postID, user.Username)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"likeCount": count})
}

// AddComment appends a comment authored by the current user
func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	postID := r.PathValue("id")

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	count, err := h.feedService.AddComment(postID, user.Username, req.Text)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"commentCount": count})
}

// IsFollowing reports membership for a handle
func (h *FeedHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	following, err := h.followService.IsFollowing(handle)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"following": following})
}

// ToggleFollow flips membership for a handle and returns the new state
func (h *FeedHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	following, err := h.followService.Toggle(handle)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"following": following})
}
