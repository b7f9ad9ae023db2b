package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/config"
	"huddle/internal/domain"
	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PostHandler handles feed HTTP requests
type PostHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(store *state.Store, logger *slog.Logger) *PostHandler {
	return &PostHandler{store: store, logger: logger}
}

// CreatePostRequest is the payload for a feed post.
type CreatePostRequest struct {
	Content string `json:"content"`
}

func (req *CreatePostRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxPostLength),
		),
	)
}

// ListPosts returns the feed, newest first.
// GET /api/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.store.Posts()
	if posts == nil {
		posts = []models.Post{}
	}
	httputil.RespondJSON(w, http.StatusOK, posts)
}

// CreatePost prepends a post authored by the acting member.
// POST /api/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	post := h.store.AddPost(models.Post{Content: req.Content})

	h.logger.Info("post created", "id", post.ID, "team_id", post.TeamID)
	httputil.RespondJSON(w, http.StatusCreated, post)
}

// LikePost increments the post's like counter by one. The container
// no-ops on unknown ids, so the like never fails; there is no unlike.
// POST /api/posts/{id}/like
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	h.store.LikePost(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddCommentRequest is the payload for a comment.
type AddCommentRequest struct {
	Content string `json:"content"`
}

func (req *AddCommentRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxPostLength),
		),
	)
}

// AddComment appends a comment stamped with the acting member. Reads
// back the post so an unknown id surfaces as 404 here even though the
// container treats it as a no-op.
// POST /api/posts/{id}/comments
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req AddCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.store.AddComment(id, req.Content)

	for _, p := range h.store.Posts() {
		if p.ID == id {
			httputil.RespondJSON(w, http.StatusCreated, p)
			return
		}
	}
	respondError(w, &domain.NotFoundError{Message: "post not found"})
}
