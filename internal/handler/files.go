package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"huddle/internal/config"
	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FileHandler handles file listing HTTP requests
type FileHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(store *state.Store, logger *slog.Logger) *FileHandler {
	return &FileHandler{store: store, logger: logger}
}

// AddFileRequest is the payload for registering a file or folder.
type AddFileRequest struct {
	Name string          `json:"name"`
	Kind models.FileKind `json:"kind,omitempty"`
	Size int64           `json:"size,omitempty"`
	Path string          `json:"path,omitempty"`
}

func (req *AddFileRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFileNameLength),
			validation.By(nonBlank),
		),
		validation.Field(&req.Path, validation.Length(0, config.MaxFilePathLength)),
	)
}

// ListFiles returns the listing; ?path= narrows to one folder's children
// (the query parameter must be present to mean the root, since the root
// path is the empty string).
// GET /api/files
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	var files []models.FileItem
	if r.URL.Query().Has("path") {
		files = h.store.FilesAt(r.URL.Query().Get("path"))
	} else {
		files = h.store.Files()
	}
	if files == nil {
		files = []models.FileItem{}
	}
	httputil.RespondJSON(w, http.StatusOK, files)
}

// AddFile registers a file or folder in the listing.
// POST /api/files
func (h *FileHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	var req AddFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file := h.store.AddFile(models.FileItem{
		Name: req.Name,
		Kind: req.Kind,
		Size: req.Size,
		Path: req.Path,
	})

	h.logger.Info("file added", "id", file.ID, "name", file.Name, "path", file.Path)
	httputil.RespondJSON(w, http.StatusCreated, file)
}

// DeleteFile removes a file. Idempotent: deleting an unknown or already
// removed id succeeds with no effect.
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteFile(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// RenameFileRequest is the payload for a rename.
type RenameFileRequest struct {
	Name string `json:"name"`
}

// RenameFile replaces a file's name. An empty or blank name is rejected
// here at the edge; the container would no-op on it anyway.
// PATCH /api/files/{id}
func (h *FileHandler) RenameFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req RenameFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httputil.RespondError(w, http.StatusBadRequest, "name cannot be empty")
		return
	}

	h.store.RenameFile(id, req.Name)
	w.WriteHeader(http.StatusNoContent)
}

// nonBlank rejects strings that are empty after trimming.
func nonBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}
