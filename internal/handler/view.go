package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"
)

// ViewHandler tracks which workspace panel is active.
type ViewHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(store *state.Store, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{store: store, logger: logger}
}

// SetViewRequest selects the active panel.
type SetViewRequest struct {
	View models.NavigationView `json:"view"`
}

// SetView switches the active panel. The panel set is closed: unknown
// names are rejected instead of falling through to a default.
// PUT /api/view
func (h *ViewHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req SetViewRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.View.Valid() {
		httputil.RespondError(w, http.StatusBadRequest, "unknown view")
		return
	}

	h.store.SetCurrentView(req.View)
	httputil.RespondJSON(w, http.StatusOK, map[string]models.NavigationView{
		"view": h.store.CurrentView(),
	})
}
