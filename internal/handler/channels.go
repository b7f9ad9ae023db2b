package handler

import (
	"log/slog"
	"net/http"

	"huddle/internal/config"
	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ChannelHandler handles channel HTTP requests
type ChannelHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(store *state.Store, logger *slog.Logger) *ChannelHandler {
	return &ChannelHandler{store: store, logger: logger}
}

// CreateChannelRequest is the payload for channel creation.
type CreateChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private,omitempty"`
}

func (req *CreateChannelRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxChannelNameLength),
			validation.By(nonBlank),
		),
	)
}

// ListChannels returns the current team's channels; ?team_id= overrides
// the scope.
// GET /api/channels
func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		if current := h.store.CurrentTeam(); current != nil {
			teamID = current.ID
		}
	}

	channels := h.store.Channels(teamID)
	if channels == nil {
		channels = []models.Channel{}
	}
	httputil.RespondJSON(w, http.StatusOK, channels)
}

// CreateChannel adds a channel to the current team.
// POST /api/channels
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req CreateChannelRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	channel := h.store.AddChannel(models.Channel{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
	})

	h.logger.Info("channel created", "id", channel.ID, "name", channel.Name)
	httputil.RespondJSON(w, http.StatusCreated, channel)
}
