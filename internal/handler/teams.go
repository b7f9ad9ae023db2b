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

// TeamHandler handles team HTTP requests
type TeamHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(store *state.Store, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{store: store, logger: logger}
}

// CreateTeamRequest is the payload for team creation.
type CreateTeamRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxTeamNameLength),
		),
	)
}

// ListTeams returns the session's team list; ?visible=true filters
// hidden teams out.
// GET /api/teams
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.store.Teams()
	if r.URL.Query().Get("visible") == "true" {
		teams = h.store.VisibleTeams()
	}
	if teams == nil {
		teams = []models.Team{}
	}
	httputil.RespondJSON(w, http.StatusOK, teams)
}

// CreateTeam appends a team to the session list.
// POST /api/teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	identity, _ := httputil.GetIdentity(r)

	var req CreateTeamRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	team := h.store.AddTeam(models.Team{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Hidden:    req.Hidden,
		CreatedBy: identity.UserID,
	})

	h.logger.Info("team created", "id", team.ID, "name", team.Name, "user_id", identity.UserID)
	httputil.RespondJSON(w, http.StatusCreated, team)
}

// SetCurrentTeamRequest selects (or clears) the active team context.
type SetCurrentTeamRequest struct {
	TeamID string `json:"team_id"`
}

// SetCurrentTeam switches the active team context. An empty team_id
// clears it. The container ignores unknown ids, so the response always
// reflects the selection after the call.
// PUT /api/teams/current
func (h *TeamHandler) SetCurrentTeam(w http.ResponseWriter, r *http.Request) {
	var req SetCurrentTeamRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.SetCurrentTeam(req.TeamID)

	if current := h.store.CurrentTeam(); current != nil {
		httputil.RespondJSON(w, http.StatusOK, current)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
