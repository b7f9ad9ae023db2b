package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MemberHandler handles roster HTTP requests
type MemberHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(store *state.Store, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{store: store, logger: logger}
}

// AddMemberRequest is the payload for adding a roster member.
type AddMemberRequest struct {
	Email     string                `json:"email"`
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Role      models.Role           `json:"role"`
	Status    models.PresenceStatus `json:"status,omitempty"`
}

func (req *AddMemberRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required, validation.By(validEmail)),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.Role, validation.By(validRole)),
	)
}

func validEmail(value interface{}) error {
	email, _ := value.(string)
	if !strings.Contains(email, "@") {
		return fmt.Errorf("must be an email address")
	}
	return nil
}

func validRole(value interface{}) error {
	role, _ := value.(models.Role)
	if role != "" && !role.Valid() {
		return fmt.Errorf("role must be Owner, Member or Guest")
	}
	return nil
}

// ListMembers returns the roster in insertion order.
// GET /api/members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.store.Members())
}

// AddMember appends a member to the roster.
// POST /api/members
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	member := h.store.AddMember(models.Member{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Status:    req.Status,
	})

	h.logger.Info("member added", "id", member.ID, "email", member.Email)
	httputil.RespondJSON(w, http.StatusCreated, member)
}

// RemoveMember filters a member out of the roster. Removal does not
// cascade into conversations or calls; their participant ids resolve to
// tombstones afterwards.
// DELETE /api/members/{id}
func (h *MemberHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveMember(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMemberRoleRequest is the payload for a role change.
type UpdateMemberRoleRequest struct {
	Role models.Role `json:"role"`
}

// UpdateMemberRole replaces the role label of the matching member.
// PATCH /api/members/{id}/role
func (h *MemberHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateMemberRoleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Role.Valid() {
		httputil.RespondError(w, http.StatusBadRequest, "role must be Owner, Member or Guest")
		return
	}

	h.store.UpdateMemberRole(id, req.Role)
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMemberStatusRequest is the payload for a presence change.
type UpdateMemberStatusRequest struct {
	Status models.PresenceStatus `json:"status"`
}

// UpdateMemberStatus replaces the presence status of the matching member.
// PATCH /api/members/{id}/status
func (h *MemberHandler) UpdateMemberStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateMemberStatusRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		httputil.RespondError(w, http.StatusBadRequest, "status must be online, offline, away or busy")
		return
	}

	h.store.UpdateMemberStatus(id, req.Status)
	w.WriteHeader(http.StatusNoContent)
}
