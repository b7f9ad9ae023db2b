package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CallHandler handles call HTTP requests. Calls are a local-only
// simulation: no signaling reaches any remote participant.
type CallHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewCallHandler creates a new call handler
func NewCallHandler(store *state.Store, logger *slog.Logger) *CallHandler {
	return &CallHandler{store: store, logger: logger}
}

// callState is the full call snapshot a client renders from.
type callState struct {
	Current  *models.Call  `json:"current,omitempty"`
	Incoming *models.Call  `json:"incoming,omitempty"`
	Muted    bool          `json:"muted"`
	VideoOff bool          `json:"video_off"`
	History  []models.Call `json:"history"`
}

func (h *CallHandler) snapshot() callState {
	history := h.store.Calls()
	if history == nil {
		history = []models.Call{}
	}
	return callState{
		Current:  h.store.CurrentCall(),
		Incoming: h.store.IncomingCall(),
		Muted:    h.store.Muted(),
		VideoOff: h.store.VideoOff(),
		History:  history,
	}
}

// GetCalls returns the session's call state and history.
// GET /api/calls
func (h *CallHandler) GetCalls(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.snapshot())
}

// StartCallRequest is the payload for starting a call.
type StartCallRequest struct {
	Kind           models.CallKind `json:"kind"`
	ParticipantIDs []string        `json:"participant_ids"`
}

func (req *StartCallRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Kind, validation.Required, validation.By(validCallKind)),
		validation.Field(&req.ParticipantIDs, validation.Required),
	)
}

func validCallKind(value interface{}) error {
	kind, _ := value.(models.CallKind)
	if !kind.Valid() {
		return fmt.Errorf("kind must be voice or video")
	}
	return nil
}

// StartCall starts a call with the acting member plus the given
// participants; it becomes current immediately with status active.
// POST /api/calls
func (h *CallHandler) StartCall(w http.ResponseWriter, r *http.Request) {
	var req StartCallRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	call := h.store.StartCall(req.Kind, req.ParticipantIDs)

	h.logger.Info("call started", "id", call.ID, "kind", call.Kind)
	httputil.RespondJSON(w, http.StatusCreated, call)
}

// RingIncoming simulates the external signal that a call is ringing.
// No remote peer exists, so the trigger is an endpoint; answering or
// declining resolves it like any incoming call.
// POST /debug/api/calls/ring (dev only)
func (h *CallHandler) RingIncoming(w http.ResponseWriter, r *http.Request) {
	var req StartCallRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	call := h.store.RingIncoming(models.Call{
		Kind:           req.Kind,
		ParticipantIDs: req.ParticipantIDs,
	})

	h.logger.Info("incoming call ringing", "id", call.ID, "kind", call.Kind)
	httputil.RespondJSON(w, http.StatusCreated, call)
}

// EndCall clears the current call and resets the local flags.
// DELETE /api/calls/current
func (h *CallHandler) EndCall(w http.ResponseWriter, r *http.Request) {
	h.store.EndCall()
	w.WriteHeader(http.StatusNoContent)
}

// AnswerCall promotes the pending incoming call to current.
// POST /api/calls/answer
func (h *CallHandler) AnswerCall(w http.ResponseWriter, r *http.Request) {
	h.store.AnswerCall()
	httputil.RespondJSON(w, http.StatusOK, h.snapshot())
}

// DeclineCall drops the pending incoming call without a record.
// POST /api/calls/decline
func (h *CallHandler) DeclineCall(w http.ResponseWriter, r *http.Request) {
	h.store.DeclineCall()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleMute flips the local mute flag.
// POST /api/calls/mute
func (h *CallHandler) ToggleMute(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleMute()
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"muted": h.store.Muted()})
}

// ToggleVideo flips the local video-off flag.
// POST /api/calls/video
func (h *CallHandler) ToggleVideo(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleVideo()
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"video_off": h.store.VideoOff()})
}
