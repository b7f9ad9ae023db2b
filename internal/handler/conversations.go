package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"huddle/internal/config"
	"huddle/internal/domain"
	"huddle/internal/domain/models"
	"huddle/internal/httputil"
	"huddle/internal/state"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ConversationHandler handles chat HTTP requests
type ConversationHandler struct {
	store  *state.Store
	logger *slog.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(store *state.Store, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{store: store, logger: logger}
}

// CreateConversationRequest is the payload for starting a chat.
type CreateConversationRequest struct {
	ParticipantIDs []string                `json:"participant_ids"`
	Kind           models.ConversationKind `json:"kind"`
	Name           string                  `json:"name,omitempty"`
}

func (req *CreateConversationRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ParticipantIDs, validation.Required),
		validation.Field(&req.Kind, validation.Required, validation.By(validKind)),
		validation.Field(&req.Name, validation.Length(0, config.MaxConversationNameLength)),
	)
}

func validKind(value interface{}) error {
	kind, _ := value.(models.ConversationKind)
	if !kind.Valid() {
		return fmt.Errorf("kind must be direct or group")
	}
	return nil
}

// ListConversations returns the conversation list, newest first, with
// participants resolved against the live roster.
// GET /api/conversations
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations := h.store.Conversations()

	out := make([]conversationResponse, 0, len(conversations))
	for _, c := range conversations {
		out = append(out, h.resolve(c))
	}
	httputil.RespondJSON(w, http.StatusOK, out)
}

// conversationResponse pairs a conversation with its resolved
// participants so clients render a stable identity even after roster
// changes.
type conversationResponse struct {
	models.Conversation
	Participants []models.Member `json:"participants"`
}

func (h *ConversationHandler) resolve(c models.Conversation) conversationResponse {
	return conversationResponse{
		Conversation: c,
		Participants: h.store.ResolveMembers(c.ParticipantIDs),
	}
}

// CreateConversation starts a chat with the acting member plus the given
// participants and returns it so the client can immediately open it.
// POST /api/conversations
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req CreateConversationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Kind == models.ConversationGroup && req.Name == "" {
		httputil.RespondError(w, http.StatusBadRequest, "group conversations require a name")
		return
	}

	conv := h.store.CreateConversation(req.ParticipantIDs, req.Kind, req.Name)

	h.logger.Info("conversation created", "id", conv.ID, "kind", conv.Kind)
	httputil.RespondJSON(w, http.StatusCreated, h.resolve(conv))
}

// SetCurrentConversationRequest selects (or clears) the open chat.
type SetCurrentConversationRequest struct {
	ConversationID string `json:"conversation_id"`
}

// SetCurrentConversation opens a conversation, resetting its unread
// counter.
// PUT /api/conversations/current
func (h *ConversationHandler) SetCurrentConversation(w http.ResponseWriter, r *http.Request) {
	var req SetCurrentConversationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.SetCurrentConversation(req.ConversationID)

	if current := h.store.CurrentConversation(); current != nil {
		httputil.RespondJSON(w, http.StatusOK, h.resolve(*current))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMessages returns a conversation's messages in chronological order.
// GET /api/conversations/{id}/messages
func (h *ConversationHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	messages := h.store.Messages(id)
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	httputil.RespondJSON(w, http.StatusOK, messages)
}

// SendMessageRequest is the payload for a chat message.
type SendMessageRequest struct {
	Content string `json:"content"`
}

func (req *SendMessageRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Content,
			validation.Required,
			validation.Length(1, config.MaxMessageLength),
		),
	)
}

// SendMessage appends a message stamped with the acting member and
// updates the conversation's last-message reference and timestamps in
// the same container step. Unknown conversation ids surface as 404 even
// though the container still records the message.
// POST /api/conversations/{id}/messages
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req SendMessageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	known := false
	for _, c := range h.store.Conversations() {
		if c.ID == id {
			known = true
			break
		}
	}

	msg := h.store.SendMessage(id, req.Content)
	if !known {
		respondError(w, &domain.NotFoundError{Message: "conversation not found"})
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, msg)
}
