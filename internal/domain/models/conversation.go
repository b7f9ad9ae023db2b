package models

import "time"

// ConversationKind distinguishes one-to-one chats from named group chats.
type ConversationKind string

const (
	ConversationDirect ConversationKind = "direct"
	ConversationGroup  ConversationKind = "group"
)

// Valid reports whether the kind is one of the known variants.
func (k ConversationKind) Valid() bool {
	return k == ConversationDirect || k == ConversationGroup
}

// Conversation is a direct or group chat within a team.
//
// Participants are stored by member ID; display identity is resolved
// against the live roster at read time so roster changes never leave a
// drifted denormalized copy behind. A direct conversation has exactly two
// participants including the acting user and derives its display name from
// the other participant; Name is only meaningful for group conversations.
type Conversation struct {
	ID             string           `json:"id"`
	TeamID         string           `json:"team_id"`
	Kind           ConversationKind `json:"kind"`
	Name           string           `json:"name,omitempty"`
	ParticipantIDs []string         `json:"participant_ids"`
	LastMessage    *ChatMessage     `json:"last_message,omitempty"`
	UnreadCount    int              `json:"unread_count"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ChatMessage is immutable once created and belongs to exactly one
// conversation. There is no edit operation.
type ChatMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	Read           bool      `json:"read"`
}
