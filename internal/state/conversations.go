package state

import "huddle/internal/domain/models"

// CreateConversation constructs a conversation owned by the current team,
// containing the acting member plus the given participants, and prepends
// it to the list (newest-first). The created conversation is returned so
// the caller can immediately make it current.
//
// A direct conversation holds exactly two participants; when more than
// one other participant is supplied the kind is upgraded to group here,
// inside the invariant owner, rather than by caller convention.
func (s *Store) CreateConversation(participantIDs []string, kind models.ConversationKind, name string) models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := []string{s.actingID}
	seen := map[string]bool{s.actingID: true}
	for _, id := range participantIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if kind == models.ConversationDirect && len(ids) > 2 {
		kind = models.ConversationGroup
	}
	if kind == models.ConversationDirect {
		// Direct conversations derive their display name from the
		// other participant.
		name = ""
	}

	conv := models.Conversation{
		ID:             s.stampID(),
		TeamID:         s.currentTeamIDLocked(),
		Kind:           kind,
		Name:           name,
		ParticipantIDs: ids,
		UnreadCount:    0,
		UpdatedAt:      s.stampTime(),
	}
	s.conversations = append([]models.Conversation{conv}, s.conversations...)

	s.logger.Debug("conversation created",
		"id", conv.ID,
		"kind", conv.Kind,
		"participants", len(conv.ParticipantIDs),
	)
	return conv
}

// Conversations returns the conversation list, newest first.
func (s *Store) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// SetCurrentConversation opens a conversation, resetting its unread
// counter, or clears the selection when id is empty. Unknown ids are
// ignored.
func (s *Store) SetCurrentConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.currentConvID = ""
		return
	}
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			s.currentConvID = id
			s.conversations[i].UnreadCount = 0
			return
		}
	}
}

// CurrentConversation returns the open conversation, or nil.
func (s *Store) CurrentConversation() *models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.conversations {
		if c.ID == s.currentConvID {
			conv := c
			return &conv
		}
	}
	return nil
}

// SendMessage constructs a message stamped with the acting member and the
// current time, appends it to the flat message list, and updates the
// matching conversation's last-message reference, updated timestamp and
// unread counter in the same step. The unread counter only grows for
// conversations that are not currently open; opening one resets it.
//
// When the conversation id matches nothing the message is still created
// and retrievable via Messages; only the conversation update is skipped.
func (s *Store) SendMessage(conversationID, content string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:             s.stampID(),
		ConversationID: conversationID,
		SenderID:       s.actingID,
		Content:        content,
		CreatedAt:      s.stampTime(),
		Read:           false,
	}
	s.messages = append(s.messages, msg)

	for i := range s.conversations {
		if s.conversations[i].ID != conversationID {
			continue
		}
		last := msg
		s.conversations[i].LastMessage = &last
		s.conversations[i].UpdatedAt = msg.CreatedAt
		if conversationID != s.currentConvID {
			s.conversations[i].UnreadCount++
		}
		break
	}

	return msg
}

// Messages returns all messages for a conversation in insertion
// (chronological) order. Each call produces a fresh filtered slice;
// nothing is cached or incremental.
func (s *Store) Messages(conversationID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out
}
