package state

import (
	"reflect"
	"testing"

	"huddle/internal/domain/models"
)

func TestCreateConversation_DirectHasTwoParticipants(t *testing.T) {
	s := newTestStore(t, &Seed{Members: []models.Member{
		{ID: "user-jane", Email: "jane.smith@example.com"},
	}})

	conv := s.CreateConversation([]string{"user-jane"}, models.ConversationDirect, "")

	if conv.Kind != models.ConversationDirect {
		t.Fatalf("expected direct conversation, got %q", conv.Kind)
	}
	if len(conv.ParticipantIDs) != 2 {
		t.Fatalf("expected exactly 2 participants, got %d", len(conv.ParticipantIDs))
	}
	if conv.ParticipantIDs[0] != "user-acting" {
		t.Errorf("expected acting user included, got %v", conv.ParticipantIDs)
	}

	// Retrievable at the head of the conversation list.
	convs := s.Conversations()
	if len(convs) == 0 || convs[0].ID != conv.ID {
		t.Errorf("expected new conversation at head of list")
	}
}

func TestCreateConversation_DirectUpgradesToGroup(t *testing.T) {
	s := newTestStore(t, nil)

	conv := s.CreateConversation([]string{"user-a", "user-b"}, models.ConversationDirect, "")
	if conv.Kind != models.ConversationGroup {
		t.Errorf("expected direct with 2 other participants to upgrade to group, got %q", conv.Kind)
	}
}

func TestCreateConversation_DirectIgnoresName(t *testing.T) {
	s := newTestStore(t, nil)

	conv := s.CreateConversation([]string{"user-a"}, models.ConversationDirect, "Secret Club")
	if conv.Name != "" {
		t.Errorf("expected direct conversation name derived from participants, got %q", conv.Name)
	}

	group := s.CreateConversation([]string{"user-a", "user-b"}, models.ConversationGroup, "Launch Crew")
	if group.Name != "Launch Crew" {
		t.Errorf("expected group name kept, got %q", group.Name)
	}
}

func TestSendMessage_ChronologicalAndStable(t *testing.T) {
	s := newTestStore(t, nil)

	conv := s.CreateConversation([]string{"user-a"}, models.ConversationDirect, "")

	s.SendMessage(conv.ID, "hello")
	s.SendMessage(conv.ID, "are you there?")

	msgs := s.Messages(conv.ID)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[len(msgs)-1].Content != "are you there?" {
		t.Errorf("expected last message content %q, got %q", "are you there?", msgs[len(msgs)-1].Content)
	}

	// Two reads without an intervening send yield equal sequences.
	again := s.Messages(conv.ID)
	if !reflect.DeepEqual(msgs, again) {
		t.Error("expected repeated reads to yield equal sequences")
	}
}

func TestSendMessage_UpdatesConversationAtomically(t *testing.T) {
	s := newTestStore(t, nil)

	conv := s.CreateConversation([]string{"user-a"}, models.ConversationDirect, "")
	before := s.Conversations()[0].UpdatedAt

	msg := s.SendMessage(conv.ID, "ping")

	got := s.Conversations()[0]
	if got.LastMessage == nil || got.LastMessage.ID != msg.ID {
		t.Fatalf("expected last message %s, got %+v", msg.ID, got.LastMessage)
	}
	if got.UpdatedAt.Before(before) {
		t.Error("expected updated timestamp to advance")
	}
}

func TestSendMessage_UnknownConversationStillCreatesMessage(t *testing.T) {
	s := newTestStore(t, nil)

	s.SendMessage("conv-404", "lost")

	if got := len(s.Messages("conv-404")); got != 1 {
		t.Errorf("expected orphan message retrievable, got %d", got)
	}
	if got := len(s.Conversations()); got != 0 {
		t.Errorf("expected no conversation created, got %d", got)
	}
}

func TestUnreadCounter_IncrementsOnBackgroundResetOnOpen(t *testing.T) {
	s := newTestStore(t, nil)

	open := s.CreateConversation([]string{"user-a"}, models.ConversationDirect, "")
	background := s.CreateConversation([]string{"user-b"}, models.ConversationDirect, "")
	s.SetCurrentConversation(open.ID)

	s.SendMessage(open.ID, "seen immediately")
	s.SendMessage(background.ID, "unseen")
	s.SendMessage(background.ID, "still unseen")

	var openCount, bgCount int
	for _, c := range s.Conversations() {
		switch c.ID {
		case open.ID:
			openCount = c.UnreadCount
		case background.ID:
			bgCount = c.UnreadCount
		}
	}
	if openCount != 0 {
		t.Errorf("expected open conversation unread 0, got %d", openCount)
	}
	if bgCount != 2 {
		t.Errorf("expected background conversation unread 2, got %d", bgCount)
	}

	// Opening the background conversation resets its counter.
	s.SetCurrentConversation(background.ID)
	for _, c := range s.Conversations() {
		if c.ID == background.ID && c.UnreadCount != 0 {
			t.Errorf("expected unread reset on open, got %d", c.UnreadCount)
		}
	}
}
