package state

import (
	"testing"

	"huddle/internal/domain/models"
)

func TestUpdateMemberRole(t *testing.T) {
	s := newTestStore(t, &Seed{Members: []models.Member{
		{ID: "user-jane", Email: "jane.smith@example.com", Role: models.RoleMember},
	}})

	s.UpdateMemberRole("user-jane", models.RoleOwner)

	for _, m := range s.Members() {
		if m.ID == "user-jane" && m.Role != models.RoleOwner {
			t.Errorf("expected role Owner, got %q", m.Role)
		}
	}

	// Unknown id is a silent no-op.
	s.UpdateMemberRole("user-404", models.RoleGuest)
	if got := len(s.Members()); got != 2 {
		t.Errorf("expected roster unchanged, got %d members", got)
	}
}

func TestRemoveMember_NoCascadeTombstoneResolution(t *testing.T) {
	s := newTestStore(t, &Seed{Members: []models.Member{
		{ID: "user-jane", Email: "jane.smith@example.com", FirstName: "Jane", LastName: "Smith"},
	}})

	conv := s.CreateConversation([]string{"user-jane"}, models.ConversationDirect, "")

	s.RemoveMember("user-jane")

	// The conversation keeps the participant id.
	got := s.Conversations()[0]
	if len(got.ParticipantIDs) != 2 {
		t.Fatalf("expected participant ids retained, got %v", got.ParticipantIDs)
	}

	// Resolution yields a tombstone carrying just the id.
	resolved := s.ResolveMembers(conv.ParticipantIDs)
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved members, got %d", len(resolved))
	}
	tomb := resolved[1]
	if tomb.ID != "user-jane" || tomb.Email != "" {
		t.Errorf("expected tombstone for removed member, got %+v", tomb)
	}
}

func TestRemoveMember_ActingUserProtected(t *testing.T) {
	s := newTestStore(t, nil)

	s.RemoveMember("user-acting")
	if got := len(s.Members()); got != 1 {
		t.Errorf("expected acting user to remain in roster, got %d members", got)
	}
}

func TestUpdateMemberStatus(t *testing.T) {
	s := newTestStore(t, nil)

	s.UpdateMemberStatus("user-acting", models.StatusAway)
	if got := s.ActingMember().Status; got != models.StatusAway {
		t.Errorf("expected status away, got %q", got)
	}
}

func TestAddMember_Defaults(t *testing.T) {
	s := newTestStore(t, nil)

	m := s.AddMember(models.Member{Email: "new@example.com"})
	if m.ID == "" {
		t.Error("expected generated member id")
	}
	if m.Role != models.RoleMember {
		t.Errorf("expected default role Member, got %q", m.Role)
	}
	if m.Status != models.StatusOffline {
		t.Errorf("expected default status offline, got %q", m.Status)
	}
}
