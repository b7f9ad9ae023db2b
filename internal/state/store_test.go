package state

import (
	"log/slog"
	"os"
	"testing"

	"huddle/internal/domain/models"
)

// newTestStore builds a store with a fixed acting user and a quiet logger.
func newTestStore(t *testing.T, seed *Seed) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	return New(Options{
		ActingUser: models.Member{
			ID:        "user-acting",
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Role:      models.RoleOwner,
			Status:    models.StatusOnline,
		},
		Seed:   seed,
		Logger: logger,
	})
}

func TestNew_ActingUserAlwaysInRoster(t *testing.T) {
	s := newTestStore(t, nil)

	members := s.Members()
	if len(members) != 1 {
		t.Fatalf("expected 1 roster member, got %d", len(members))
	}
	if members[0].ID != "user-acting" {
		t.Errorf("expected acting user in roster, got %q", members[0].ID)
	}
	if got := s.ActingMember().Email; got != "john.doe@example.com" {
		t.Errorf("unexpected acting member email %q", got)
	}
}

func TestNew_SeedEntitiesApplied(t *testing.T) {
	seed := &Seed{
		Teams: []models.Team{
			{ID: "team-1", Name: "Development Team"},
			{ID: "team-2", Name: "Marketing Team", Hidden: true},
		},
		Members: []models.Member{
			{ID: "user-acting", Email: "john.doe@example.com"}, // duplicate of acting user
			{ID: "user-jane", Email: "jane.smith@example.com"},
		},
		Channels: []models.Channel{
			{ID: "channel-1", TeamID: "team-1", Name: "general"},
		},
	}
	s := newTestStore(t, seed)

	if len(s.Teams()) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(s.Teams()))
	}
	if got := len(s.Members()); got != 2 {
		t.Errorf("expected acting user deduplicated in roster, got %d members", got)
	}

	// Current team defaults to the first seeded team.
	current := s.CurrentTeam()
	if current == nil || current.ID != "team-1" {
		t.Fatalf("expected current team team-1, got %+v", current)
	}

	if got := len(s.VisibleTeams()); got != 1 {
		t.Errorf("expected 1 visible team (team-2 is hidden), got %d", got)
	}
}

func TestSetCurrentView(t *testing.T) {
	s := newTestStore(t, nil)

	if got := s.CurrentView(); got != models.ViewPosts {
		t.Fatalf("expected default view posts, got %q", got)
	}

	s.SetCurrentView(models.ViewChat)
	if got := s.CurrentView(); got != models.ViewChat {
		t.Errorf("expected view chat, got %q", got)
	}

	// Unknown panels never fall through.
	s.SetCurrentView(models.NavigationView("dashboard"))
	if got := s.CurrentView(); got != models.ViewChat {
		t.Errorf("expected invalid view to be ignored, got %q", got)
	}
}
