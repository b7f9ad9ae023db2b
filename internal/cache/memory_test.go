package cache

import (
	"context"
	"errors"
	"testing"

	"huddle/internal/domain/models"
)

func TestMemoryCacheProfileRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, err := c.Profile(ctx, "u1"); !errors.Is(err, ErrMiss) {
		t.Fatalf("empty cache error = %v, want ErrMiss", err)
	}

	want := models.Member{ID: "u1", Email: "u1@example.com", FirstName: "Uma"}
	if err := c.SetProfile(ctx, "u1", want); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	got, err := c.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got.Email != want.Email || got.FirstName != want.FirstName {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestMemoryCacheTeamsIsolated(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if _, err := c.Teams(ctx, "u1"); !errors.Is(err, ErrMiss) {
		t.Fatalf("empty cache error = %v, want ErrMiss", err)
	}

	stored := []models.Team{{ID: "t1", Name: "Dev"}}
	if err := c.SetTeams(ctx, "u1", stored); err != nil {
		t.Fatalf("SetTeams: %v", err)
	}

	// Mutating either the input or a returned snapshot must not leak
	// into the cached value.
	stored[0].Name = "changed"
	first, err := c.Teams(ctx, "u1")
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	first[0].Name = "also changed"

	second, err := c.Teams(ctx, "u1")
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if second[0].Name != "Dev" {
		t.Errorf("cached name = %q, want Dev", second[0].Name)
	}
}

func TestMemoryCacheScopedPerUser(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetTeams(ctx, "u1", []models.Team{{ID: "t1"}}); err != nil {
		t.Fatalf("SetTeams: %v", err)
	}
	if _, err := c.Teams(ctx, "u2"); !errors.Is(err, ErrMiss) {
		t.Fatalf("other user's teams error = %v, want ErrMiss", err)
	}
}
