package cache

import (
	"context"
	"sync"

	"huddle/internal/domain/models"
)

// MemoryCache is the in-process fallback used when no Redis address is
// configured, and the test double for code that takes a Cache. Entries
// never expire; the process lifetime bounds staleness.
type MemoryCache struct {
	mu       sync.Mutex
	profiles map[string]models.Member
	teams    map[string][]models.Team
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		profiles: make(map[string]models.Member),
		teams:    make(map[string][]models.Team),
	}
}

// Profile returns the cached profile for a user, or ErrMiss.
func (c *MemoryCache) Profile(ctx context.Context, userID string) (*models.Member, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	member, ok := c.profiles[userID]
	if !ok {
		return nil, ErrMiss
	}
	return &member, nil
}

// SetProfile stores a user's profile snapshot.
func (c *MemoryCache) SetProfile(ctx context.Context, userID string, member models.Member) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profiles[userID] = member
	return nil
}

// Teams returns the cached team list for a user, or ErrMiss.
func (c *MemoryCache) Teams(ctx context.Context, userID string) ([]models.Team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	teams, ok := c.teams[userID]
	if !ok {
		return nil, ErrMiss
	}
	out := make([]models.Team, len(teams))
	copy(out, teams)
	return out, nil
}

// SetTeams stores a user's team list snapshot.
func (c *MemoryCache) SetTeams(ctx context.Context, userID string, teams []models.Team) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]models.Team, len(teams))
	copy(stored, teams)
	c.teams[userID] = stored
	return nil
}

// Close is a no-op for the in-process cache.
func (c *MemoryCache) Close() error { return nil }
