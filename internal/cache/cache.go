package cache

import (
	"context"
	"errors"
	"time"

	"huddle/internal/domain/models"
)

// ErrMiss is returned when a snapshot is not present in the cache.
var ErrMiss = errors.New("cache miss")

// DefaultTTL bounds how stale a cached snapshot may get before the
// next session start goes back to the upstream service.
const DefaultTTL = 12 * time.Hour

// Cache stores per-user session snapshots so a restarted workspace can
// render something before the upstream service answers. It is an
// optimization only: callers treat any error like a miss and carry on.
type Cache interface {
	// Profile returns the cached profile for a user, or ErrMiss.
	Profile(ctx context.Context, userID string) (*models.Member, error)

	// SetProfile stores a user's profile snapshot.
	SetProfile(ctx context.Context, userID string, member models.Member) error

	// Teams returns the cached team list for a user, or ErrMiss.
	Teams(ctx context.Context, userID string) ([]models.Team, error)

	// SetTeams stores a user's team list snapshot.
	SetTeams(ctx context.Context, userID string, teams []models.Team) error

	// Close releases any underlying connections.
	Close() error
}
