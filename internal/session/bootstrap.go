package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"huddle/internal/cache"
	"huddle/internal/client"
	"huddle/internal/domain/models"
	"huddle/internal/state"
)

// Bootstrapper hydrates a fresh workspace for the acting member: cached
// snapshots render first, then the upstream media-service refreshes
// them. Every step is best-effort; a dead cache or unreachable upstream
// leaves the seeded workspace as-is.
type Bootstrapper struct {
	store  *state.Store
	cache  cache.Cache
	client *client.Client
	logger *slog.Logger
}

// New creates a bootstrapper over the session's store, cache and
// upstream client.
func New(store *state.Store, c cache.Cache, cl *client.Client, logger *slog.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, cache: c, client: cl, logger: logger}
}

// Run performs the session start sequence.
func (b *Bootstrapper) Run(ctx context.Context) {
	me := b.store.ActingMember()

	b.hydrateTeamsFromCache(ctx, me.ID)
	b.ensureProfile(ctx, me)
	b.refreshTeams(ctx, me.ID)
}

func (b *Bootstrapper) hydrateTeamsFromCache(ctx context.Context, userID string) {
	teams, err := b.cache.Teams(ctx, userID)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			b.logger.Warn("team cache unavailable", "error", err)
		}
		return
	}
	b.mergeTeams(teams)
	b.logger.Debug("teams hydrated from cache", "count", len(teams))
}

// ensureProfile makes sure the acting member exists upstream. A cached
// profile means a previous session already confirmed it; otherwise look
// the user up by email and register on a not-found rejection.
func (b *Bootstrapper) ensureProfile(ctx context.Context, me models.Member) {
	if _, err := b.cache.Profile(ctx, me.ID); err == nil {
		return
	}

	confirm := func(member models.Member) {
		if err := b.cache.SetProfile(ctx, me.ID, member); err != nil {
			b.logger.Warn("profile cache write failed", "error", err)
		}
	}

	b.client.UserByEmail(ctx, me.Email, confirm, client.ErrorHandlers{
		OnRejected: func(status int, body []byte) {
			if status != http.StatusNotFound {
				b.logger.Warn("profile lookup rejected", "status", status)
				return
			}
			b.client.CreateUser(ctx, me, confirm, client.ErrorHandlers{
				OnRejected: func(status int, body []byte) {
					b.logger.Warn("profile registration rejected", "status", status)
				},
				OnNoResponse: func(err error) {
					b.logger.Warn("profile registration unreachable", "error", err)
				},
			})
		},
		OnNoResponse: func(err error) {
			b.logger.Warn("profile lookup unreachable", "error", err)
		},
	})
}

func (b *Bootstrapper) refreshTeams(ctx context.Context, userID string) {
	b.client.MyTeams(ctx, func(teams []models.Team) {
		b.mergeTeams(teams)
		if err := b.cache.SetTeams(ctx, userID, teams); err != nil {
			b.logger.Warn("team cache write failed", "error", err)
		}
		b.logger.Info("teams refreshed from upstream", "count", len(teams))
	}, client.ErrorHandlers{
		OnRejected: func(status int, body []byte) {
			b.logger.Warn("team refresh rejected", "status", status)
		},
		OnNoResponse: func(err error) {
			b.logger.Warn("team refresh unreachable", "error", err)
		},
	})
}

// mergeTeams adds teams not already in the container. The container
// itself never de-duplicates, so the merge has to check before adding.
func (b *Bootstrapper) mergeTeams(teams []models.Team) {
	known := make(map[string]bool)
	for _, t := range b.store.Teams() {
		known[t.ID] = true
	}
	for _, t := range teams {
		if known[t.ID] {
			continue
		}
		b.store.AddTeam(t)
		known[t.ID] = true
	}
}
