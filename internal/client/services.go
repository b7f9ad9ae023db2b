package client

import (
	"context"
	"net/http"
	"net/url"

	"huddle/internal/domain/models"
)

// Typed wrappers over the media-service endpoints. Paths and verbs
// mirror the upstream API; responses decode into the entity models and
// are handed to the success callback for the caller to merge into the
// state container.

// CreateTeamEvent announces a new team by name.
// POST /media-service/group-events/create/{name}
func (c *Client) CreateTeamEvent(ctx context.Context, teamName string, onSuccess func(string), handlers ErrorHandlers) {
	path := "/media-service/group-events/create/" + url.PathEscape(teamName)
	c.Do(ctx, http.MethodPost, path, nil, decodeInto(onSuccess, handlers), handlers)
}

// CreateTeam creates a full team record.
// POST /media-service/groups/create
func (c *Client) CreateTeam(ctx context.Context, team models.Team, onSuccess func(models.Team), handlers ErrorHandlers) {
	c.Do(ctx, http.MethodPost, "/media-service/groups/create", team, decodeInto(onSuccess, handlers), handlers)
}

// MyTeams lists the session user's teams.
// GET /media-service/group/my-groups
func (c *Client) MyTeams(ctx context.Context, onSuccess func([]models.Team), handlers ErrorHandlers) {
	c.Do(ctx, http.MethodGet, "/media-service/group/my-groups", nil, decodeInto(onSuccess, handlers), handlers)
}

// VisibleTeamsByEmail lists the teams visible to a user.
// GET /v1/get-visible-team-by-email/?email=
func (c *Client) VisibleTeamsByEmail(ctx context.Context, email string, onSuccess func([]models.Team), handlers ErrorHandlers) {
	path := "/v1/get-visible-team-by-email/?email=" + url.QueryEscape(email)
	c.Do(ctx, http.MethodGet, path, nil, decodeInto(onSuccess, handlers), handlers)
}

// CreateUser registers a user profile.
// POST /media-service/user-events/create
func (c *Client) CreateUser(ctx context.Context, member models.Member, onSuccess func(models.Member), handlers ErrorHandlers) {
	c.Do(ctx, http.MethodPost, "/media-service/user-events/create", member, decodeInto(onSuccess, handlers), handlers)
}

// UpdateUser updates a user profile.
// POST /media-service/user-events/update
func (c *Client) UpdateUser(ctx context.Context, member models.Member, onSuccess func(models.Member), handlers ErrorHandlers) {
	c.Do(ctx, http.MethodPost, "/media-service/user-events/update", member, decodeInto(onSuccess, handlers), handlers)
}

// UserByEmail fetches a user profile by email.
// GET /media-service/user/get?email=
func (c *Client) UserByEmail(ctx context.Context, email string, onSuccess func(models.Member), handlers ErrorHandlers) {
	path := "/media-service/user/get?email=" + url.QueryEscape(email)
	c.Do(ctx, http.MethodGet, path, nil, decodeInto(onSuccess, handlers), handlers)
}
