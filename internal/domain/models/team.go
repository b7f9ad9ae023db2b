package models

import "time"

// Team is a workspace grouping channels, conversations, posts and calls.
type Team struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Hidden      bool       `json:"hidden" yaml:"hidden"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty" yaml:"created_by,omitempty"`
}

// Channel belongs to exactly one team.
type Channel struct {
	ID          string `json:"id" yaml:"id"`
	TeamID      string `json:"team_id" yaml:"team_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Private     bool   `json:"private" yaml:"private"`
}
