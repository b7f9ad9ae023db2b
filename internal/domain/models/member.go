package models

// Role labels a member's standing within a team roster.
// Roles are display labels only; no authorization is enforced from them.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleMember Role = "Member"
	RoleGuest  Role = "Guest"
)

// Valid reports whether the role is one of the known labels.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleMember, RoleGuest:
		return true
	}
	return false
}

// PresenceStatus is a member's presence indicator.
type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "online"
	StatusOffline PresenceStatus = "offline"
	StatusAway    PresenceStatus = "away"
	StatusBusy    PresenceStatus = "busy"
)

// Valid reports whether the status is one of the known presence values.
func (s PresenceStatus) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusAway, StatusBusy:
		return true
	}
	return false
}

// Member is a user on a team roster. Exactly one member exists per ID
// within a roster; the acting user is always present.
type Member struct {
	ID        string         `json:"id" yaml:"id"`
	Email     string         `json:"email" yaml:"email"`
	FirstName string         `json:"first_name" yaml:"first_name"`
	LastName  string         `json:"last_name" yaml:"last_name"`
	Role      Role           `json:"role" yaml:"role"`
	Status    PresenceStatus `json:"status" yaml:"status"`
	AvatarURL string         `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
}

// DisplayName returns the member's full name for rendering.
func (m Member) DisplayName() string {
	if m.FirstName == "" && m.LastName == "" {
		return m.Email
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
