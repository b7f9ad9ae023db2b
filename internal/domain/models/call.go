package models

import "time"

// CallKind distinguishes voice from video calls.
type CallKind string

const (
	CallVoice CallKind = "voice"
	CallVideo CallKind = "video"
)

// Valid reports whether the kind is one of the known variants.
func (k CallKind) Valid() bool {
	return k == CallVoice || k == CallVideo
}

// CallStatus is a call's lifecycle state: ringing → active → ended.
type CallStatus string

const (
	CallRinging CallStatus = "ringing"
	CallActive  CallStatus = "active"
	CallEnded   CallStatus = "ended"
)

// Call is a voice or video call within a team. This is a local-only
// simulation: there is no signaling exchange with remote participants.
// At most one call is current (active, locally joined) per session; a
// separate incoming call may coexist until answered or declined.
// Participants are stored by member ID and resolved against the roster
// at read time.
type Call struct {
	ID             string     `json:"id"`
	TeamID         string     `json:"team_id"`
	ParticipantIDs []string   `json:"participant_ids"`
	Kind           CallKind   `json:"kind"`
	Status         CallStatus `json:"status"`
	StartedAt      time.Time  `json:"started_at"`
}
