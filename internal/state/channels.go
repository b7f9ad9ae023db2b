package state

import "huddle/internal/domain/models"

// AddChannel appends a channel, stamping id and owning team when absent.
func (s *Store) AddChannel(channel models.Channel) models.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	if channel.ID == "" {
		channel.ID = s.stampID()
	}
	if channel.TeamID == "" {
		channel.TeamID = s.currentTeamIDLocked()
	}
	s.channels = append(s.channels, channel)

	s.logger.Debug("channel added", "id", channel.ID, "name", channel.Name)
	return channel
}

// Channels returns the channels owned by the given team, in insertion
// order. An empty team id returns every channel.
func (s *Store) Channels(teamID string) []models.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Channel
	for _, c := range s.channels {
		if teamID == "" || c.TeamID == teamID {
			out = append(out, c)
		}
	}
	return out
}
