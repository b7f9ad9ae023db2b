package state

import "huddle/internal/domain/models"

// AddTeam appends a team to the list, stamping an id when the caller did
// not supply one. Insertion order is preserved and no uniqueness check is
// performed: seeding the same id twice yields two entries.
func (s *Store) AddTeam(team models.Team) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.ID == "" {
		team.ID = s.stampID()
	}
	s.teams = append(s.teams, team)

	s.logger.Debug("team added", "id", team.ID, "name", team.Name)
	return team
}

// Teams returns the team list in insertion order.
func (s *Store) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// VisibleTeams returns the teams whose hidden flag is unset.
func (s *Store) VisibleTeams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Team
	for _, t := range s.teams {
		if !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

// SetCurrentTeam switches the active team context, or clears it when id
// is empty. Dependent selections (current conversation, view) are left
// untouched; views handle that defensively. Unknown ids are ignored.
func (s *Store) SetCurrentTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.currentTeamID = ""
		return
	}
	for _, t := range s.teams {
		if t.ID == id {
			s.currentTeamID = id
			return
		}
	}
}

// CurrentTeam returns the active team, or nil when no team is selected.
func (s *Store) CurrentTeam() *models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teams {
		if t.ID == s.currentTeamID {
			team := t
			return &team
		}
	}
	return nil
}

// currentTeamIDLocked is for mutations that stamp the owning team.
// Caller must hold s.mu.
func (s *Store) currentTeamIDLocked() string {
	return s.currentTeamID
}
