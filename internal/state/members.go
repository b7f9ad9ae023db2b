package state

import "huddle/internal/domain/models"

// AddMember appends a member to the roster, stamping an id when absent.
func (s *Store) AddMember(member models.Member) models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	if member.ID == "" {
		member.ID = s.stampID()
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}
	if member.Status == "" {
		member.Status = models.StatusOffline
	}
	s.members = append(s.members, member)

	s.logger.Debug("member added", "id", member.ID, "email", member.Email)
	return member
}

// RemoveMember filters a member out of the roster. The acting user cannot
// be removed. Conversations and calls referencing the member keep their
// id; ResolveMembers returns a tombstone for it afterwards.
func (s *Store) RemoveMember(id string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.actingID {
		return
	}

	kept := s.members[:0]
	for _, m := range s.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.members = kept
}

// UpdateMemberRole replaces the role of the matching member. No-op if the
// id is absent.
func (s *Store) UpdateMemberRole(id string, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].Role = role
			return
		}
	}
}

// UpdateMemberStatus replaces the presence status of the matching member.
// No-op if the id is absent.
func (s *Store) UpdateMemberStatus(id string, status models.PresenceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members[i].Status = status
			return
		}
	}
}

// Members returns the roster in insertion order.
func (s *Store) Members() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, len(s.members))
	copy(out, s.members)
	return out
}

// ResolveMembers maps participant ids to roster members at read time.
// Ids no longer on the roster resolve to a tombstone carrying just the
// id, so historical conversations still render a stable identity slot.
func (s *Store) ResolveMembers(ids []string) []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.resolveMemberLocked(id))
	}
	return out
}

func (s *Store) resolveMemberLocked(id string) models.Member {
	for _, m := range s.members {
		if m.ID == id {
			return m
		}
	}
	return models.Member{ID: id, Status: models.StatusOffline}
}
