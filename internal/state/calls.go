package state

import "huddle/internal/domain/models"

// StartCall constructs a call with the acting member plus the given
// participants and makes it the current call. The status is active
// immediately: this is a local-only simulation, there is no ringing
// negotiation with remote participants. Mute and video-off flags reset.
func (s *Store) StartCall(kind models.CallKind, participantIDs []string) models.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := []string{s.actingID}
	seen := map[string]bool{s.actingID: true}
	for _, id := range participantIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	call := models.Call{
		ID:             s.stampID(),
		TeamID:         s.currentTeamIDLocked(),
		ParticipantIDs: ids,
		Kind:           kind,
		Status:         models.CallActive,
		StartedAt:      s.stampTime(),
	}
	s.calls = append([]models.Call{call}, s.calls...)
	s.currentCall = &call
	s.muted = false
	s.videoOff = false

	s.logger.Debug("call started", "id", call.ID, "kind", call.Kind)
	return call
}

// EndCall clears the current call, marks its history record ended and
// resets the mute and video-off flags. No-op when no call is current,
// though the flags still reset.
func (s *Store) EndCall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentCall != nil {
		for i := range s.calls {
			if s.calls[i].ID == s.currentCall.ID {
				s.calls[i].Status = models.CallEnded
				break
			}
		}
		s.currentCall = nil
	}
	s.muted = false
	s.videoOff = false
}

// RingIncoming registers a pending incoming call. It coexists with a
// current call until answered or declined and only enters the call
// history if answered.
func (s *Store) RingIncoming(call models.Call) models.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	if call.ID == "" {
		call.ID = s.stampID()
	}
	call.Status = models.CallRinging
	if call.StartedAt.IsZero() {
		call.StartedAt = s.stampTime()
	}
	s.incomingCall = &call

	s.logger.Debug("incoming call", "id", call.ID, "kind", call.Kind)
	return call
}

// AnswerCall promotes the pending incoming call to current with a fresh
// start timestamp and active status. No-op if nothing is ringing.
func (s *Store) AnswerCall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.incomingCall == nil {
		return
	}

	call := *s.incomingCall
	call.Status = models.CallActive
	call.StartedAt = s.stampTime()

	s.calls = append([]models.Call{call}, s.calls...)
	s.currentCall = &call
	s.incomingCall = nil
	s.muted = false
	s.videoOff = false
}

// DeclineCall drops the pending incoming call without creating a record.
func (s *Store) DeclineCall() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomingCall = nil
}

// ToggleMute flips the local mute flag. Purely client-local: no remote
// participant is affected.
func (s *Store) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
}

// ToggleVideo flips the local video-off flag.
func (s *Store) ToggleVideo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoOff = !s.videoOff
}

// CurrentCall returns the active, locally joined call, or nil.
func (s *Store) CurrentCall() *models.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentCall == nil {
		return nil
	}
	call := *s.currentCall
	return &call
}

// IncomingCall returns the pending incoming call, or nil.
func (s *Store) IncomingCall() *models.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.incomingCall == nil {
		return nil
	}
	call := *s.incomingCall
	return &call
}

// Muted reports the local mute flag.
func (s *Store) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// VideoOff reports the local video-off flag.
func (s *Store) VideoOff() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoOff
}

// Calls returns the call history, newest first.
func (s *Store) Calls() []models.Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Call, len(s.calls))
	copy(out, s.calls)
	return out
}
