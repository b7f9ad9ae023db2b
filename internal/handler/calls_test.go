package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"huddle/internal/domain/models"
)

func TestStartCallActiveImmediately(t *testing.T) {
	store := newTestStore(t)
	h := NewCallHandler(store, testLogger())

	req := jsonRequest(http.MethodPost, "/api/calls",
		`{"kind":"video","participant_ids":["user-b"]}`)
	rec := serve("POST /api/calls", h.StartCall, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var call models.Call
	if err := json.Unmarshal(rec.Body.Bytes(), &call); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if call.Status != models.CallActive {
		t.Errorf("status = %q, want active without any ringing phase", call.Status)
	}
	if len(call.ParticipantIDs) != 2 || call.ParticipantIDs[0] != "user-acting" {
		t.Errorf("participants = %v", call.ParticipantIDs)
	}
}

func TestStartCallRejectsUnknownKind(t *testing.T) {
	store := newTestStore(t)
	h := NewCallHandler(store, testLogger())

	req := jsonRequest(http.MethodPost, "/api/calls",
		`{"kind":"hologram","participant_ids":["user-b"]}`)
	rec := serve("POST /api/calls", h.StartCall, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRingAnswerFlow(t *testing.T) {
	store := newTestStore(t)
	h := NewCallHandler(store, testLogger())

	ring := jsonRequest(http.MethodPost, "/debug/api/calls/ring",
		`{"kind":"voice","participant_ids":["user-b"]}`)
	rec := serve("POST /debug/api/calls/ring", h.RingIncoming, ring)
	if rec.Code != http.StatusCreated {
		t.Fatalf("ring status = %d, body = %s", rec.Code, rec.Body)
	}
	if store.IncomingCall() == nil {
		t.Fatal("no incoming call pending after ring")
	}
	if len(store.Calls()) != 0 {
		t.Error("ringing call already entered history")
	}

	answer := jsonRequest(http.MethodPost, "/api/calls/answer", "")
	rec = serve("POST /api/calls/answer", h.AnswerCall, answer)
	if rec.Code != http.StatusOK {
		t.Fatalf("answer status = %d", rec.Code)
	}

	var snap struct {
		Current  *models.Call  `json:"current"`
		Incoming *models.Call  `json:"incoming"`
		History  []models.Call `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Current == nil || snap.Current.Status != models.CallActive {
		t.Errorf("current = %+v, want active call", snap.Current)
	}
	if snap.Incoming != nil {
		t.Error("incoming still pending after answer")
	}
	if len(snap.History) != 1 {
		t.Errorf("history = %+v, want the answered call", snap.History)
	}
}

func TestEndCallResetsFlags(t *testing.T) {
	store := newTestStore(t)
	store.StartCall(models.CallVideo, []string{"user-b"})
	store.ToggleMute()
	h := NewCallHandler(store, testLogger())

	req := jsonRequest(http.MethodDelete, "/api/calls/current", "")
	rec := serve("DELETE /api/calls/current", h.EndCall, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if store.CurrentCall() != nil {
		t.Error("current call survived end")
	}
	if store.Muted() {
		t.Error("mute flag survived end")
	}
	if calls := store.Calls(); len(calls) != 1 || calls[0].Status != models.CallEnded {
		t.Errorf("history = %+v, want one ended call", calls)
	}
}

func TestDeclineLeavesNoRecord(t *testing.T) {
	store := newTestStore(t)
	store.RingIncoming(models.Call{Kind: models.CallVoice, ParticipantIDs: []string{"user-b"}})
	h := NewCallHandler(store, testLogger())

	req := jsonRequest(http.MethodPost, "/api/calls/decline", "")
	rec := serve("POST /api/calls/decline", h.DeclineCall, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if store.IncomingCall() != nil {
		t.Error("incoming call survived decline")
	}
	if len(store.Calls()) != 0 {
		t.Error("declined call entered history")
	}
}
