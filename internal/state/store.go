package state

import (
	"log/slog"
	"sync"
	"time"

	"huddle/internal/domain/models"

	"github.com/google/uuid"
)

// Store is the authoritative in-memory snapshot of all entity collections
// for one session. It is the single source of truth per collection: views
// and handlers hold only transient selections and merge network responses
// back in through explicit mutation calls.
//
// Every mutation is synchronous and never errors; operations given an
// unmatched id are silent no-ops. All state is volatile and lost when the
// session ends. A mutex serializes access so each mutation runs to
// completion before the next, which is the only atomicity guarantee.
type Store struct {
	mu     sync.Mutex
	logger *slog.Logger

	actingID string

	teams         []models.Team
	currentTeamID string
	currentView   models.NavigationView

	members  []models.Member
	channels []models.Channel
	files    []models.FileItem
	posts    []models.Post

	conversations []models.Conversation
	currentConvID string
	messages      []models.ChatMessage

	calls        []models.Call
	currentCall  *models.Call
	incomingCall *models.Call
	muted        bool
	videoOff     bool

	now   func() time.Time
	newID func() string
}

// Options configures a fresh session store. There are no module-level
// singletons; every session constructs its own Store from an explicit
// acting identity and optional seed entities.
type Options struct {
	// ActingUser is the authenticated member all author/sender stamps
	// come from. It is always placed in the roster.
	ActingUser models.Member

	// Seed provides the session's initial entities.
	Seed *Seed

	Logger *slog.Logger
}

// New returns a Store holding the seed entities plus the acting user.
// The current team defaults to the first seeded team and the current
// view to the posts panel.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		logger:      logger,
		actingID:    opts.ActingUser.ID,
		currentView: models.ViewPosts,
		now:         time.Now,
		newID:       uuid.NewString,
	}

	if opts.ActingUser.ID != "" {
		s.members = append(s.members, opts.ActingUser)
	}

	if opts.Seed != nil {
		s.applySeed(opts.Seed)
	}

	if len(s.teams) > 0 {
		s.currentTeamID = s.teams[0].ID
	}

	return s
}

// ActingMember returns the member all mutations stamp author and sender
// fields with.
func (s *Store) ActingMember() models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.members {
		if m.ID == s.actingID {
			return m
		}
	}
	return models.Member{ID: s.actingID}
}

// CurrentView returns the active navigation panel.
func (s *Store) CurrentView() models.NavigationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

// SetCurrentView switches the active panel. Unknown view strings are
// ignored rather than falling through to a default panel.
func (s *Store) SetCurrentView(view models.NavigationView) {
	if !view.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = view
}

// timestamp and id helpers, overridable in tests.

func (s *Store) stampTime() time.Time { return s.now() }
func (s *Store) stampID() string      { return s.newID() }
