// Package memory keeps viewer dashboards in process memory. State is lost on
// restart; a new session starts from the seed.
package memory

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/dashboard"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// DashboardStore implements ports.DashboardStore and ports.SessionEvictor with a
// map guarded by a mutex. Update works on a clone and swaps it in only when the
// callback succeeds, so a failed command never leaves a half-applied dashboard
// behind.
//
// At most maxSessions dashboards are kept. Seeding one more evicts the session
// that was used least recently.
type DashboardStore struct {
	seed        ports.SeedProvider
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	dashboard *dashboard.Dashboard
	lastSeen  time.Time
}

// NewDashboardStore creates an empty store seeding sessions from seed.
func NewDashboardStore(seed ports.SeedProvider, maxSessions int) (*DashboardStore, error) {
	if seed == nil {
		return nil, errs.NewValueIsRequiredError("seed")
	}
	if maxSessions < 1 {
		return nil, errs.NewValueIsOutOfRangeError("maxSessions", maxSessions, 1, "unbounded")
	}
	return &DashboardStore{
		seed:        seed,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}, nil
}

// Load returns a copy of the session's dashboard, seeding it on first use.
func (s *DashboardStore) Load(ctx context.Context, sessionID string) (*dashboard.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.dashboard.Clone(), nil
}

// Update applies fn to a copy of the session's dashboard and keeps the copy
// when fn succeeds and the result is valid.
func (s *DashboardStore) Update(
	ctx context.Context,
	sessionID string,
	fn func(d *dashboard.Dashboard) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(ctx, sessionID)
	if err != nil {
		return err
	}

	draft := sess.dashboard.Clone()
	if err = fn(draft); err != nil {
		return err
	}
	if err = draft.Validate(); err != nil {
		return err
	}

	sess.dashboard = draft
	return nil
}

// Reset replaces the session's dashboard with a fresh seed.
func (s *DashboardStore) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("session id")
	}

	d, err := s.seed.Seed(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(sessionID, d)
	return nil
}

// ResetAll drops every session. Each one is seeded again on its next request.
func (s *DashboardStore) ResetAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.sessions)
	return nil
}

// EvictIdle forgets the sessions last used before cutoff and reports how many
// were dropped. An evicted session is seeded again if it comes back.
func (s *DashboardStore) EvictIdle(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted, nil
}

// Len reports the number of live sessions.
func (s *DashboardStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// get must be called with mu held.
func (s *DashboardStore) get(ctx context.Context, sessionID string) (*session, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("session id")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = s.now()
		return sess, nil
	}

	d, err := s.seed.Seed(ctx)
	if err != nil {
		return nil, err
	}
	return s.put(sessionID, d), nil
}

// put must be called with mu held.
func (s *DashboardStore) put(sessionID string, d *dashboard.Dashboard) *session {
	if _, ok := s.sessions[sessionID]; !ok && len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}
	sess := &session{dashboard: d, lastSeen: s.now()}
	s.sessions[sessionID] = sess
	return sess
}

func (s *DashboardStore) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
