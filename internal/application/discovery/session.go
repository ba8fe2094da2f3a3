package discovery

import (
	"context"
	"sync"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"go.uber.org/zap"
)

// SessionState is the aggregation state machine
type SessionState string

const (
	StateEmpty     SessionState = "empty"
	StateLoading   SessionState = "loading"
	StatePartial   SessionState = "partial"
	StateExhausted SessionState = "exhausted"
	StateFailed    SessionState = "failed"
)

// Session aggregates successive pages for one snapshot into a running,
// duplicate-free result list. Any change to query, location, or filter
// bumps the snapshot token; a fetch that resolves under an old token is
// discarded without touching the list.
//
// The session admits at most one in-flight fetch and requests pages
// sequentially, so pages can never be applied out of order.
type Session struct {
	mu     sync.Mutex
	engine *Engine
	logger *zap.Logger

	snapshot discovery.Snapshot
	token    uint64
	state    SessionState
	page     discovery.PageState
	results  []discovery.RankedCandidate
	seen     map[string]struct{}
	lastErr  error
}

// NewSession creates an empty session over the given engine
func NewSession(engine *Engine, logger *zap.Logger) *Session {
	return &Session{
		engine: engine,
		logger: logger,
		state:  StateEmpty,
		seen:   make(map[string]struct{}),
	}
}

// SetQuery replaces the query text, resetting the session if it changed
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Query == query {
		return
	}
	s.snapshot.Query = query
	s.resetLocked()
}

// SetLocation replaces the origin location, resetting the session if it changed
func (s *Session) SetLocation(loc discovery.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Location == loc {
		return
	}
	s.snapshot.Location = loc
	s.resetLocked()
}

// SetFilter replaces the travel filter, resetting the session if it changed
func (s *Session) SetFilter(filter discovery.TravelFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot.Filter == filter {
		return
	}
	s.snapshot.Filter = filter
	s.resetLocked()
}

// Reset discards all loaded pages and invalidates in-flight fetches
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// resetLocked starts a new snapshot generation. In-flight fetches keep
// running but their results fail the token check on arrival.
func (s *Session) resetLocked() {
	s.token++
	s.state = StateEmpty
	s.page.Reset()
	s.results = nil
	s.seen = make(map[string]struct{})
	s.lastErr = nil
}

// Snapshot returns the current snapshot
func (s *Session) Snapshot() discovery.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Token returns the current snapshot token. Trigger signals computed
// against an older token must be ignored.
func (s *Session) Token() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current aggregation state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PageState returns a copy of the pagination progress
func (s *Session) PageState() discovery.PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Err returns the error from the most recent failed fetch, if any
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Results returns a copy of the aggregated, ordered result list
func (s *Session) Results() []discovery.RankedCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]discovery.RankedCandidate, len(s.results))
	copy(out, s.results)
	return out
}

// LoadNextPage fetches and applies the next page for the current
// snapshot. It is a no-op while a fetch is in flight or once the list is
// exhausted; after a failure it retries the same page. The returned error
// is the fetch failure, already recorded on the session.
func (s *Session) LoadNextPage(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateLoading || s.page.Exhausted {
		s.mu.Unlock()
		return nil
	}
	token := s.token
	snap := s.snapshot
	pageIdx := s.page.Page
	s.state = StateLoading
	s.lastErr = nil
	s.mu.Unlock()

	result, err := s.engine.FetchPage(ctx, snap, pageIdx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		// stale snapshot: the result must not reach the list
		s.logger.Debug("discarding stale page",
			zap.Int("page", pageIdx),
			zap.String("query", snap.Query),
		)
		return nil
	}

	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}

	for i := range result.Ranked {
		key := result.Ranked[i].Candidate.Key
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		s.results = append(s.results, result.Ranked[i])
	}

	s.page.Apply(result.PageSize, result.Fetched, result.Total)
	if s.page.Exhausted {
		s.state = StateExhausted
	} else {
		s.state = StatePartial
	}
	return nil
}
