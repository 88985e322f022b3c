// Package session implements the two phase lifecycle of a dashboard session. Opening a session
// performs the single upstream fetch and builds the enriched table, after which every interaction
// only re-runs the selection over that table.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/leighmacdonald/fpl-form/internal/tracker"
)

var ErrOpen = errors.New("failed to open session")

// Session holds one visitors copy of the enriched data.
type Session struct {
	id    string
	table tracker.Table
}

// Open performs the initialisation phase. A failed fetch produces no session.
func Open(ctx context.Context, fetcher fpl.Fetcher) (*Session, error) {
	data, errFetch := fetcher.Fetch(ctx)
	if errFetch != nil {
		return nil, errors.Join(errFetch, ErrOpen)
	}

	return &Session{
		id:    uuid.NewString(),
		table: tracker.NewTable(data),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

// Clubs returns the options for the club control, sorted.
func (s *Session) Clubs() []string {
	return s.table.Clubs()
}

// Players returns the total number of loaded players.
func (s *Session) Players() int {
	return s.table.Len()
}

// Select runs the interactive phase for the given filter.
func (s *Session) Select(filter tracker.Filter) []tracker.DisplayRow {
	return s.table.Select(filter)
}

type entry struct {
	session  *Session
	lastUsed time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source used for idle expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry tracks the open sessions of all visitors. Sessions never share data.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	fetcher  fpl.Fetcher
	ttl      time.Duration
	now      func() time.Time
}

func NewRegistry(fetcher fpl.Fetcher, ttl time.Duration, opts ...Option) *Registry {
	registry := &Registry{
		sessions: map[string]*entry{},
		fetcher:  fetcher,
		ttl:      ttl,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

// Get returns the open session for id and marks it as used.
func (r *Registry) Get(sessionID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, found := r.sessions[sessionID]
	if !found {
		return nil, false
	}

	now := r.now()
	if now.Sub(current.lastUsed) > r.ttl {
		delete(r.sessions, sessionID)

		return nil, false
	}

	current.lastUsed = now

	return current.session, true
}

// Start opens and registers a new session. Idle sessions are expired at the same time.
func (r *Registry) Start(ctx context.Context) (*Session, error) {
	sess, errOpen := Open(ctx, r.fetcher)
	if errOpen != nil {
		return nil, errOpen
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for sessionID, current := range r.sessions {
		if now.Sub(current.lastUsed) > r.ttl {
			delete(r.sessions, sessionID)
			slog.Debug("Expired idle session", slog.String("session", sessionID))
		}
	}

	r.sessions[sess.id] = &entry{session: sess, lastUsed: now}
	slog.Info("Opened session", slog.String("session", sess.id), slog.Int("players", sess.Players()),
		slog.Int("open", len(r.sessions)))

	return sess, nil
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
