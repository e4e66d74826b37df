// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs search interactions against the local dataset and
// the remote source. An interaction moves through
//
//	Idle → LocalLookup → {Resolved | RemoteLookup} → {Resolved | NotFound | Errored}
//
// and ends in exactly one terminal state. Starting a new interaction
// supersedes any remote lookup still in flight: its context is cancelled
// and whatever it returns is discarded.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/bestiary/internal/resolve"
	"github.com/pdiddy/bestiary/pkg/types"
)

// DefaultTimeout bounds one remote lookup.
const DefaultTimeout = 10 * time.Second

// State is a step of one search interaction.
type State int

const (
	Idle State = iota
	LocalLookup
	RemoteLookup
	Resolved
	NotFound
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LocalLookup:
		return "local_lookup"
	case RemoteLookup:
		return "remote_lookup"
	case Resolved:
		return "resolved"
	case NotFound:
		return "not_found"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// Terminal reports whether the interaction is over.
func (s State) Terminal() bool {
	return s == Resolved || s == NotFound || s == Errored
}

// Interaction is the outcome of one Search call. Set is only meaningful in
// the Resolved state; Err only in NotFound and Errored.
type Interaction struct {
	Seq        uint64
	Query      string
	Normalized string
	State      State
	Set        resolve.ResultSet
	Err        error
	Trail      []State
}

// Stale reports whether a newer interaction overtook this one. Stale
// interactions must not replace what is on screen.
func (it Interaction) Stale() bool {
	return errors.Is(it.Err, types.ErrSuperseded)
}

func (it *Interaction) advance(s State) {
	it.State = s
	it.Trail = append(it.Trail, s)
}

// Session owns the immutable local records and the remote source, and
// hands out sequence numbers to interactions.
type Session struct {
	local    []types.LocalRecord
	src      resolve.RemoteSource
	logger   *zap.Logger
	timeout  time.Duration
	onRemote func(Notice)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTimeout bounds every remote lookup. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRemoteNotice registers fn to be told, before the call is made, that
// a query missed locally and is going online.
func WithRemoteNotice(fn func(Notice)) Option {
	return func(s *Session) { s.onRemote = fn }
}

// New returns a Session over local and src. The local slice is copied; src
// may be nil, in which case every local miss ends in a configuration error.
func New(local []types.LocalRecord, src resolve.RemoteSource, opts ...Option) *Session {
	s := &Session{
		local:    append([]types.LocalRecord(nil), local...),
		src:      src,
		logger:   zap.NewNop(),
		timeout:  DefaultTimeout,
		onRemote: func(Notice) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LocalCount returns the number of local records.
func (s *Session) LocalCount() int { return len(s.local) }

// Search runs one interaction for query. It never returns a Go error;
// failures are carried in the Interaction and turned into a Notice by the
// caller.
func (s *Session) Search(ctx context.Context, query string) Interaction {
	seq, ctx, cancel := s.begin(ctx)
	defer s.finish(seq, cancel)

	it := Interaction{Seq: seq, Query: query, Normalized: resolve.Normalize(query), State: Idle, Trail: []State{Idle}}
	log := s.logger.With(zap.Uint64("seq", seq), zap.String("query", it.Normalized))

	it.advance(LocalLookup)
	out := resolve.Resolve(query, s.local)
	if !out.NeedsRemote() {
		it.Set = out.Set
		it.advance(Resolved)
		log.Debug("resolved locally", zap.Int("results", out.Set.Len()))
		return it
	}

	it.advance(RemoteLookup)
	log.Debug("no local match, searching online")
	searching := SearchingNotice(query)
	searching.Seq = seq
	s.onRemote(searching)

	rctx, rcancel := context.WithTimeout(ctx, s.timeout)
	set, err := resolve.SearchRemote(rctx, s.src, out.Fetch.Query)
	rcancel()

	if !s.isCurrent(seq) {
		it.Err = types.ErrSuperseded
		it.advance(Errored)
		log.Debug("discarding superseded remote response")
		return it
	}

	switch {
	case err == nil:
		it.Set = set
		it.advance(Resolved)
		log.Debug("resolved online", zap.Int("results", set.Len()))
	case errors.Is(err, types.ErrNoResults):
		it.Err = err
		it.advance(NotFound)
		log.Info("not found locally or online")
	default:
		it.Err = err
		it.advance(Errored)
		log.Warn("remote lookup failed", zap.Error(err))
	}
	return it
}

// begin allocates the next sequence number and cancels the previous
// interaction's remote lookup, if any.
func (s *Session) begin(parent context.Context) (uint64, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	s.cancel = cancel
	return s.seq, ctx, cancel
}

func (s *Session) finish(seq uint64, cancel context.CancelFunc) {
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq == seq {
		s.cancel = nil
	}
}

func (s *Session) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq == seq
}
