// Package session is the analysis-session orchestrator behind the dashboard.
//
// A Session owns every piece of mutable dashboard state: admission, the file
// selection, the active result view, the pending performance query, the
// in-flight request and the history cache. Nothing else holds copies that
// can drift.
//
// Threading model:
//
// All Session methods are called from a single goroutine (the UI loop).
// Operations that need the network do their bookkeeping synchronously and
// hand back a Request. The caller runs the Request wherever it wants and
// feeds the returned Completion into Apply, again on the UI goroutine:
//
//	req := s.RunDaily()          // guard, mark in flight
//	c := req(ctx)                // network, any goroutine
//	out := s.Apply(c)            // reconcile, clear in flight
//
// A Request never touches Session state, so the only interleaving points
// are the calls to Apply.
package session

import (
	"context"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/rs/zerolog"
)

// Tab is the top-level dashboard tab.
type Tab int

const (
	TabGenerate Tab = iota
	TabHistory
)

func (t Tab) String() string {
	if t == TabHistory {
		return "history"
	}
	return "generate"
}

// State is a snapshot of everything the renderer needs.
type State struct {
	Admitted bool
	Tab      Tab
	Files    []api.File
	Result   Result
	Query    PerformanceQuery
	Request  RequestState
	History  []api.HistoryEntry
}

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// Request performs the network half of an operation. It may run on any
// goroutine and never reads or writes Session state.
type Request func(ctx context.Context) Completion

// Completion is what a Request produces. Hand it to Session.Apply.
type Completion interface {
	stamp() ticket
	apply(s *Session) Outcome
}

// ticket stamps a completion with the session epoch it was issued under.
type ticket struct {
	epoch uint64
}

func (t ticket) stamp() ticket { return t }

// Outcome tells the caller what to surface after an operation.
type Outcome struct {
	// Notice is a blocking message the operator must see once.
	Notice string
	// Status is a transient informational line.
	Status string
	// Follow is background work to start, such as a history refresh.
	Follow Request
}

// Session is the orchestrator. The zero value is not usable; call New.
type Session struct {
	client api.Client
	opener Opener
	log    zerolog.Logger

	state State

	// epoch changes on every admission and logout. Completions issued under
	// an older epoch are discarded.
	epoch uint64

	historyIssued  uint64
	historyApplied uint64
}

// New creates a session in the not-admitted state.
func New(client api.Client, opener Opener, log zerolog.Logger) *Session {
	return &Session{
		client: client,
		opener: opener,
		log:    log.With().Str("component", "session").Logger(),
		state:  freshState(),
	}
}

func freshState() State {
	return State{
		Tab:    TabGenerate,
		Result: Empty{},
		Query:  DefaultQuery(),
	}
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state
}

// Admitted reports whether the gate has been passed.
func (s *Session) Admitted() bool {
	return s.state.Admitted
}

// Busy reports whether a user-triggered request is in flight. While busy,
// every dispatch is refused.
func (s *Session) Busy() bool {
	return s.state.Request.InFlight
}

// Apply reconciles a completed request into the session. Completions from a
// previous admission, or arriving after logout, are ignored.
func (s *Session) Apply(c Completion) Outcome {
	if c == nil {
		return Outcome{}
	}
	if t := c.stamp(); t.epoch != s.epoch || !s.state.Admitted {
		s.log.Debug().
			Uint64("completion_epoch", t.epoch).
			Uint64("epoch", s.epoch).
			Msg("discarding completion from a closed session")
		return Outcome{}
	}
	return c.apply(s)
}
