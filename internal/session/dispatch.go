package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/billie-coop/skillrack/internal/api"
)

// Operation identifies a user-triggered request.
type Operation int

const (
	OpNone Operation = iota
	OpDaily
	OpWeekly
	OpPerformance
	OpHistoryItem
)

func (op Operation) String() string {
	switch op {
	case OpDaily:
		return "daily analysis"
	case OpWeekly:
		return "weekly analysis"
	case OpPerformance:
		return "performance analysis"
	case OpHistoryItem:
		return "history report"
	default:
		return "none"
	}
}

// failure is the operator-facing message for a failed attempt when the
// service gave no detail.
func (op Operation) failure() string {
	switch op {
	case OpDaily:
		return "Upload failed"
	case OpWeekly:
		return "Weekly analysis failed"
	case OpPerformance:
		return "Performance analysis failed"
	case OpHistoryItem:
		return "Failed to load report"
	default:
		return "Request failed"
	}
}

// RequestState tracks the single user-triggered request slot.
type RequestState struct {
	InFlight bool
	Op       Operation
	// LastError is the message of the most recent failure. It is cleared
	// when the next request starts.
	LastError string
}

var errPanicked = errors.New("request panicked")

// RunDaily dispatches a daily analysis of the current selection. It returns
// nil when the session is not admitted, busy, or has no files.
func (s *Session) RunDaily() Request {
	return s.dispatch(OpDaily)
}

// RunWeekly dispatches a weekly leaderboard analysis of the current selection.
func (s *Session) RunWeekly() Request {
	return s.dispatch(OpWeekly)
}

// RunPerformance dispatches a performance ranking with the pending query.
func (s *Session) RunPerformance() Request {
	return s.dispatch(OpPerformance)
}

func (s *Session) dispatch(op Operation) Request {
	if !s.state.Admitted || s.state.Request.InFlight || len(s.state.Files) == 0 {
		return nil
	}

	files := slices.Clone(s.state.Files)
	query := s.state.Query
	s.begin(op)

	s.log.Info().
		Str("op", op.String()).
		Int("files", len(files)).
		Msg("dispatching")

	client := s.client
	t := ticket{epoch: s.epoch}
	return func(ctx context.Context) (c Completion) {
		d := dispatched{ticket: t, op: op, query: query, started: time.Now()}
		defer func() {
			if r := recover(); r != nil {
				d.err = fmt.Errorf("%w: %v", errPanicked, r)
				c = d
			}
		}()

		switch op {
		case OpDaily:
			d.daily, d.err = client.Daily(ctx, files)
		case OpWeekly:
			d.weekly, d.err = client.Weekly(ctx, files)
		case OpPerformance:
			d.ranking, d.err = client.Performance(ctx, files, query.params())
		}
		return d
	}
}

func (s *Session) begin(op Operation) {
	s.state.Request = RequestState{InFlight: true, Op: op}
}

func (s *Session) release() {
	s.state.Request.InFlight = false
	s.state.Request.Op = OpNone
}

// fail records a failed attempt. The active result is left untouched.
func (s *Session) fail(op Operation, err error) Outcome {
	msg := op.failure()
	notice := msg
	if detail, ok := api.Detail(err); ok {
		msg = detail
		notice = fmt.Sprintf("%s: %s", op.failure(), detail)
	}
	s.state.Request.LastError = msg

	s.log.Error().Err(err).Str("op", op.String()).Msg("request failed")
	return Outcome{Notice: notice}
}

type dispatched struct {
	ticket
	op      Operation
	query   PerformanceQuery
	started time.Time

	daily   []api.DailyReport
	weekly  []api.LeaderboardRow
	ranking []api.PerformerRow
	err     error
}

func (d dispatched) apply(s *Session) Outcome {
	defer s.release()

	if d.err != nil {
		return s.fail(d.op, d.err)
	}

	var out Outcome
	switch d.op {
	case OpDaily:
		s.activate(DailyReports{Reports: d.daily})
		out.Status = fmt.Sprintf("Daily analysis ready: %d report(s)", len(d.daily))
		out.Follow = s.RefreshHistory()
	case OpWeekly:
		s.activate(WeeklyLeaderboard{Rows: d.weekly})
		out.Status = fmt.Sprintf("Weekly leaderboard ready: %d student(s)", len(d.weekly))
		out.Follow = s.RefreshHistory()
	case OpPerformance:
		rows := d.ranking
		if rows == nil {
			rows = []api.PerformerRow{}
		}
		s.activate(PerformanceRanking{Rows: rows, Query: d.query})
		out.Status = fmt.Sprintf("%s: %d performer(s)", d.query.Branch, len(rows))
	}

	s.log.Info().
		Str("op", d.op.String()).
		Dur("elapsed", time.Since(d.started)).
		Msg("request completed")
	return out
}
