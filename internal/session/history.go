package session

import (
	"context"
	"fmt"
	"time"

	"github.com/billie-coop/skillrack/internal/api"
)

// RefreshHistory fetches the history list. It is background work: it does
// not occupy the request slot and its failure is only logged. Responses are
// numbered so an older list never overwrites a newer one.
func (s *Session) RefreshHistory() Request {
	if !s.state.Admitted {
		return nil
	}
	s.historyIssued++
	seq := s.historyIssued

	client := s.client
	t := ticket{epoch: s.epoch}
	return func(ctx context.Context) Completion {
		entries, err := client.History(ctx)
		return historyListed{ticket: t, seq: seq, entries: entries, err: err}
	}
}

type historyListed struct {
	ticket
	seq     uint64
	entries []api.HistoryEntry
	err     error
}

func (h historyListed) apply(s *Session) Outcome {
	if h.err != nil {
		s.log.Warn().Err(h.err).Uint64("seq", h.seq).Msg("history refresh failed")
		return Outcome{}
	}
	if h.seq < s.historyApplied {
		s.log.Debug().Uint64("seq", h.seq).Msg("dropping stale history list")
		return Outcome{}
	}
	s.historyApplied = h.seq
	s.state.History = h.entries
	if s.state.History == nil {
		s.state.History = []api.HistoryEntry{}
	}
	return Outcome{}
}

// HistoryEntry looks up a cached entry by id.
func (s *Session) HistoryEntry(id int64) (api.HistoryEntry, bool) {
	for _, e := range s.state.History {
		if e.ID == id {
			return e, true
		}
	}
	return api.HistoryEntry{}, false
}

// LoadHistoryEntry fetches a stored daily report and shows it as a single
// daily report on the generate tab. It occupies the request slot like any
// other user-triggered request. Unknown ids are refused.
func (s *Session) LoadHistoryEntry(id int64) Request {
	if !s.state.Admitted || s.state.Request.InFlight {
		return nil
	}
	entry, ok := s.HistoryEntry(id)
	if !ok {
		return nil
	}
	s.begin(OpHistoryItem)
	s.log.Info().Int64("id", id).Str("date", entry.AnalysisDate).Msg("loading history report")

	client := s.client
	t := ticket{epoch: s.epoch}
	return func(ctx context.Context) (c Completion) {
		h := historyLoaded{ticket: t, entry: entry, started: time.Now()}
		defer func() {
			if r := recover(); r != nil {
				h.err = fmt.Errorf("%w: %v", errPanicked, r)
				c = h
			}
		}()
		h.rows, h.err = client.HistoryReport(ctx, id)
		return h
	}
}

type historyLoaded struct {
	ticket
	entry   api.HistoryEntry
	started time.Time
	rows    []api.BranchRow
	err     error
}

func (h historyLoaded) apply(s *Session) Outcome {
	defer s.release()

	if h.err != nil {
		return s.fail(OpHistoryItem, h.err)
	}

	s.activate(DailyReports{Reports: []api.DailyReport{{
		Date:      h.entry.AnalysisDate,
		YearsText: HistoricalYearsText,
		Rows:      h.rows,
	}}})
	s.state.Tab = TabGenerate

	s.log.Info().
		Int64("id", h.entry.ID).
		Dur("elapsed", time.Since(h.started)).
		Msg("history report loaded")
	return Outcome{Status: fmt.Sprintf("Loaded report for %s", h.entry.AnalysisDate)}
}
