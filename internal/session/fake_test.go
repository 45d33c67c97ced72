package session

import (
	"context"
	"testing"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/rs/zerolog"
)

// fakeClient answers from canned fields and records what it was asked.
type fakeClient struct {
	daily    []api.DailyReport
	weekly   []api.LeaderboardRow
	ranking  []api.PerformerRow
	history  []api.HistoryEntry
	reports  map[int64][]api.BranchRow
	err      error
	histErr  error
	panicNow bool

	calls      []string
	lastFiles  []api.File
	lastParams api.PerformanceParams
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Daily(_ context.Context, files []api.File) ([]api.DailyReport, error) {
	f.calls = append(f.calls, "daily")
	f.lastFiles = files
	if f.panicNow {
		panic("boom")
	}
	return f.daily, f.err
}

func (f *fakeClient) Weekly(_ context.Context, files []api.File) ([]api.LeaderboardRow, error) {
	f.calls = append(f.calls, "weekly")
	f.lastFiles = files
	return f.weekly, f.err
}

func (f *fakeClient) Performance(_ context.Context, files []api.File, p api.PerformanceParams) ([]api.PerformerRow, error) {
	f.calls = append(f.calls, "performance")
	f.lastFiles = files
	f.lastParams = p
	return f.ranking, f.err
}

func (f *fakeClient) History(context.Context) ([]api.HistoryEntry, error) {
	f.calls = append(f.calls, "history")
	return f.history, f.histErr
}

func (f *fakeClient) HistoryReport(_ context.Context, id int64) ([]api.BranchRow, error) {
	f.calls = append(f.calls, "history-report")
	if f.err != nil {
		return nil, f.err
	}
	return f.reports[id], nil
}

func (f *fakeClient) DownloadURL(mode api.Mode) (string, error) {
	if !mode.Valid() {
		return "", api.ErrUnknownMode
	}
	return "http://svc/download/" + string(mode), nil
}

type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func newTestSession(t *testing.T, client *fakeClient) (*Session, *recordingOpener) {
	t.Helper()
	opener := &recordingOpener{}
	return New(client, opener, zerolog.Nop()), opener
}

// admit passes the gate and settles the initial history refresh.
func admit(t *testing.T, s *Session) {
	t.Helper()
	adm, req := s.SubmitSecret("cit")
	if adm != Admitted {
		t.Fatalf("expected admission, got %v", adm)
	}
	if req != nil {
		s.Apply(req(context.Background()))
	}
}

// run executes a request synchronously and applies its completion.
func run(t *testing.T, s *Session, req Request) Outcome {
	t.Helper()
	if req == nil {
		t.Fatal("expected a request, got nil")
	}
	return s.Apply(req(context.Background()))
}

func someFiles() []api.File {
	return []api.File{{Name: "day1.csv", Path: "/tmp/day1.csv"}, {Name: "day2.xlsx", Path: "/tmp/day2.xlsx"}}
}

var (
	_ Completion = dispatched{}
	_ Completion = historyListed{}
	_ Completion = historyLoaded{}
)
