package session

import (
	"context"
	"errors"
	"testing"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSecret(t *testing.T) {
	fc := &fakeClient{history: []api.HistoryEntry{{ID: 1, AnalysisDate: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)

	adm, req := s.SubmitSecret("CIT")
	assert.Equal(t, Denied, adm)
	assert.Nil(t, req)
	assert.False(t, s.Admitted())

	adm, req = s.SubmitSecret("cit")
	assert.Equal(t, Admitted, adm)
	require.NotNil(t, req)
	assert.True(t, s.Admitted())
	assert.False(t, s.Busy(), "history refresh must not occupy the request slot")

	run(t, s, req)
	assert.Len(t, s.State().History, 1)
}

func TestAdmissionHistoryFailureIsSilent(t *testing.T) {
	fc := &fakeClient{histErr: errors.New("connection refused")}
	s, _ := newTestSession(t, fc)

	_, req := s.SubmitSecret("cit")
	out := run(t, s, req)
	assert.Empty(t, out.Notice)
	assert.True(t, s.Admitted())
	assert.Empty(t, s.State().History)
}

func TestLogoutResetsEverything(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{Date: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)

	s.SetFiles(someFiles())
	s.SetBranch("CSE")
	s.SetTab(TabHistory)
	run(t, s, s.RunDaily())

	s.Logout()
	st := s.State()
	assert.False(t, st.Admitted)
	assert.Empty(t, st.Files)
	assert.Equal(t, Empty{}, st.Result)
	assert.Equal(t, DefaultQuery(), st.Query)
	assert.Equal(t, TabGenerate, st.Tab)
	assert.Empty(t, st.History)
}

func TestDispatchGuards(t *testing.T) {
	fc := &fakeClient{}
	s, _ := newTestSession(t, fc)

	s.SetFiles(someFiles())
	assert.Nil(t, s.RunDaily(), "not admitted")

	admit(t, s)
	s.ClearFiles()
	assert.Nil(t, s.RunDaily(), "no files")
	assert.Nil(t, s.RunWeekly(), "no files")
	assert.Nil(t, s.RunPerformance(), "no files")
	assert.False(t, s.Busy())
}

func TestOnlyOneRequestInFlight(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{Date: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	first := s.RunDaily()
	require.NotNil(t, first)
	assert.True(t, s.Busy())
	assert.Equal(t, OpDaily, s.State().Request.Op)

	assert.Nil(t, s.RunDaily())
	assert.Nil(t, s.RunWeekly())
	assert.Nil(t, s.RunPerformance())

	run(t, s, first)
	assert.False(t, s.Busy())
	assert.NotNil(t, s.RunWeekly())
}

func TestDailySuccess(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{
		Date:      "2025-01-06",
		YearsText: "II, III",
		Rows: []api.BranchRow{
			{Branch: "CSE", Year: "II", Registered: 100},
			{Branch: "OVERALL TOTAL", Registered: 100},
		},
	}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	out := run(t, s, s.RunDaily())
	assert.Empty(t, out.Notice)
	assert.NotNil(t, out.Follow, "daily success refreshes history")
	assert.Equal(t, someFiles(), fc.lastFiles)

	st := s.State()
	assert.False(t, st.Request.InFlight)
	reports, ok := st.Result.(DailyReports)
	require.True(t, ok)
	require.Len(t, reports.Reports, 1)

	totals := 0
	for _, row := range reports.Reports[0].Rows {
		if row.IsTotal() {
			totals++
		}
	}
	assert.Equal(t, 1, totals)

	mode, ok := st.DownloadMode()
	assert.True(t, ok)
	assert.Equal(t, api.ModeDaily, mode)
}

func TestWeeklyReplacesDaily(t *testing.T) {
	fc := &fakeClient{
		daily:  []api.DailyReport{{Date: "2025-01-06"}},
		weekly: []api.LeaderboardRow{{Name: "Asha"}, {Name: "Ravi"}},
	}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	run(t, s, s.RunDaily())
	out := run(t, s, s.RunWeekly())
	assert.NotNil(t, out.Follow)

	st := s.State()
	_, daily := st.Result.(DailyReports)
	assert.False(t, daily)
	board, ok := st.Result.(WeeklyLeaderboard)
	require.True(t, ok)
	assert.Equal(t, 2, board.Len())
}

func TestPerformanceEmptyRanking(t *testing.T) {
	fc := &fakeClient{}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())
	require.True(t, s.SetBranch("CSE"))
	s.SetTopN(50)

	req := s.RunPerformance()
	require.NotNil(t, req)
	st := s.State()
	assert.True(t, st.PerformanceLoading())
	assert.True(t, st.ShowPerformanceProgress())
	assert.False(t, st.ShowPlaceholder())
	assert.False(t, st.NoPerformersFound())

	out := run(t, s, req)
	assert.Nil(t, out.Follow, "performance does not refresh history")
	assert.Equal(t, api.PerformanceParams{Branch: "CSE", TopN: 50}, fc.lastParams)

	st = s.State()
	ranking, ok := st.Result.(PerformanceRanking)
	require.True(t, ok)
	assert.Empty(t, ranking.Rows)
	assert.Equal(t, PerformanceQuery{Branch: "CSE", TopN: 50}, ranking.Query)
	assert.True(t, st.NoPerformersFound())
	assert.False(t, st.ShowPerformanceProgress())
}

func TestQueryIsCapturedAtDispatch(t *testing.T) {
	fc := &fakeClient{ranking: []api.PerformerRow{{Name: "Asha"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())
	s.SetBranch("ECE")

	req := s.RunPerformance()
	s.SetBranch("IT")
	s.SetTopN(200)
	s.ClearFiles()
	run(t, s, req)

	ranking := s.State().Result.(PerformanceRanking)
	assert.Equal(t, Branch("ECE"), ranking.Query.Branch)
	assert.Equal(t, "ECE", fc.lastParams.Branch)
	assert.Equal(t, someFiles(), fc.lastFiles)
}

func TestFailureKeepsPreviousResult(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{Date: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())
	run(t, s, s.RunDaily())
	before := s.State().Result

	fc.err = &api.ServiceError{Status: 400, Detail: "bad file"}
	req := s.RunWeekly()
	assert.True(t, s.Busy())
	out := run(t, s, req)

	st := s.State()
	assert.False(t, st.Request.InFlight)
	assert.Equal(t, "bad file", st.Request.LastError)
	assert.Contains(t, out.Notice, "bad file")
	assert.Equal(t, "Weekly analysis failed: bad file", out.Notice)
	assert.Nil(t, out.Follow)
	assert.Equal(t, before, st.Result)
}

func TestFailureWithoutDetailUsesGenericMessage(t *testing.T) {
	fc := &fakeClient{err: errors.New("dial tcp: connection refused")}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	out := run(t, s, s.RunPerformance())
	assert.Equal(t, "Performance analysis failed", out.Notice)
	assert.Equal(t, "Performance analysis failed", s.State().Request.LastError)
	assert.Equal(t, Empty{}, s.State().Result)

	fc.err = nil
	s.RunDaily()
	assert.Empty(t, s.State().Request.LastError, "a new attempt clears the last error")
}

func TestPanickingRequestReleasesSlot(t *testing.T) {
	fc := &fakeClient{panicNow: true}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	out := run(t, s, s.RunDaily())
	assert.False(t, s.Busy())
	assert.Equal(t, "Upload failed", out.Notice)
}

func TestLogoutDiscardsLateCompletion(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{Date: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	req := s.RunDaily()
	require.NotNil(t, req)
	s.Logout()

	c := req(context.Background())
	out := s.Apply(c)
	assert.Equal(t, Outcome{}, out)
	assert.False(t, s.Admitted())
	assert.Equal(t, Empty{}, s.State().Result)
	assert.False(t, s.Busy())

	// A fresh admission must not pick up the old response either.
	admit(t, s)
	s.Apply(c)
	assert.Equal(t, Empty{}, s.State().Result)
	assert.False(t, s.Busy())
}

func TestExactlyOneVariantActive(t *testing.T) {
	fc := &fakeClient{
		daily:   []api.DailyReport{{Date: "d"}},
		weekly:  []api.LeaderboardRow{{Name: "w"}},
		ranking: []api.PerformerRow{{Name: "p"}},
	}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	steps := []struct {
		name string
		do   func()
		want Variant
	}{
		{"daily", func() { run(t, s, s.RunDaily()) }, VariantDaily},
		{"performance", func() { run(t, s, s.RunPerformance()) }, VariantPerformance},
		{"weekly", func() { run(t, s, s.RunWeekly()) }, VariantWeekly},
		{"reset", func() { s.ResetAll() }, VariantEmpty},
		{"daily again", func() { run(t, s, s.RunDaily()) }, VariantDaily},
		{"tab switch", func() { s.SetTab(TabHistory) }, VariantDaily},
	}
	for _, step := range steps {
		step.do()
		r := s.State().Result
		require.NotNil(t, r, step.name)
		assert.Equal(t, step.want, r.Variant(), step.name)
	}
}

func TestRankIsPositional(t *testing.T) {
	rows := []api.PerformerRow{{Name: "c", SolvedCount: 1}, {Name: "a", SolvedCount: 9}, {Name: "b", SolvedCount: 5}}
	ranked := Rank(rows)
	require.Len(t, ranked, 3)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, rows[i], r.Row)
	}
	assert.Empty(t, Rank[api.LeaderboardRow](nil))
}

func TestPlaceholder(t *testing.T) {
	fc := &fakeClient{}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	assert.True(t, s.State().ShowPlaceholder())

	s.SetTab(TabHistory)
	assert.False(t, s.State().ShowPlaceholder())
	s.SetTab(TabGenerate)

	s.SetFiles(someFiles())
	req := s.RunDaily()
	assert.True(t, s.State().ShowPlaceholder(), "daily in flight keeps the placeholder")
	run(t, s, req)
	assert.False(t, s.State().ShowPlaceholder())
}

func TestTabSwitchPreservesState(t *testing.T) {
	fc := &fakeClient{weekly: []api.LeaderboardRow{{Name: "Asha"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())
	run(t, s, s.RunWeekly())

	s.SetTab(TabHistory)
	s.SetTab(TabGenerate)
	st := s.State()
	assert.Equal(t, someFiles(), st.Files)
	assert.Equal(t, VariantWeekly, st.Result.Variant())
}

func TestReset(t *testing.T) {
	fc := &fakeClient{weekly: []api.LeaderboardRow{{Name: "Asha"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())
	run(t, s, s.RunWeekly())

	assert.True(t, s.Reset())
	st := s.State()
	assert.Empty(t, st.Files)
	assert.Equal(t, Empty{}, st.Result)
	assert.True(t, st.Admitted)
}

func TestResetRefusedWhileInFlight(t *testing.T) {
	fc := &fakeClient{daily: []api.DailyReport{{Date: "2025-01-06"}}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	req := s.RunDaily()
	require.NotNil(t, req)
	assert.False(t, s.Reset())
	assert.Equal(t, someFiles(), s.State().Files)

	s.Apply(req(context.Background()))
	assert.Equal(t, VariantDaily, s.State().Result.Variant())
	assert.True(t, s.Reset())
	assert.Equal(t, Empty{}, s.State().Result)
}

func TestDailyFailureNamesTheUpload(t *testing.T) {
	fc := &fakeClient{err: &api.ServiceError{Status: 400, Detail: "bad file"}}
	s, _ := newTestSession(t, fc)
	admit(t, s)
	s.SetFiles(someFiles())

	out := run(t, s, s.RunDaily())
	assert.Equal(t, "Upload failed: bad file", out.Notice)
	assert.Equal(t, "bad file", s.State().Request.LastError)
}

func TestDownload(t *testing.T) {
	s, opener := newTestSession(t, &fakeClient{})

	assert.Equal(t, Outcome{}, s.Download(api.ModeWeekly), "not admitted")
	assert.Empty(t, opener.urls)

	admit(t, s)
	before := s.State()
	out := s.Download(api.ModeWeekly)
	assert.Empty(t, out.Notice)
	assert.Equal(t, []string{"http://svc/download/weekly"}, opener.urls)
	assert.Equal(t, before, s.State())

	opener.err = errors.New("no browser")
	out = s.Download(api.ModePerformance)
	assert.Equal(t, "Download performance failed", out.Notice)

	opener.err = nil
	out = s.Download(api.Mode("monthly"))
	assert.Equal(t, "Download monthly failed", out.Notice)
}
