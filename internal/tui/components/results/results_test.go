package results

import (
	"strings"
	"testing"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/billie-coop/skillrack/internal/session"
	"github.com/stretchr/testify/assert"
)

func generate(r session.Result) session.State {
	return session.State{Admitted: true, Tab: session.TabGenerate, Result: r, Query: session.DefaultQuery()}
}

func TestRenderPlaceholder(t *testing.T) {
	out := Render(generate(session.Empty{}), 80)
	assert.Contains(t, out, PlaceholderText)
	assert.NotContains(t, out, "download")
}

func TestRenderPerformanceProgress(t *testing.T) {
	st := generate(session.Empty{})
	st.Request = session.RequestState{InFlight: true, Op: session.OpPerformance}

	out := Render(st, 80)
	assert.Contains(t, out, ProgressText)
	assert.NotContains(t, out, PlaceholderText)
}

func TestRenderProgressKeepsVisibleRanking(t *testing.T) {
	st := generate(session.PerformanceRanking{
		Query: session.PerformanceQuery{Branch: "IT", TopN: 10},
		Rows:  []api.PerformerRow{{Name: "Asha", SolvedCount: 9}},
	})
	st.Request = session.RequestState{InFlight: true, Op: session.OpPerformance}

	out := Render(st, 80)
	assert.NotContains(t, out, ProgressText)
	assert.Contains(t, out, "Asha")
}

func TestRenderDaily(t *testing.T) {
	out := Render(generate(session.DailyReports{Reports: []api.DailyReport{{
		Date:      "2025-01-06",
		YearsText: "II & III Years",
		Rows: []api.BranchRow{
			{Branch: "CSE", Year: "II", Registered: 120, Appeared: 101},
			{Branch: "CSE TOTAL", Registered: 120, Appeared: 101},
		},
	}}}), 120)

	assert.Contains(t, out, "2025-01-06")
	assert.Contains(t, out, "II & III Years")
	assert.Contains(t, out, "CSE TOTAL")
	assert.Contains(t, out, "101")
	assert.Contains(t, out, "download daily spreadsheet")
}

func TestRenderWeeklyRanksByPosition(t *testing.T) {
	out := Render(generate(session.WeeklyLeaderboard{Rows: []api.LeaderboardRow{
		{Name: "Ravi", TotalSolved: 3},
		{Name: "Asha", TotalSolved: 30},
	}}), 120)

	assert.Contains(t, out, "Weekly Leaderboard")
	assert.Less(t, strings.Index(out, "Ravi"), strings.Index(out, "Asha"))
	assert.Contains(t, out, "download weekly spreadsheet")
}

func TestRenderPerformance(t *testing.T) {
	out := Render(generate(session.PerformanceRanking{
		Query: session.PerformanceQuery{Branch: "CSE", TopN: 50},
		Rows: []api.PerformerRow{
			{RegNo: "71772", Name: "Asha", SolvedCount: 14},
			{Name: "Ravi", SolvedCount: 12},
		},
	}), 120)

	assert.Contains(t, out, "Top 50 Performers")
	assert.Contains(t, out, "CSE Rankings")
	assert.Contains(t, out, "71772")
	assert.Contains(t, out, api.NotAvailable)
	assert.Contains(t, out, "download performance spreadsheet")
}

func TestRenderNoPerformers(t *testing.T) {
	out := Render(generate(session.PerformanceRanking{
		Query: session.PerformanceQuery{Branch: "MECH", TopN: 10},
		Rows:  []api.PerformerRow{},
	}), 80)

	assert.Contains(t, out, NoPerformersText)
	assert.Contains(t, out, "MECH Rankings")
}

func TestRenderLastError(t *testing.T) {
	st := generate(session.Empty{})
	st.Request.LastError = "Invalid file format"

	assert.Contains(t, Render(st, 80), "Invalid file format")
}

func TestModelResetsScrollOnNewResult(t *testing.T) {
	m := New()
	m.SetSize(80, 5)
	m.SetState(generate(session.Empty{}))
	assert.Contains(t, m.View(), PlaceholderText)

	m.SetState(generate(session.WeeklyLeaderboard{Rows: []api.LeaderboardRow{{Name: "Asha"}}}))
	assert.Contains(t, m.View(), "Weekly Leaderboard")
}
