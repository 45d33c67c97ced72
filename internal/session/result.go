package session

import "github.com/billie-coop/skillrack/internal/api"

// HistoricalYearsText labels a report re-hydrated from the history cache.
const HistoricalYearsText = "Historical Record"

// Variant names the arm of Result that is active.
type Variant int

const (
	VariantEmpty Variant = iota
	VariantDaily
	VariantWeekly
	VariantPerformance
)

func (v Variant) String() string {
	switch v {
	case VariantDaily:
		return "daily"
	case VariantWeekly:
		return "weekly"
	case VariantPerformance:
		return "performance"
	default:
		return "empty"
	}
}

// Result is the active result view. It is a closed union; the only
// implementations are Empty, DailyReports, WeeklyLeaderboard and
// PerformanceRanking.
type Result interface {
	Variant() Variant
	// Len is the number of top-level items: reports or ranked rows.
	Len() int
	sealed()
}

// Empty is the idle state with nothing to show.
type Empty struct{}

// DailyReports is one table per analysed date.
type DailyReports struct {
	Reports []api.DailyReport
}

// WeeklyLeaderboard is the weekly ranking in service order.
type WeeklyLeaderboard struct {
	Rows []api.LeaderboardRow
}

// PerformanceRanking is the top-performers ranking in service order, with
// the query that produced it.
type PerformanceRanking struct {
	Rows  []api.PerformerRow
	Query PerformanceQuery
}

func (Empty) Variant() Variant              { return VariantEmpty }
func (DailyReports) Variant() Variant       { return VariantDaily }
func (WeeklyLeaderboard) Variant() Variant  { return VariantWeekly }
func (PerformanceRanking) Variant() Variant { return VariantPerformance }

func (Empty) Len() int                { return 0 }
func (r DailyReports) Len() int       { return len(r.Reports) }
func (r WeeklyLeaderboard) Len() int  { return len(r.Rows) }
func (r PerformanceRanking) Len() int { return len(r.Rows) }

func (Empty) sealed()              {}
func (DailyReports) sealed()       {}
func (WeeklyLeaderboard) sealed()  {}
func (PerformanceRanking) sealed() {}

// Ranked pairs a row with its one-based display rank.
type Ranked[T any] struct {
	Rank int
	Row  T
}

// Rank numbers rows by position. It never reorders.
func Rank[T any](rows []T) []Ranked[T] {
	out := make([]Ranked[T], len(rows))
	for i, row := range rows {
		out[i] = Ranked[T]{Rank: i + 1, Row: row}
	}
	return out
}
