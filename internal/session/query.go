package session

import (
	"slices"

	"github.com/billie-coop/skillrack/internal/api"
)

// Branch is a department filter for the performance ranking.
type Branch string

// Overall ranks every department together.
const Overall Branch = "OVERALL"

// Branches lists the filters offered to the operator, OVERALL first.
var Branches = []Branch{
	Overall,
	"CSE", "ECE", "EEE", "MECH", "IT", "AIDS", "AIML",
	"CIVIL", "MCT", "BIOMED", "CSBS", "ACT", "VLSI",
}

// Top-N bounds for the performance ranking.
const (
	MinTopN     = 10
	MaxTopN     = 500
	TopNStep    = 10
	DefaultTopN = 50
)

// PerformanceQuery is the pending input for the next performance dispatch.
type PerformanceQuery struct {
	Branch Branch
	TopN   int
}

// DefaultQuery returns {OVERALL, 50}.
func DefaultQuery() PerformanceQuery {
	return PerformanceQuery{Branch: Overall, TopN: DefaultTopN}
}

func (q PerformanceQuery) params() api.PerformanceParams {
	return api.PerformanceParams{Branch: string(q.Branch), TopN: q.TopN}
}

// ValidBranch reports whether b is one of Branches.
func ValidBranch(b Branch) bool {
	return slices.Contains(Branches, b)
}

// ClampTopN snaps n to the nearest step and keeps it within bounds.
func ClampTopN(n int) int {
	n = ((n + TopNStep/2) / TopNStep) * TopNStep
	return max(MinTopN, min(MaxTopN, n))
}

// SetBranch changes the pending branch filter. Unknown branches are refused.
func (s *Session) SetBranch(b Branch) bool {
	if !ValidBranch(b) {
		return false
	}
	s.state.Query.Branch = b
	return true
}

// CycleBranch moves the branch filter by delta positions, wrapping around.
func (s *Session) CycleBranch(delta int) Branch {
	i := slices.Index(Branches, s.state.Query.Branch)
	if i < 0 {
		i = 0
	}
	n := len(Branches)
	i = ((i+delta)%n + n) % n
	s.state.Query.Branch = Branches[i]
	return s.state.Query.Branch
}

// SetTopN changes the pending top-N, snapped and clamped.
func (s *Session) SetTopN(n int) int {
	s.state.Query.TopN = ClampTopN(n)
	return s.state.Query.TopN
}

// StepTopN moves top-N by delta steps.
func (s *Session) StepTopN(delta int) int {
	return s.SetTopN(s.state.Query.TopN + delta*TopNStep)
}
