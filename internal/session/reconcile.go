package session

// activate replaces the active result. Every variant change goes through
// here, so at most one result is ever visible.
func (s *Session) activate(r Result) {
	if r == nil {
		r = Empty{}
	}
	s.log.Debug().
		Str("from", s.state.Result.Variant().String()).
		Str("to", r.Variant().String()).
		Int("items", r.Len()).
		Msg("result view changed")
	s.state.Result = r
}

// ResetAll clears the active result back to Empty.
func (s *Session) ResetAll() {
	s.activate(Empty{})
}

// SetTab switches tabs. Neither the result nor the selection is touched.
func (s *Session) SetTab(t Tab) {
	s.state.Tab = t
}

// PerformanceLoading reports whether a performance request is in flight.
func (st State) PerformanceLoading() bool {
	return st.Request.InFlight && st.Request.Op == OpPerformance
}

// ShowPlaceholder reports whether the generate tab has nothing to show and
// nothing on the way that would replace the emptiness with progress.
func (st State) ShowPlaceholder() bool {
	if st.Tab != TabGenerate || st.PerformanceLoading() {
		return false
	}
	return st.Result == nil || st.Result.Variant() == VariantEmpty
}

// ShowPerformanceProgress reports whether the analyzing message replaces
// the ranking: a performance request is running and no rows are showing.
func (st State) ShowPerformanceProgress() bool {
	if !st.PerformanceLoading() {
		return false
	}
	r, ok := st.Result.(PerformanceRanking)
	return !ok || len(r.Rows) == 0
}

// NoPerformersFound reports whether a finished performance ranking came back
// empty.
func (st State) NoPerformersFound() bool {
	r, ok := st.Result.(PerformanceRanking)
	return ok && len(r.Rows) == 0 && !st.PerformanceLoading()
}
