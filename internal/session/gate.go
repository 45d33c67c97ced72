package session

// sharedSecret is the fixed access phrase. The gate keeps casual users out of
// the console; it is not authentication and offers no cryptographic guarantee.
const sharedSecret = "cit"

// Admission is the outcome of a secret check.
type Admission int

const (
	Denied Admission = iota
	Admitted
)

func (a Admission) String() string {
	if a == Admitted {
		return "admitted"
	}
	return "denied"
}

// SubmitSecret checks candidate against the shared secret. On admission it
// returns a history refresh to run in the background; its failure is only
// logged. A denied attempt changes nothing.
func (s *Session) SubmitSecret(candidate string) (Admission, Request) {
	if s.state.Admitted {
		return Admitted, nil
	}
	if candidate != sharedSecret {
		s.log.Warn().Msg("access denied")
		return Denied, nil
	}

	s.epoch++
	s.state = freshState()
	s.state.Admitted = true
	s.log.Info().Uint64("epoch", s.epoch).Msg("session admitted")

	return Admitted, s.RefreshHistory()
}

// Logout tears the session down. Files, results, history and any in-flight
// request are dropped; late completions are ignored by Apply.
func (s *Session) Logout() {
	if !s.state.Admitted {
		return
	}
	s.epoch++
	s.state = freshState()
	s.log.Info().Uint64("epoch", s.epoch).Msg("session closed")
}
