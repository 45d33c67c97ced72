package session

import (
	"fmt"

	"github.com/billie-coop/skillrack/internal/api"
)

// Download opens the service's spreadsheet endpoint for mode in a new
// browsing context. It never touches session state; failures become a
// notice.
func (s *Session) Download(mode api.Mode) Outcome {
	if !s.state.Admitted {
		return Outcome{}
	}

	url, err := s.client.DownloadURL(mode)
	if err == nil {
		if s.opener == nil {
			err = fmt.Errorf("no opener configured")
		} else {
			err = s.opener.Open(url)
		}
	}
	if err != nil {
		s.log.Error().Err(err).Str("mode", string(mode)).Msg("download failed")
		return Outcome{Notice: fmt.Sprintf("Download %s failed", mode)}
	}

	s.log.Info().Str("mode", string(mode)).Str("url", url).Msg("download opened")
	return Outcome{Status: fmt.Sprintf("Opened %s download", mode)}
}

// DownloadMode is the download offered under the active result, if any.
func (st State) DownloadMode() (api.Mode, bool) {
	switch st.Result.(type) {
	case DailyReports:
		return api.ModeDaily, true
	case WeeklyLeaderboard:
		return api.ModeWeekly, true
	case PerformanceRanking:
		return api.ModePerformance, true
	}
	return "", false
}
