package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode identifies one of the three analyses the service can run.
type Mode string

const (
	ModeDaily       Mode = "daily"
	ModeWeekly      Mode = "weekly"
	ModePerformance Mode = "performance"
)

// Modes lists every analysis mode in display order.
var Modes = []Mode{ModeDaily, ModeWeekly, ModePerformance}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeDaily, ModeWeekly, ModePerformance:
		return true
	}
	return false
}

// File is an operator-selected file handle. Only Name is meaningful to the
// service; Path is where the bytes are read from at upload time.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Wire keys used by the service. They contain spaces, so rows are decoded
// through a key map instead of struct tags.
const (
	keyBranch        = "Branch"
	keyYear          = "Year"
	keyRegistered    = "No of Registered Students"
	keyAppeared      = "No of Students Appeared"
	keyAbsent        = "No of Students Absent"
	keyZeroSolved    = "Zero Problems Solved"
	keyOneSolved     = "One Problem Solved"
	keyTwoSolved     = "Two Problems Solved"
	keyThreeSolved   = "Three Problems Solved"
	keyName          = "Name"
	keyDaysAppeared  = "Days Appeared"
	keyTotalSolved   = "Total Solved"
	keyTotalSubsCap  = "Total Submissions"
	keyRegNo         = "Reg No"
	keySolvedCount   = "Solved count"
	keyTotalSubs     = "Total submissions"
	keyActiveUtil    = "Active utilisation"
	keyActiveUtilAlt = "Total Active Util"

	// NotAvailable is shown for optional cells the service left out.
	NotAvailable = "N/A"

	totalMarker = "TOTAL"
)

// BranchRow is one line of a daily report.
type BranchRow struct {
	Branch            string
	Year              string
	Registered        int
	Appeared          int
	Absent            int
	ZeroSolved        int
	OneSolved         int
	TwoSolved         int
	ThreeOrMoreSolved int
}

// IsTotal reports whether the row is a service-computed total line.
func (r BranchRow) IsTotal() bool {
	return strings.Contains(r.Branch, totalMarker)
}

// UnmarshalJSON decodes a row keyed by the service's column titles.
func (r *BranchRow) UnmarshalJSON(data []byte) error {
	c, err := decodeCells(data)
	if err != nil {
		return err
	}
	*r = BranchRow{
		Branch:            c.text(keyBranch),
		Year:              c.text(keyYear),
		Registered:        c.count(keyRegistered),
		Appeared:          c.count(keyAppeared),
		Absent:            c.count(keyAbsent),
		ZeroSolved:        c.count(keyZeroSolved),
		OneSolved:         c.count(keyOneSolved),
		TwoSolved:         c.count(keyTwoSolved),
		ThreeOrMoreSolved: c.count(keyThreeSolved),
	}
	return c.err
}

// MarshalJSON encodes the row with the service's column titles.
func (r BranchRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		keyBranch:      r.Branch,
		keyYear:        r.Year,
		keyRegistered:  r.Registered,
		keyAppeared:    r.Appeared,
		keyAbsent:      r.Absent,
		keyZeroSolved:  r.ZeroSolved,
		keyOneSolved:   r.OneSolved,
		keyTwoSolved:   r.TwoSolved,
		keyThreeSolved: r.ThreeOrMoreSolved,
	})
}

// DailyReport is the per-date report returned by the daily analysis.
type DailyReport struct {
	Date      string      `json:"date"`
	YearsText string      `json:"years_text"`
	Rows      []BranchRow `json:"data"`
}

// UnmarshalJSON tolerates a numeric date and a null row list.
func (d *DailyReport) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date      json.RawMessage `json:"date"`
		YearsText json.RawMessage `json:"years_text"`
		Rows      []BranchRow     `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := cellText(raw.Date)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	years, err := cellText(raw.YearsText)
	if err != nil {
		return fmt.Errorf("years_text: %w", err)
	}
	*d = DailyReport{Date: date, YearsText: years, Rows: raw.Rows}
	return nil
}

// LeaderboardRow is one student in the weekly leaderboard.
type LeaderboardRow struct {
	Name             string
	Branch           string
	Year             string
	DaysAppeared     int
	TotalSolved      int
	TotalSubmissions int
}

func (r *LeaderboardRow) UnmarshalJSON(data []byte) error {
	c, err := decodeCells(data)
	if err != nil {
		return err
	}
	*r = LeaderboardRow{
		Name:             c.text(keyName),
		Branch:           c.text(keyBranch),
		Year:             c.text(keyYear),
		DaysAppeared:     c.count(keyDaysAppeared),
		TotalSolved:      c.count(keyTotalSolved),
		TotalSubmissions: c.count(keyTotalSubsCap),
	}
	return c.err
}

func (r LeaderboardRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		keyName:         r.Name,
		keyBranch:       r.Branch,
		keyYear:         r.Year,
		keyDaysAppeared: r.DaysAppeared,
		keyTotalSolved:  r.TotalSolved,
		keyTotalSubsCap: r.TotalSubmissions,
	})
}

// PerformerRow is one student in a performance ranking. RegNo and
// ActiveUtilisation are optional on the wire.
type PerformerRow struct {
	RegNo             string
	Name              string
	Branch            string
	Year              string
	SolvedCount       int
	TotalSubmissions  int
	ActiveUtilisation string
}

// DisplayRegNo returns the registration number or N/A.
func (r PerformerRow) DisplayRegNo() string {
	if r.RegNo == "" {
		return NotAvailable
	}
	return r.RegNo
}

// DisplayActiveUtilisation returns the utilisation or N/A.
func (r PerformerRow) DisplayActiveUtilisation() string {
	if r.ActiveUtilisation == "" {
		return NotAvailable
	}
	return r.ActiveUtilisation
}

func (r *PerformerRow) UnmarshalJSON(data []byte) error {
	c, err := decodeCells(data)
	if err != nil {
		return err
	}
	util := c.text(keyActiveUtil)
	if util == "" {
		util = c.text(keyActiveUtilAlt)
	}
	*r = PerformerRow{
		RegNo:             c.text(keyRegNo),
		Name:              c.text(keyName),
		Branch:            c.text(keyBranch),
		Year:              c.text(keyYear),
		SolvedCount:       c.count(keySolvedCount),
		TotalSubmissions:  c.count(keyTotalSubs),
		ActiveUtilisation: util,
	}
	return c.err
}

func (r PerformerRow) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		keyName:        r.Name,
		keyBranch:      r.Branch,
		keyYear:        r.Year,
		keySolvedCount: r.SolvedCount,
		keyTotalSubs:   r.TotalSubmissions,
	}
	if r.RegNo != "" {
		m[keyRegNo] = r.RegNo
	}
	if r.ActiveUtilisation != "" {
		m[keyActiveUtil] = r.ActiveUtilisation
	}
	return json.Marshal(m)
}

// HistoryEntry summarises a previously generated daily report.
type HistoryEntry struct {
	ID            int64  `json:"id"`
	AnalysisDate  string `json:"analysis_date"`
	TotalStudents int    `json:"total_students"`
	Timestamp     string `json:"timestamp"`
}

func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	c, err := decodeCells(data)
	if err != nil {
		return err
	}
	*h = HistoryEntry{
		ID:            int64(c.count("id")),
		AnalysisDate:  c.text("analysis_date"),
		TotalStudents: c.count("total_students"),
		Timestamp:     c.text("timestamp"),
	}
	return c.err
}

// PerformanceParams are the form fields sent with a performance request.
type PerformanceParams struct {
	Branch string
	TopN   int
}

// cells holds one decoded JSON object and the first decoding error seen.
type cells struct {
	raw map[string]json.RawMessage
	err error
}

func decodeCells(data []byte) (*cells, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &cells{raw: raw}, nil
}

func (c *cells) text(key string) string {
	v, ok := c.raw[key]
	if !ok {
		return ""
	}
	s, err := cellText(v)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%q: %w", key, err)
	}
	return s
}

func (c *cells) count(key string) int {
	v, ok := c.raw[key]
	if !ok {
		return 0
	}
	n, err := cellCount(v)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%q: %w", key, err)
	}
	return n
}

// cellText renders a string, number, bool or null cell as text.
func cellText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrMalformedCell, string(raw))
	}
}

// cellCount reads an integer cell that may arrive as 3, 3.0, "3" or null.
func cellCount(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int(math.Round(x)), nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedCell, x)
		}
		return int(math.Round(f)), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrMalformedCell, string(raw))
	}
}
