// Package export writes the visible result view to a local .xlsx workbook.
//
// Sheets mirror the tables on screen: one sheet per daily report, one for
// the weekly leaderboard, one for a performance ranking. Row order is the
// service's order and ranks are positional.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/billie-coop/skillrack/internal/api"
	"github.com/billie-coop/skillrack/internal/session"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// ErrNothingToExport is returned when no result is visible.
var ErrNothingToExport = errors.New("nothing to export")

const defaultSheet = "Sheet1"

// Column headers, matching the on-screen tables.
var (
	DailyHeaders = []string{
		"Branch", "Year", "Registered", "Appeared", "Absent",
		"0 Solved", "1 Solved", "2 Solved", "3+ Solved",
	}
	WeeklyHeaders = []string{
		"Rank", "Name", "Branch", "Year", "Days Appeared", "Total Solved", "Total Submissions",
	}
	PerformanceHeaders = []string{
		"Rank", "Reg No", "Name", "Branch", "Year", "Solved", "Submissions", "Active Util",
	}
)

var podiumFills = []string{"#FFD700", "#C0C0C0", "#CD7F32"}

// Exporter writes workbooks into a directory.
type Exporter struct {
	dir string
	log zerolog.Logger
	now func() time.Time
}

// New creates an exporter writing into dir.
func New(dir string, log zerolog.Logger) *Exporter {
	return &Exporter{
		dir: dir,
		log: log.With().Str("component", "export").Logger(),
		now: time.Now,
	}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export writes r to a new timestamped workbook and returns its path.
func (e *Exporter) Export(r session.Result) (string, error) {
	start := e.now()
	f, err := Workbook(r)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("skillrack-%s-%s.xlsx", r.Variant(), start.Format("20060102-150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	e.log.Info().
		Str("path", path).
		Str("variant", r.Variant().String()).
		Int("items", r.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("workbook exported")
	return path, nil
}

// Workbook builds the workbook for r. The caller closes it.
func Workbook(r session.Result) (*excelize.File, error) {
	if r == nil || r.Variant() == session.VariantEmpty {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	b := &builder{f: f, used: make(map[string]int)}

	var err error
	switch v := r.(type) {
	case session.DailyReports:
		if len(v.Reports) == 0 {
			err = ErrNothingToExport
			break
		}
		for _, rep := range v.Reports {
			if err = b.daily(rep); err != nil {
				break
			}
		}
	case session.WeeklyLeaderboard:
		err = b.weekly(v.Rows)
	case session.PerformanceRanking:
		err = b.performance(v)
	default:
		err = fmt.Errorf("unsupported result %T", r)
	}
	if err == nil {
		err = f.DeleteSheet(defaultSheet)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

type builder struct {
	f     *excelize.File
	used  map[string]int
	bold  int
	fills []int
}

func (b *builder) daily(rep api.DailyReport) error {
	title := rep.Date
	if title == "" {
		title = "Report"
	}
	sheet, err := b.sheet(title)
	if err != nil {
		return err
	}
	if err := b.header(sheet, DailyHeaders); err != nil {
		return err
	}
	for i, row := range rep.Rows {
		n := i + 2
		values := []any{
			row.Branch, row.Year, row.Registered, row.Appeared, row.Absent,
			row.ZeroSolved, row.OneSolved, row.TwoSolved, row.ThreeOrMoreSolved,
		}
		if err := b.row(sheet, n, values); err != nil {
			return err
		}
		if row.IsTotal() {
			if err := b.styleRow(sheet, n, len(values), b.bold); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) weekly(rows []api.LeaderboardRow) error {
	sheet, err := b.sheet("Weekly Leaderboard")
	if err != nil {
		return err
	}
	if err := b.header(sheet, WeeklyHeaders); err != nil {
		return err
	}
	for _, r := range session.Rank(rows) {
		values := []any{
			r.Rank, r.Row.Name, r.Row.Branch, r.Row.Year,
			r.Row.DaysAppeared, r.Row.TotalSolved, r.Row.TotalSubmissions,
		}
		if err := b.row(sheet, r.Rank+1, values); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) performance(p session.PerformanceRanking) error {
	sheet, err := b.sheet(fmt.Sprintf("%s Top %d", p.Query.Branch, p.Query.TopN))
	if err != nil {
		return err
	}
	if err := b.header(sheet, PerformanceHeaders); err != nil {
		return err
	}
	if err := b.podium(); err != nil {
		return err
	}
	for _, r := range session.Rank(p.Rows) {
		values := []any{
			r.Rank, r.Row.DisplayRegNo(), r.Row.Name, r.Row.Branch, r.Row.Year,
			r.Row.SolvedCount, r.Row.TotalSubmissions, r.Row.DisplayActiveUtilisation(),
		}
		if err := b.row(sheet, r.Rank+1, values); err != nil {
			return err
		}
		if r.Rank <= len(b.fills) {
			if err := b.styleRow(sheet, r.Rank+1, len(values), b.fills[r.Rank-1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheet creates a uniquely named sheet.
func (b *builder) sheet(title string) (string, error) {
	name := sheetName(title)
	if n := b.used[name]; n > 0 {
		suffix := fmt.Sprintf(" (%d)", n+1)
		name = truncate(name, 31-len(suffix)) + suffix
	}
	b.used[sheetName(title)]++

	if _, err := b.f.NewSheet(name); err != nil {
		return "", fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return name, nil
}

func (b *builder) header(sheet string, headers []string) error {
	if b.bold == 0 {
		id, err := b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		b.bold = id
	}
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := b.row(sheet, 1, values); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := b.f.SetColWidth(sheet, "A", last, 16); err != nil {
		return err
	}
	return b.styleRow(sheet, 1, len(headers), b.bold)
}

func (b *builder) podium() error {
	if b.fills != nil {
		return nil
	}
	for _, color := range podiumFills {
		id, err := b.f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		b.fills = append(b.fills, id)
	}
	return nil
}

func (b *builder) row(sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return b.f.SetSheetRow(sheet, cell, &values)
}

func (b *builder) styleRow(sheet string, n, width, style int) error {
	from, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(width, n)
	if err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, from, to, style)
}

var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
)

// sheetName strips characters Excel rejects and enforces the length limit.
func sheetName(title string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(title))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	return truncate(name, 31)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
