package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) File {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return File{Name: name, Path: path}
}

func TestDaily_SendsFilesAndDecodesReports(t *testing.T) {
	var gotNames []string
	var gotContents []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/process", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, fh := range r.MultipartForm.File["files"] {
			gotNames = append(gotNames, fh.Filename)
			f, err := fh.Open()
			if !assert.NoError(t, err) {
				continue
			}
			b, _ := io.ReadAll(f)
			f.Close()
			gotContents = append(gotContents, string(b))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{
			"date": "2025-01-06",
			"years_text": "II, III",
			"data": [
				{"Branch": "CSE", "Year": "II", "No of Registered Students": 1091, "No of Students Appeared": 900,
				 "No of Students Absent": 191, "Zero Problems Solved": 10, "One Problem Solved": 20,
				 "Two Problems Solved": 30, "Three Problems Solved": 840},
				{"Branch": "OVERALL TOTAL", "Year": "", "No of Registered Students": 1091.0, "No of Students Appeared": "900",
				 "No of Students Absent": 191, "Zero Problems Solved": 10, "One Problem Solved": 20,
				 "Two Problems Solved": 30, "Three Problems Solved": 840}
			]
		}]`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	files := []File{
		writeTempFile(t, "day1.csv", "a,b\n1,2\n"),
		writeTempFile(t, "day2.xlsx", "binary"),
	}

	reports, err := c.Daily(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, []string{"day1.csv", "day2.xlsx"}, gotNames)
	assert.Equal(t, []string{"a,b\n1,2\n", "binary"}, gotContents)

	require.Len(t, reports, 1)
	rep := reports[0]
	assert.Equal(t, "2025-01-06", rep.Date)
	assert.Equal(t, "II, III", rep.YearsText)
	require.Len(t, rep.Rows, 2)

	assert.Equal(t, BranchRow{
		Branch: "CSE", Year: "II", Registered: 1091, Appeared: 900, Absent: 191,
		ZeroSolved: 10, OneSolved: 20, TwoSolved: 30, ThreeOrMoreSolved: 840,
	}, rep.Rows[0])
	assert.False(t, rep.Rows[0].IsTotal())

	assert.True(t, rep.Rows[1].IsTotal())
	assert.Equal(t, 1091, rep.Rows[1].Registered)
	assert.Equal(t, 900, rep.Rows[1].Appeared)
}

func TestPerformance_SendsQueryFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/performance", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "CSE", r.FormValue("branch"))
		assert.Equal(t, "50", r.FormValue("top_n"))

		_, _ = io.WriteString(w, `[
			{"Reg No": 71772, "Name": "Asha", "Branch": "CSE", "Year": "II", "Solved count": 14, "Total submissions": 20, "Active utilisation": "01:02:03"},
			{"Name": "Ravi", "Branch": "CSE", "Year": "II", "Solved count": 12, "Total submissions": 25, "Total Active Util": "02:00:00"},
			{"Name": "Meena", "Branch": "CSE", "Year": "III", "Solved count": 9, "Total submissions": 9}
		]`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	rows, err := c.Performance(context.Background(),
		[]File{writeTempFile(t, "week.csv", "x")},
		PerformanceParams{Branch: "CSE", TopN: 50})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "71772", rows[0].DisplayRegNo())
	assert.Equal(t, "01:02:03", rows[0].DisplayActiveUtilisation())
	assert.Equal(t, NotAvailable, rows[1].DisplayRegNo())
	assert.Equal(t, "02:00:00", rows[1].DisplayActiveUtilisation())
	assert.Equal(t, NotAvailable, rows[2].DisplayActiveUtilisation())
	assert.Equal(t, 14, rows[0].SolvedCount)
	assert.Equal(t, 25, rows[1].TotalSubmissions)
}

func TestPerformance_NonListBodyIsEmptyRanking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"unexpected": true}`)
	}))
	defer srv.Close()

	rows, err := NewHTTPClient(srv.URL).Performance(context.Background(),
		[]File{writeTempFile(t, "a.csv", "x")}, PerformanceParams{Branch: "OVERALL", TopN: 10})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestWeekly_ServiceErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail": "bad file"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).Weekly(context.Background(), []File{writeTempFile(t, "a.csv", "x")})
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)

	detail, ok := Detail(err)
	assert.True(t, ok)
	assert.Equal(t, "bad file", detail)
}

func TestServiceError_WithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail": [{"msg": "field required"}]}`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).Weekly(context.Background(), []File{writeTempFile(t, "a.csv", "x")})
	require.Error(t, err)

	_, ok := Detail(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "422")
}

func TestAnalyze_RefusesEmptySelection(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1")
	_, err := c.Daily(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestAnalyze_MissingFileFailsBeforeSending(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).Daily(context.Background(),
		[]File{{Name: "gone.csv", Path: filepath.Join(t.TempDir(), "gone.csv")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, called)
}

func TestHistory_ListAndReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": 7, "timestamp": "2025-01-07 10:00:00", "ref_filename": "Upload", "res_filename": "Multiple",
			 "analysis_date": "2025-01-06", "total_students": 3200}
		]`)
	})
	mux.HandleFunc("/history/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"Branch": "IT", "Year": "III", "No of Registered Students": 193}]`)
	})
	mux.HandleFunc("/history/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Report not found"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewHTTPClient(srv.URL)

	entries, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, HistoryEntry{ID: 7, AnalysisDate: "2025-01-06", TotalStudents: 3200, Timestamp: "2025-01-07 10:00:00"}, entries[0])

	rows, err := c.HistoryReport(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "IT", rows[0].Branch)
	assert.Equal(t, 193, rows[0].Registered)

	_, err = c.HistoryReport(context.Background(), 8)
	detail, ok := Detail(err)
	assert.True(t, ok)
	assert.Equal(t, "Report not found", detail)
}

func TestDownloadURL(t *testing.T) {
	c := NewHTTPClient("http://svc:8000/")

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDaily, "http://svc:8000/download/daily"},
		{ModeWeekly, "http://svc:8000/download/weekly"},
		{ModePerformance, "http://svc:8000/download/performance"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := c.DownloadURL(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := c.DownloadURL(Mode("monthly"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url).History(context.Background())
	require.Error(t, err)
	_, ok := Detail(err)
	assert.False(t, ok)
}
