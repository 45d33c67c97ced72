package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is where the analysis service listens by default.
const DefaultBaseURL = "http://localhost:8000"

// maxErrorBody caps how much of a failed response is read for its detail.
const maxErrorBody = 1 << 20

var analysisPaths = map[Mode]string{
	ModeDaily:       "/process",
	ModeWeekly:      "/weekly",
	ModePerformance: "/performance",
}

var downloadPaths = map[Mode]string{
	ModeDaily:       "/download/daily",
	ModeWeekly:      "/download/weekly",
	ModePerformance: "/download/performance",
}

// Client is the contract the dashboard needs from the analysis service.
type Client interface {
	Daily(ctx context.Context, files []File) ([]DailyReport, error)
	Weekly(ctx context.Context, files []File) ([]LeaderboardRow, error)
	Performance(ctx context.Context, files []File, params PerformanceParams) ([]PerformerRow, error)
	History(ctx context.Context) ([]HistoryEntry, error)
	HistoryReport(ctx context.Context, id int64) ([]BranchRow, error)
	DownloadURL(mode Mode) (string, error)
}

// HTTPClient implements Client over the service's HTTP API.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.client = c }
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.client.Timeout = d }
}

// WithLogger attaches a logger for request outcomes.
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTPClient) { h.log = l.With().Str("component", "api").Logger() }
}

// NewHTTPClient creates a client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client talks to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Daily runs the daily analysis over files.
func (c *HTTPClient) Daily(ctx context.Context, files []File) ([]DailyReport, error) {
	var out []DailyReport
	if err := c.analyze(ctx, ModeDaily, files, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Weekly runs the weekly leaderboard analysis over files.
func (c *HTTPClient) Weekly(ctx context.Context, files []File) ([]LeaderboardRow, error) {
	var out []LeaderboardRow
	if err := c.analyze(ctx, ModeWeekly, files, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Performance runs the top-performers ranking. A body that is not a list
// is treated as an empty ranking.
func (c *HTTPClient) Performance(ctx context.Context, files []File, params PerformanceParams) ([]PerformerRow, error) {
	fields := map[string]string{
		"top_n":  strconv.Itoa(params.TopN),
		"branch": params.Branch,
	}
	var raw json.RawMessage
	if err := c.analyze(ctx, ModePerformance, files, fields, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []PerformerRow{}, nil
	}
	out := []PerformerRow{}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode performance ranking: %w", err)
	}
	return out, nil
}

// History lists previously generated reports.
func (c *HTTPClient) History(ctx context.Context) ([]HistoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, err
	}
	out := []HistoryEntry{}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HistoryReport fetches the stored rows of one historical report.
func (c *HTTPClient) HistoryReport(ctx context.Context, id int64) ([]BranchRow, error) {
	url := c.baseURL + "/history/" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	out := []BranchRow{}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadURL returns the spreadsheet URL for the given analysis.
func (c *HTTPClient) DownloadURL(mode Mode) (string, error) {
	path, ok := downloadPaths[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return c.baseURL + path, nil
}

func (c *HTTPClient) analyze(ctx context.Context, mode Mode, files []File, fields map[string]string, out any) error {
	path, ok := analysisPaths[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if len(files) == 0 {
		return ErrNoFiles
	}

	body, contentType, err := buildMultipart(files, fields)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out)
}

// buildMultipart writes every file under the "files" field followed by the
// extra form fields.
func buildMultipart(files []File, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		if err := appendFile(w, f); err != nil {
			return nil, "", err
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func appendFile(w *multipart.Writer, f File) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer src.Close()

	part, err := w.CreateFormFile("files", f.Name)
	if err != nil {
		return fmt.Errorf("create form file %s: %w", f.Name, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy %s: %w", f.Name, err)
	}
	return nil
}

// do sends req and decodes a 2xx JSON body into out. Non-2xx answers become
// a *ServiceError carrying the service's detail message when present.
func (c *HTTPClient) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Msg("request failed")
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServiceError{
			Status: resp.StatusCode,
			Detail: readDetail(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// readDetail pulls the "detail" string out of an error body. Any other shape
// yields an empty detail.
func readDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
