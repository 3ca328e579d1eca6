package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"word-history-project/chart"
	"word-history-project/config"
	"word-history-project/history"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		CollectionID:   "morpheus",
		ViewCacheSize:  8,
		DrilldownRate:  100,
		DrilldownBurst: 100,
		LogLevel:       "error",
	}
}

func testInput() history.Input {
	return history.Present(history.RawResultSet{
		{Name: "Alpha", Records: []history.RawRecord{
			{Year: 2000, DocumentID: "d1", Weight: 2},
			{Year: 2001, DocumentID: "d2", Weight: 5},
			{Year: 2000, DocumentID: "d3", Weight: 1},
		}},
		{Name: "Dup", Records: []history.RawRecord{{Year: 2000, DocumentID: "x", Weight: 1}}},
		{Name: "Dup", Records: []history.RawRecord{{Year: 2000, DocumentID: "y", Weight: 1}}},
	})
}

func newTestServer(t *testing.T, cfg *config.Config, input history.Input) *Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s, err := New(ctx, cfg, input)
	require.NoError(t, err)
	return s
}

func do(s *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// openView loads the index page and returns the id of the view it created
func openView(t *testing.T, s *Server) (string, string) {
	t.Helper()
	rec := do(s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	keys := s.views.pages.Keys()
	require.NotEmpty(t, keys)
	return keys[len(keys)-1], rec.Body.String()
}

func breakdownURL(viewID, series, year string) string {
	q := url.Values{}
	q.Set("series", series)
	q.Set("year", year)
	return "/views/" + viewID + "/breakdown?" + q.Encode()
}

func hasElementID(t *testing.T, body, id string) bool {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var found bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key == "id" && attr.Val == id {
					found = true
					return
				}
			}
		}
		for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())

	viewID, body := openView(t, s)
	assert.NotEmpty(t, viewID)
	assert.True(t, hasElementID(t, body, chart.MainMountPoint))
	assert.True(t, hasElementID(t, body, chart.BreakdownMountPoint))
	assert.Contains(t, body, chart.MainTitle)
	assert.Contains(t, body, viewID)
}

func TestIndex_AbsentInput(t *testing.T) {
	s := newTestServer(t, testConfig(), history.Absent())

	viewID, body := openView(t, s)
	assert.False(t, hasElementID(t, body, chart.MainMountPoint))
	assert.Contains(t, body, "No word history results")

	rec := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2000"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBreakdown(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	viewID, _ := openView(t, s)

	rec := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2000"))
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg chart.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, chart.KindPie, cfg.Chart.Type)
	assert.Equal(t, "Term Frequency for 'Alpha' in 2000", cfg.Title.Text)
	require.Len(t, cfg.Series, 1)
	assert.Equal(t, []chart.Point{
		{Name: "d1", Y: 2, URL: "details?id=d1&collection=morpheus"},
		{Name: "d3", Y: 1, URL: "details?id=d3&collection=morpheus"},
	}, cfg.Series[0].Data)
}

func TestBreakdown_Failures(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	viewID, _ := openView(t, s)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "unknown series", target: breakdownURL(viewID, "NoSuchName", "2000"), want: http.StatusNoContent},
		{name: "ambiguous series", target: breakdownURL(viewID, "Dup", "2000"), want: http.StatusNoContent},
		{name: "bad year", target: breakdownURL(viewID, "Alpha", "MM"), want: http.StatusBadRequest},
		{name: "unknown view", target: breakdownURL("nope", "Alpha", "2000"), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(s, http.MethodGet, tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestBreakdown_LiveView(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	viewID, _ := openView(t, s)
	live := "/views/" + viewID + "/breakdown"

	rec := do(s, http.MethodGet, live)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	first := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2000"))
	require.Equal(t, http.StatusOK, first.Code)
	firstLive, ok := s.views.pages.Peek(viewID)
	require.True(t, ok)
	firstHandle, ok := firstLive.Live("breakdown")
	require.True(t, ok)

	second := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2001"))
	require.Equal(t, http.StatusOK, second.Code)
	assert.True(t, firstHandle.(*snapshot).released.Load())

	// a failed lookup keeps the live breakdown
	miss := do(s, http.MethodGet, breakdownURL(viewID, "NoSuchName", "2001"))
	require.Equal(t, http.StatusNoContent, miss.Code)

	rec = do(s, http.MethodGet, live)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, second.Body.String(), rec.Body.String())
}

func TestBreakdown_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.DrilldownRate = 0.001
	cfg.DrilldownBurst = 1
	s := newTestServer(t, cfg, testInput())
	viewID, _ := openView(t, s)

	first := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2000"))
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2001"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestDeleteView(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	viewID, _ := openView(t, s)

	page, ok := s.views.Get(viewID)
	require.True(t, ok)

	rec := do(s, http.MethodDelete, "/views/"+viewID)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	h, ok := page.Live("main")
	assert.False(t, ok)
	assert.Nil(t, h)

	rec = do(s, http.MethodDelete, "/views/"+viewID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewEviction(t *testing.T) {
	cfg := testConfig()
	cfg.ViewCacheSize = 1
	s := newTestServer(t, cfg, testInput())

	oldest, _ := openView(t, s)
	page, ok := s.views.Get(oldest)
	require.True(t, ok)
	mainHandle, ok := page.Live("main")
	require.True(t, ok)

	newest, _ := openView(t, s)
	require.NotEqual(t, oldest, newest)

	assert.True(t, mainHandle.(*snapshot).released.Load())
	rec := do(s, http.MethodGet, breakdownURL(oldest, "Alpha", "2000"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBreakdownOnClosedPage(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	viewID, _ := openView(t, s)

	page, ok := s.views.Get(viewID)
	require.True(t, ok)
	require.NoError(t, page.Close())

	rec := do(s, http.MethodGet, breakdownURL(viewID, "Alpha", "2000"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, live := page.Live("breakdown")
	assert.False(t, live)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())

	rec := do(s, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["result_data"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, testConfig(), testInput())
	openView(t, s)

	rec := do(s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wordhistory_aggregations_total")
}
