package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshrangare/portfolio/internal/logging"
)

func openTestAnalytics(t *testing.T) (*Analytics, *time.Time) {
	t.Helper()
	a, err := OpenAnalytics(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	now := time.Date(2024, time.June, 12, 15, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	return a, &now
}

func TestAnalytics_Stats(t *testing.T) {
	a, now := openTestAnalytics(t)
	ctx := context.Background()

	*now = now.Add(-10 * 24 * time.Hour)
	require.NoError(t, a.Record(ctx, "10.0.0.1", "help", outcomeOK))
	*now = now.Add(10 * 24 * time.Hour)

	require.NoError(t, a.Record(ctx, "10.0.0.1", "help", outcomeOK))
	require.NoError(t, a.Record(ctx, "10.0.0.2", "contact", outcomeOK))
	require.NoError(t, a.Record(ctx, "10.0.0.2", "", outcomeUnknown))
	require.NoError(t, a.Record(ctx, "10.0.0.3", "clear", outcomeClear))

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalSubmissions)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.UnknownCommands)
	assert.EqualValues(t, 4, stats.SubmissionsToday)
	assert.EqualValues(t, 4, stats.SubmissionsWeek)

	require.NotEmpty(t, stats.TopCommands)
	assert.Equal(t, CommandStat{Command: "help", Count: 2}, stats.TopCommands[0])
	for _, c := range stats.TopCommands {
		assert.NotEmpty(t, c.Command)
	}

	require.Len(t, stats.RecentSubmissions, 5)
	recent := stats.RecentSubmissions[0]
	assert.Equal(t, "clear", recent.Command)
	assert.Len(t, recent.HashedIP, 16)
	assert.NotContains(t, recent.HashedIP, "10.0.0.3")
}

func TestAnalytics_HashIsStablePerIP(t *testing.T) {
	a, _ := openTestAnalytics(t)
	assert.Equal(t, a.hashIP("1.2.3.4"), a.hashIP("1.2.3.4"))
	assert.NotEqual(t, a.hashIP("1.2.3.4"), a.hashIP("1.2.3.5"))
}

func TestAnalytics_Cleanup(t *testing.T) {
	a, now := openTestAnalytics(t)
	ctx := context.Background()

	*now = now.Add(-400 * 24 * time.Hour)
	require.NoError(t, a.Record(ctx, "10.0.0.1", "help", outcomeOK))
	*now = now.Add(400 * 24 * time.Hour)
	require.NoError(t, a.Record(ctx, "10.0.0.1", "about", outcomeOK))

	n, err := a.Cleanup(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalSubmissions)
}

func TestAdmin_LoginAndStats(t *testing.T) {
	a, _ := openTestAnalytics(t)
	require.NoError(t, a.Record(context.Background(), "10.0.0.1", "skills", outcomeOK))

	s := NewServer(testSettings(), logging.NewNop(), a)
	c := newClient(t, s.Router())

	rr := c.do(http.MethodGet, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin/login", rr.Header().Get("Location"))

	rr = c.do(http.MethodPost, "/admin/login", url.Values{"username": {"root"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid credentials")

	rr = c.do(http.MethodPost, "/admin/login", url.Values{"username": {"root"}, "password": {"hunter2"}})
	assert.Equal(t, http.StatusFound, rr.Code)
	require.Contains(t, c.cookies, "admin_token")

	rr = c.do(http.MethodGet, "/admin/api/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats AdminStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.TotalSubmissions)
	assert.Equal(t, "skills", stats.TopCommands[0].Command)

	rr = c.do(http.MethodGet, "/admin/export/stats", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "terminal-stats.json")

	rr = c.do(http.MethodPost, "/admin/privacy/cleanup", url.Values{})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"removed":0}`, rr.Body.String())

	c.do(http.MethodGet, "/admin/logout", nil)
	assert.NotContains(t, c.cookies, "admin_token")
}

func TestAdmin_AnalyticsDisabled(t *testing.T) {
	s := NewServer(testSettings(), logging.NewNop(), nil)
	c := newClient(t, s.Router())
	c.do(http.MethodPost, "/admin/login", url.Values{"username": {"root"}, "password": {"hunter2"}})

	rr := c.do(http.MethodGet, "/admin/api/stats", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestTrackCommand_WaitsForPendingRecords(t *testing.T) {
	a, _ := openTestAnalytics(t)
	s := NewServer(testSettings(), logging.NewNop(), a)
	router := s.Router()
	c := newClient(t, router)

	c.submit("help")
	c.submit("nope")

	req := httptest.NewRequest(http.MethodPost, "/terminal/submit",
		strings.NewReader(url.Values{"command": {"about"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("DNT", "1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	s.waitTracking()

	stats, err := a.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalSubmissions)
	assert.EqualValues(t, 1, stats.UnknownCommands)
}
