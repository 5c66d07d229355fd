package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawlab/app"
	"drawlab/domain/draw"
	"drawlab/internal/testkit"
	"drawlab/ports"
)

type stubProvider struct {
	history draw.History
}

func (p *stubProvider) ListDraws(_ context.Context, filter ports.DrawFilter) (draw.History, error) {
	return p.history, nil
}

func (p *stubProvider) CountDraws(_ context.Context, filter ports.DrawFilter) (int, error) {
	return len(p.history), nil
}

func testServer(history draw.History) *Server {
	service := app.NewAnalysisService(&stubProvider{history: history}, draw.DefaultVariants())
	return NewServer(service, "test")
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestFrequencyEndpoint(t *testing.T) {
	variant := testkit.LottoVariant()
	s := testServer(testkit.UniformHistory(50, variant, 5))

	rec := get(t, s, "/api/v1/analysis/frequency?game=lotto")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "lotto", body["game_type"])
	assert.EqualValues(t, 50, body["draw_count"])
}

func TestAnalysisEndpoints_Respond(t *testing.T) {
	variant := testkit.LottoVariant()
	s := testServer(testkit.UniformHistory(30, variant, 9))

	for _, path := range []string{
		"/api/v1/analysis/randomness",
		"/api/v1/analysis/patterns",
		"/api/v1/analysis/correlation",
		"/api/v1/analysis/montecarlo?runs=10&draws_per_run=20",
		"/api/v1/draws",
	} {
		rec := get(t, s, path)
		assert.Equalf(t, http.StatusOK, rec.Code, "%s body: %s", path, rec.Body.String())
	}
}

func TestUnknownGameTypeRejected(t *testing.T) {
	s := testServer(nil)

	rec := get(t, s, "/api/v1/analysis/frequency?game=keno")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_GAME_TYPE")
}

func TestMalformedQueryRejected(t *testing.T) {
	s := testServer(nil)

	cases := []string{
		"/api/v1/analysis/frequency?window_days=abc",
		"/api/v1/analysis/frequency?date_from=01.05.2024",
		"/api/v1/analysis/montecarlo?runs=-5",
		"/api/v1/draws?limit=100000",
	}
	for _, path := range cases {
		rec := get(t, s, path)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestExportExcelEndpoint(t *testing.T) {
	variant := testkit.LottoVariant()
	s := testServer(testkit.UniformHistory(20, variant, 13))

	rec := get(t, s, "/api/v1/export/excel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestMethodologyPages(t *testing.T) {
	s := testServer(nil)

	rec := get(t, s, "/methodology/randomness")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Randomness Test Suite"))

	rec = get(t, s, "/methodology/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, s, "/methodology/..%2Fserver")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpsRouter(t *testing.T) {
	failing := func() error { return assert.AnError }
	healthy := func() error { return nil }

	ops := NewOpsRouter("1.0.0", map[string]HealthCheck{"db": healthy})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ops.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1.0.0")

	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	ops.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	ops = NewOpsRouter("1.0.0", map[string]HealthCheck{"db": failing})
	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec = httptest.NewRecorder()
	ops.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
