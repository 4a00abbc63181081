package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
	"github.com/golazo-app/golazo-api/internal/infrastructure/repository/memory"
	"github.com/golazo-app/golazo-api/internal/platform/cache"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/golazo-app/golazo-api/internal/usecase"
)

// stubProvider satisfies both provider interfaces with canned data so
// the handler tests can exercise the full router without the network.
type stubProvider struct {
	matches     []match.Match
	matchDetail match.Match
	tournaments []tournament.Tournament
}

func (p *stubProvider) MatchesByDate(_ context.Context, _ string) ([]match.Match, error) {
	return p.matches, nil
}

func (p *stubProvider) MatchByID(_ context.Context, _ int64) (match.Match, error) {
	return p.matchDetail, nil
}

func (p *stubProvider) ShotmapByMatch(_ context.Context, _ int64) ([]usecase.ExternalShot, error) {
	return nil, nil
}

func (p *stubProvider) LineupStatsByMatch(_ context.Context, _ int64) ([]usecase.ExternalPlayerStats, error) {
	return nil, nil
}

func (p *stubProvider) IncidentsByMatch(_ context.Context, _ int64) ([]usecase.ExternalIncident, error) {
	return nil, nil
}

func (p *stubProvider) TournamentSuggestions(_ context.Context) ([]tournament.Tournament, error) {
	return p.tournaments, nil
}

func newTestRouter(t *testing.T, provider *stubProvider, internalJobToken string) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	snapshots := memory.NewSnapshotRepository()

	matchService := usecase.NewMatchService(provider, logger)
	tournamentService := usecase.NewTournamentService(provider, snapshots, cache.NewStore(time.Minute), time.Hour, logger)
	detailService := usecase.NewDetailService(provider, snapshots, time.Hour, 2, logger)
	warmupService := usecase.NewWarmupService(matchService, detailService, 2, logger)

	handler := NewHandler(matchService, tournamentService, detailService, warmupService, logger)
	return NewRouter(handler, logger, []string{"*"}, internalJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("expected data.status=ok, got %v", data["status"])
	}
}

func TestListMatchesByDate(t *testing.T) {
	provider := &stubProvider{
		matches: []match.Match{
			{ID: 101, HomeTeam: match.Team{ID: 1, Name: "Real Madrid"}, AwayTeam: match.Team{ID: 2, Name: "Barcelona"}},
			{ID: 102, HomeTeam: match.Team{ID: 3, Name: "Sevilla"}, AwayTeam: match.Team{ID: 4, Name: "Betis"}},
		},
	}
	router := newTestRouter(t, provider, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/matches?date=2026-03-14", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(data))
	}
}

func TestListMatchesByDate_MissingDate(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListMatchesByDate_InvalidDate(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/matches?date=14-03-2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, _ := body["error"].(map[string]any)
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestGetMatchDetail(t *testing.T) {
	provider := &stubProvider{
		matchDetail: match.Match{ID: 101, HomeTeam: match.Team{ID: 1, Name: "Real Madrid"}},
	}
	router := newTestRouter(t, provider, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/101", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["id"].(float64); int64(got) != 101 {
		t.Fatalf("expected match id 101, got %v", data["id"])
	}
	if _, ok := data["summary"]; !ok {
		t.Fatalf("expected summary in match detail")
	}
}

func TestGetMatchDetail_NonNumericID(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListTournaments_DecoratesEntries(t *testing.T) {
	provider := &stubProvider{
		tournaments: []tournament.Tournament{
			{ID: "8", Name: "LaLiga", Slug: "laliga", Country: "Spain"},
		},
	}
	router := newTestRouter(t, provider, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/tournaments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected 1 tournament, got %v", body["data"])
	}
	entry, _ := data[0].(map[string]any)
	if entry["id"] != "8" {
		t.Fatalf("expected tournament id 8, got %v", entry["id"])
	}
	if _, ok := entry["flagUrl"]; !ok {
		t.Fatalf("expected flagUrl on tournament entry")
	}
}

func TestRunWarmMatchesJob_RequiresToken(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm-matches", strings.NewReader(`{"date":"2026-03-14"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRunWarmMatchesJob(t *testing.T) {
	provider := &stubProvider{
		matches: []match.Match{
			{ID: 101}, {ID: 102}, {ID: 103},
		},
	}
	router := newTestRouter(t, provider, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm-matches", strings.NewReader(`{"date":"2026-03-14"}`))
	req.Header.Set("X-Internal-Job-Token", "secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["warmed"].(float64); int(got) != 3 {
		t.Fatalf("expected 3 warmed, got %v", data["warmed"])
	}
}

func TestRunWarmMatchesJob_InvalidDateBody(t *testing.T) {
	router := newTestRouter(t, &stubProvider{}, "secret-token")

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm-matches", strings.NewReader(`{"date":"tomorrow"}`))
	req.Header.Set("X-Internal-Job-Token", "secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
