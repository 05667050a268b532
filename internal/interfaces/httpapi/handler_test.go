package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/fairwaylabs/golfdata/internal/infrastructure/repository/memory"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

const testJobToken = "test-job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	resultRepo := memory.NewResultRepository(memory.SeedResults())

	playerService := usecase.NewPlayerService(playerRepo, resultRepo, logger)
	importService := usecase.NewImportService(logger)
	dedupService := usecase.NewDedupService(playerRepo, resultRepo, logger)
	reconcileService := usecase.NewReconcileService(playerRepo, resultRepo, dedupService, logger)
	bioMergeService := usecase.NewBioMergeService(playerRepo, logger)

	handler := NewHandler(playerService, importService, dedupService, reconcileService, bioMergeService, nil, logger)
	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_ListPlayers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("expected non-empty player list, got %v", body["data"])
	}
}

func TestRouter_ListPlayers_SearchByName(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players?q=mcilroy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one match, got %v", body["data"])
	}
	item := items[0].(map[string]any)
	playerObj, ok := item["player"].(map[string]any)
	if !ok || playerObj["id"] != "plr-8793" {
		t.Fatalf("unexpected match: %v", item)
	}
	if count, _ := item["resultCount"].(float64); count != 1 {
		t.Fatalf("expected result count 1, got %v", item["resultCount"])
	}
}

func TestRouter_GetPlayer_IncludesResults(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/plr-10140", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %v", body["data"])
	}
	playerObj, ok := data["player"].(map[string]any)
	if !ok || playerObj["id"] != "plr-10140" {
		t.Fatalf("unexpected player payload: %v", data["player"])
	}
	results, ok := data["results"].([]any)
	if !ok || len(results) == 0 {
		t.Fatalf("expected player results, got %v", data["results"])
	}
}

func TestRouter_GetPlayer_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/plr-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_InternalRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/import", strings.NewReader(`{"directory":"/tmp"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}
}

func TestRouter_DeletePlayer_WithResultsConflicts(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/players/plr-10140", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for player with results, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", body)
	}
	if got, _ := errorObj["status"].(string); got != "FAILED_PRECONDITION" {
		t.Fatalf("expected FAILED_PRECONDITION, got %v", errorObj["status"])
	}
}

func TestRouter_DeletePlayer_WithoutResultsSucceeds(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/players/plr-legacy-01", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_BioUpdates(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"updates":[{"externalId":"10140","college":"San Diego State University","swing":"Right"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/bio-updates", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected report payload, got %v", body["data"])
	}
	if updated, _ := data["updated"].(float64); updated != 1 {
		t.Fatalf("expected one updated record, got %v", data["updated"])
	}
}

func TestRouter_BioUpdates_RejectsRecordWithoutKeys(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"updates":[{"country":"Ireland"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/bio-updates", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for keyless record, got %d", rec.Code)
	}
}

func TestRouter_Import_MissingDirectory(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"directory":"/nonexistent/export-dump"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/import", strings.NewReader(payload))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing directory, got %d", rec.Code)
	}
}

func TestRouter_RankingSync_Unconfigured(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/rankings/sync", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 when no provider is configured, got %d", rec.Code)
	}
}
