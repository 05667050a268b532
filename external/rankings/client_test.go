package rankings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fairwaylabs/golfdata/internal/platform/resilience"
)

func TestFetchRankings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_token") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"player_id":"46046","name":"Scottie Scheffler","position":1},
			{"player_id":"8793","name":"Rory McIlroy","position":2}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		Token:          "secret",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})

	entries, err := client.FetchRankings(t.Context())
	if err != nil {
		t.Fatalf("fetch rankings: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].ExternalID != "46046" || entries[0].Position != 1 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "Rory McIlroy" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestFetchRankings_NonRetryableStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		Token:          "bad",
		MaxRetries:     3,
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})

	if _, err := client.FetchRankings(t.Context()); err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestSanitizeSensitiveText(t *testing.T) {
	got := sanitizeSensitiveText("dial failed for api_token=abc123&x=1 token abc123", "abc123")
	if strings.Contains(got, "abc123") {
		t.Fatalf("token leaked: %s", got)
	}
}

func TestRedactURL(t *testing.T) {
	got := redactURL("https://api.example.com/v1/rankings?api_token=abc123")
	if got != "https://api.example.com/v1/rankings?api_token=REDACTED" {
		t.Fatalf("unexpected redacted url: %s", got)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	if !isRetryableStatus(429) || !isRetryableStatus(503) {
		t.Fatal("429 and 503 must be retryable")
	}
	if isRetryableStatus(400) || isRetryableStatus(404) {
		t.Fatal("client errors must not be retryable")
	}
}
