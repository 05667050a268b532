package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwaylabs/golfdata/internal/infrastructure/repository/memory"
)

type stubRankingProvider struct {
	rankings []ExternalRanking
	err      error
}

func (s *stubRankingProvider) FetchRankings(context.Context) ([]ExternalRanking, error) {
	return s.rankings, s.err
}

func TestRankingSyncService_SyncRankings(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	provider := &stubRankingProvider{rankings: []ExternalRanking{
		{ExternalID: "10140", Name: "Xander Schauffele", Position: 2},
		{ExternalID: "8793", Name: "Rory McIlroy", Position: 2},
		{ExternalID: "77777", Name: "Unknown Golfer", Position: 50},
		{ExternalID: "46046", Name: "Scottie Scheffler", Position: 0},
	}}

	svc := NewRankingSyncService(provider, playerRepo, nil)
	report, err := svc.SyncRankings(t.Context())
	if err != nil {
		t.Fatalf("sync rankings failed: %v", err)
	}

	if report.Fetched != 4 {
		t.Fatalf("expected 4 fetched, got %d", report.Fetched)
	}
	// 10140 moves 3 -> 2; 8793 already at 2; 77777 unmatched; 46046 invalid position.
	if report.Updated != 1 {
		t.Fatalf("expected 1 update, got %d", report.Updated)
	}
	if report.Skipped != 3 {
		t.Fatalf("expected 3 skips, got %d", report.Skipped)
	}

	p, _, _ := playerRepo.GetByID(t.Context(), "plr-10140")
	if p.Ranking == nil || *p.Ranking != 2 {
		t.Fatalf("ranking not patched: %v", p.Ranking)
	}
}

func TestRankingSyncService_ProviderDown(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	provider := &stubRankingProvider{err: errors.New("upstream timeout")}

	svc := NewRankingSyncService(provider, playerRepo, nil)
	if _, err := svc.SyncRankings(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
