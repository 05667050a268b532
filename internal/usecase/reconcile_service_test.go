package usecase

import (
	"errors"
	"testing"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
	"github.com/fairwaylabs/golfdata/internal/infrastructure/repository/memory"
)

func newReconcileFixture(players []player.Player, results []result.TournamentResult) (*ReconcileService, *memory.PlayerRepository) {
	playerRepo := memory.NewPlayerRepository(players)
	resultRepo := memory.NewResultRepository(results)
	dedup := NewDedupService(playerRepo, resultRepo, nil)
	return NewReconcileService(playerRepo, resultRepo, dedup, nil), playerRepo
}

func TestReconcileService_CleanupDuplicates(t *testing.T) {
	svc, playerRepo := newReconcileFixture(
		[]player.Player{
			{ID: "canon", ExternalID: "10140", Name: "Xander Schauffele", Country: "United States"},
			{ID: "orphan", ExternalID: "10140", Name: "X. Schauffele", Country: "United States"},
			{ID: "kept", ExternalID: "10140", Name: "Xander S.", Country: "United States"},
		},
		[]result.TournamentResult{
			{ID: "r1", PlayerID: "canon", Year: 2024, Tournament: "PGA Championship"},
			{ID: "r2", PlayerID: "canon", Year: 2024, Tournament: "The Open Championship"},
			{ID: "r3", PlayerID: "kept", Year: 2023, Tournament: "Masters Tournament"},
		},
	)

	report, err := svc.CleanupDuplicates(t.Context())
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	if report.Clusters != 1 {
		t.Fatalf("expected one cluster, got %d", report.Clusters)
	}
	if len(report.Deleted) != 1 || report.Deleted[0].PlayerID != "orphan" {
		t.Fatalf("expected only orphan deleted, got %+v", report.Deleted)
	}
	if len(report.Retained) != 2 {
		t.Fatalf("expected two retained, got %+v", report.Retained)
	}
	if report.Retained[0].PlayerID != "canon" || report.Retained[0].Reason != "canonical, most results" {
		t.Fatalf("unexpected canonical entry: %+v", report.Retained[0])
	}
	if report.Retained[1].PlayerID != "kept" || report.Retained[1].Reason != "has results, kept as duplicate" {
		t.Fatalf("unexpected flagged duplicate entry: %+v", report.Retained[1])
	}

	if _, found, _ := playerRepo.GetByID(t.Context(), "orphan"); found {
		t.Fatal("orphan duplicate must be deleted")
	}
	if _, found, _ := playerRepo.GetByID(t.Context(), "kept"); !found {
		t.Fatal("duplicate with results must never be deleted")
	}
}

func TestReconcileService_DeletePlayer(t *testing.T) {
	svc, playerRepo := newReconcileFixture(memory.SeedPlayers(), memory.SeedResults())

	// plr-10140 owns results; the delete must refuse.
	err := svc.DeletePlayer(t.Context(), "plr-10140")
	if !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}
	if _, found, _ := playerRepo.GetByID(t.Context(), "plr-10140"); !found {
		t.Fatal("player with results must survive a delete attempt")
	}

	// plr-legacy-01 has no results; the delete must go through.
	if err := svc.DeletePlayer(t.Context(), "plr-legacy-01"); err != nil {
		t.Fatalf("delete of orphan player failed: %v", err)
	}
	if _, found, _ := playerRepo.GetByID(t.Context(), "plr-legacy-01"); found {
		t.Fatal("orphan player should be gone")
	}
}

func TestReconcileService_DeletePlayer_NotFound(t *testing.T) {
	svc, _ := newReconcileFixture(nil, nil)

	if err := svc.DeletePlayer(t.Context(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.DeletePlayer(t.Context(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}
