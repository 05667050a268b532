package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

const (
	reasonCanonical  = "canonical, most results"
	reasonHasResults = "has results, kept as duplicate"
	reasonNoResults  = "no dependent results"
)

type ReconcileService struct {
	playerRepo player.Repository
	resultRepo result.Repository
	dedup      *DedupService
	logger     *slog.Logger
}

// CleanupEntry records one decision made during a cleanup pass.
type CleanupEntry struct {
	PlayerID    string
	Name        string
	ExternalID  string
	ResultCount int
	Reason      string
}

// CleanupReport summarizes one cleanup pass over the external-ID duplicate
// clusters. Every cluster member lands in exactly one of the two lists.
type CleanupReport struct {
	Clusters int
	Deleted  []CleanupEntry
	Retained []CleanupEntry
}

func NewReconcileService(playerRepo player.Repository, resultRepo result.Repository, dedup *DedupService, logger *slog.Logger) *ReconcileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileService{playerRepo: playerRepo, resultRepo: resultRepo, dedup: dedup, logger: logger}
}

// CleanupDuplicates resolves every external-ID duplicate cluster. The member
// with the most dependent results is canonical and always retained. Other
// members are deleted only when they have no dependent results at the moment
// of deletion; a member that still owns results is retained and flagged.
func (s *ReconcileService) CleanupDuplicates(ctx context.Context) (CleanupReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.CleanupDuplicates")
	defer span.End()

	dupes, err := s.dedup.FindDuplicates(ctx)
	if err != nil {
		return CleanupReport{}, err
	}

	report := CleanupReport{
		Clusters: len(dupes.ByExternalID),
		Deleted:  make([]CleanupEntry, 0),
		Retained: make([]CleanupEntry, 0),
	}

	for _, cluster := range dupes.ByExternalID {
		// Members are already sorted descending by result count; the
		// first one is canonical.
		for i, member := range cluster.Members {
			entry := CleanupEntry{
				PlayerID:    member.Player.ID,
				Name:        member.Player.Name,
				ExternalID:  member.Player.ExternalID,
				ResultCount: member.ResultCount,
			}

			if i == 0 {
				entry.Reason = reasonCanonical
				report.Retained = append(report.Retained, entry)
				continue
			}

			deleted, count, err := s.deleteIfOrphaned(ctx, member.Player.ID)
			if err != nil {
				return CleanupReport{}, err
			}
			entry.ResultCount = count
			if deleted {
				entry.Reason = reasonNoResults
				report.Deleted = append(report.Deleted, entry)
				continue
			}
			entry.Reason = reasonHasResults
			report.Retained = append(report.Retained, entry)
		}
	}

	s.logger.InfoContext(ctx, "duplicate cleanup finished",
		"clusters", report.Clusters,
		"deleted", len(report.Deleted),
		"retained", len(report.Retained),
	)

	return report, nil
}

// deleteIfOrphaned re-reads the dependent result count immediately before
// deleting. The earlier scan's snapshot is never trusted for a destructive
// decision; results may have arrived since.
func (s *ReconcileService) deleteIfOrphaned(ctx context.Context, playerID string) (bool, int, error) {
	count, err := s.resultRepo.CountByPlayer(ctx, playerID)
	if err != nil {
		return false, 0, fmt.Errorf("count results for player %s: %w", playerID, err)
	}
	if count > 0 {
		return false, count, nil
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return false, 0, fmt.Errorf("delete player %s: %w", playerID, err)
	}
	return true, 0, nil
}

// DeletePlayer removes one player by ID. It refuses to delete a player that
// still owns tournament results; the count is checked at deletion time.
func (s *ReconcileService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	existing, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player %s: %w", playerID, err)
	}
	if !found {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	count, err := s.resultRepo.CountByPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("count results for player %s: %w", playerID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: player %s (%s) has %d tournament results", ErrIntegrityViolation, existing.Name, playerID, count)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player %s: %w", playerID, err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID, "name", existing.Name)
	return nil
}
