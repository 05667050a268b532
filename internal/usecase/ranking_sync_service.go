package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
)

// ExternalRanking is one world-ranking entry from the upstream feed.
type ExternalRanking struct {
	ExternalID string
	Name       string
	Position   int
}

// RankingProvider fetches the current world ranking list from an upstream
// source. Implementations live outside this package.
type RankingProvider interface {
	FetchRankings(ctx context.Context) ([]ExternalRanking, error)
}

type RankingSyncService struct {
	provider   RankingProvider
	playerRepo player.Repository
	logger     *slog.Logger
}

// RankingSyncReport summarizes one sync pass over the upstream ranking feed.
type RankingSyncReport struct {
	Fetched int
	Updated int
	Skipped int
	Errors  []string
}

func NewRankingSyncService(provider RankingProvider, playerRepo player.Repository, logger *slog.Logger) *RankingSyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankingSyncService{provider: provider, playerRepo: playerRepo, logger: logger}
}

// SyncRankings pulls the upstream ranking list and patches each matched
// player's world ranking. Unmatched entries are skipped, not errors; the pass
// always runs to completion.
func (s *RankingSyncService) SyncRankings(ctx context.Context) (RankingSyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingSyncService.SyncRankings")
	defer span.End()

	rankings, err := s.provider.FetchRankings(ctx)
	if err != nil {
		return RankingSyncReport{}, fmt.Errorf("%w: fetch rankings: %v", ErrDependencyUnavailable, err)
	}

	report := RankingSyncReport{Fetched: len(rankings), Errors: make([]string, 0)}

	for _, entry := range rankings {
		if entry.Position <= 0 {
			report.Skipped++
			continue
		}

		target, found, err := resolvePlayer(ctx, s.playerRepo, entry.ExternalID, entry.Name)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", describeRanking(entry), err))
			continue
		}
		if !found {
			report.Skipped++
			continue
		}
		if target.Ranking != nil && *target.Ranking == entry.Position {
			report.Skipped++
			continue
		}

		position := entry.Position
		if err := s.playerRepo.Patch(ctx, target.ID, player.Patch{Ranking: &position}); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: patch player %s: %v", describeRanking(entry), target.ID, err))
			continue
		}
		report.Updated++
	}

	s.logger.InfoContext(ctx, "ranking sync finished",
		"fetched", report.Fetched,
		"updated", report.Updated,
		"skipped", report.Skipped,
		"errors", len(report.Errors),
	)

	return report, nil
}

func describeRanking(entry ExternalRanking) string {
	if id := strings.TrimSpace(entry.ExternalID); id != "" {
		return "external_id=" + id
	}
	return "name=" + strings.TrimSpace(entry.Name)
}
