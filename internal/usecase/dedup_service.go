package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

const maxCountWorkers = 8

type DedupService struct {
	playerRepo player.Repository
	resultRepo result.Repository
	logger     *slog.Logger
}

// DuplicateReport is one full duplicate scan over the player store. Clusters
// are grouped two ways: shared external identifier and normalized display
// name. MissingExternalID lists the players neither grouping can anchor.
type DuplicateReport struct {
	ByExternalID      []player.DuplicateCluster
	ByName            []player.DuplicateCluster
	MissingExternalID []player.Player
}

func NewDedupService(playerRepo player.Repository, resultRepo result.Repository, logger *slog.Logger) *DedupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DedupService{playerRepo: playerRepo, resultRepo: resultRepo, logger: logger}
}

// FindDuplicates scans every player, builds duplicate clusters on both
// natural keys, and annotates each cluster member with its live dependent
// result count. Members arrive sorted descending by count so the canonical
// player is always first.
func (s *DedupService) FindDuplicates(ctx context.Context) (DuplicateReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DedupService.FindDuplicates")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return DuplicateReport{}, fmt.Errorf("list players: %w", err)
	}

	report := DuplicateReport{
		ByExternalID:      player.ClustersByExternalID(players),
		ByName:            player.ClustersByName(players),
		MissingExternalID: player.WithoutExternalID(players),
	}

	if err := s.annotateResultCounts(ctx, report.ByExternalID, report.ByName); err != nil {
		return DuplicateReport{}, err
	}

	for _, clusters := range [][]player.DuplicateCluster{report.ByExternalID, report.ByName} {
		for i := range clusters {
			player.SortMembersByResultCount(clusters[i].Members)
		}
	}

	s.logger.InfoContext(ctx, "duplicate scan finished",
		"players", len(players),
		"external_id_clusters", len(report.ByExternalID),
		"name_clusters", len(report.ByName),
		"missing_external_id", len(report.MissingExternalID),
	)

	return report, nil
}

// annotateResultCounts fans the per-player count queries out on a bounded
// pool. Counts are fetched once per player and written to every cluster
// member that references it.
func (s *DedupService) annotateResultCounts(ctx context.Context, clusterSets ...[]player.DuplicateCluster) error {
	ids := make(map[string]struct{})
	for _, clusters := range clusterSets {
		for _, cluster := range clusters {
			for _, member := range cluster.Members {
				ids[member.Player.ID] = struct{}{}
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var mu sync.Mutex
	counts := make(map[string]int, len(ids))

	workers := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(maxCountWorkers)
	for id := range ids {
		id := id
		workers.Go(func(ctx context.Context) error {
			count, err := s.resultRepo.CountByPlayer(ctx, id)
			if err != nil {
				return fmt.Errorf("count results for player %s: %w", id, err)
			}
			mu.Lock()
			counts[id] = count
			mu.Unlock()
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return err
	}

	for _, clusters := range clusterSets {
		for i := range clusters {
			for j := range clusters[i].Members {
				clusters[i].Members[j].ResultCount = counts[clusters[i].Members[j].Player.ID]
			}
		}
	}

	return nil
}
