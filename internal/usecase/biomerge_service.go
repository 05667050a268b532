package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
)

type BioMergeService struct {
	playerRepo player.Repository
	logger     *slog.Logger
}

// BioMergeReport summarizes one batch of biographical updates. The batch
// always runs to completion; per-record failures land in Errors.
type BioMergeReport struct {
	Updated int
	Skipped int
	Errors  []string
}

func NewBioMergeService(playerRepo player.Repository, logger *slog.Logger) *BioMergeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BioMergeService{playerRepo: playerRepo, logger: logger}
}

// ApplyUpdates merges a batch of biographical records into existing players.
// Each record resolves its target through the three-tier lookup; a record
// whose player cannot be found, or whose computed patch is empty, is skipped.
func (s *BioMergeService) ApplyUpdates(ctx context.Context, updates []player.BioUpdate) (BioMergeReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BioMergeService.ApplyUpdates")
	defer span.End()

	report := BioMergeReport{Errors: make([]string, 0)}

	for i, update := range updates {
		target, found, err := resolvePlayer(ctx, s.playerRepo, update.ExternalID, update.Name)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("record %d (%s): %v", i, describeUpdate(update), err))
			continue
		}
		if !found {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("record %d (%s): no matching player", i, describeUpdate(update)))
			continue
		}

		patch := player.BuildBioPatch(target, update)
		if patch.IsEmpty() {
			report.Skipped++
			continue
		}

		if err := s.playerRepo.Patch(ctx, target.ID, patch); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("record %d (%s): patch player %s: %v", i, describeUpdate(update), target.ID, err))
			continue
		}
		report.Updated++
	}

	s.logger.InfoContext(ctx, "bio merge finished",
		"records", len(updates),
		"updated", report.Updated,
		"skipped", report.Skipped,
		"errors", len(report.Errors),
	)

	return report, nil
}

func describeUpdate(update player.BioUpdate) string {
	if id := strings.TrimSpace(update.ExternalID); id != "" {
		return "external_id=" + id
	}
	if name := strings.TrimSpace(update.Name); name != "" {
		return "name=" + name
	}
	return "unidentified"
}

// resolvePlayer finds the player an incoming record refers to: external ID
// first, then the exact name index, then a case-insensitive scan. The scan is
// the expensive last resort and only runs when both indexes miss.
func resolvePlayer(ctx context.Context, repo player.Repository, externalID, name string) (player.Player, bool, error) {
	if externalID = strings.TrimSpace(externalID); externalID != "" {
		found, ok, err := repo.GetByExternalID(ctx, externalID)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("lookup by external id %s: %w", externalID, err)
		}
		if ok {
			return found, true, nil
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, false, nil
	}

	found, ok, err := repo.GetByName(ctx, name)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("lookup by name %q: %w", name, err)
	}
	if ok {
		return found, true, nil
	}

	found, ok, err = repo.FindByNameInsensitive(ctx, name)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("case-insensitive lookup by name %q: %w", name, err)
	}
	return found, ok, nil
}
