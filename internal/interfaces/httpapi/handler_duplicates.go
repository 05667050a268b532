package httpapi

import (
	"context"
	"net/http"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

type duplicateReportDTO struct {
	ByExternalID      []duplicateClusterDTO `json:"byExternalId"`
	ByName            []duplicateClusterDTO `json:"byName"`
	MissingExternalID []playerDTO           `json:"missingExternalId"`
}

type duplicateClusterDTO struct {
	Key     string             `json:"key"`
	Members []clusterMemberDTO `json:"members"`
}

type clusterMemberDTO struct {
	Player      playerDTO `json:"player"`
	ResultCount int       `json:"resultCount"`
}

type cleanupReportDTO struct {
	Clusters int               `json:"clusters"`
	Deleted  []cleanupEntryDTO `json:"deleted"`
	Retained []cleanupEntryDTO `json:"retained"`
}

type cleanupEntryDTO struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	ExternalID  string `json:"externalId"`
	ResultCount int    `json:"resultCount"`
	Reason      string `json:"reason"`
}

func (h *Handler) ListDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDuplicates")
	defer span.End()

	report, err := h.dedupService.FindDuplicates(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "duplicate scan failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	missing := make([]playerDTO, 0, len(report.MissingExternalID))
	for _, p := range report.MissingExternalID {
		missing = append(missing, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, duplicateReportDTO{
		ByExternalID:      clustersToDTO(ctx, report.ByExternalID),
		ByName:            clustersToDTO(ctx, report.ByName),
		MissingExternalID: missing,
	})
}

func (h *Handler) CleanupDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CleanupDuplicates")
	defer span.End()

	report, err := h.reconcileService.CleanupDuplicates(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "duplicate cleanup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cleanupReportDTO{
		Clusters: report.Clusters,
		Deleted:  cleanupEntriesToDTO(ctx, report.Deleted),
		Retained: cleanupEntriesToDTO(ctx, report.Retained),
	})
}

func clustersToDTO(ctx context.Context, clusters []player.DuplicateCluster) []duplicateClusterDTO {
	ctx, span := startSpan(ctx, "httpapi.clustersToDTO")
	defer span.End()

	out := make([]duplicateClusterDTO, 0, len(clusters))
	for _, cluster := range clusters {
		members := make([]clusterMemberDTO, 0, len(cluster.Members))
		for _, member := range cluster.Members {
			members = append(members, clusterMemberDTO{
				Player:      playerToDTO(ctx, member.Player),
				ResultCount: member.ResultCount,
			})
		}
		out = append(out, duplicateClusterDTO{Key: cluster.Key, Members: members})
	}

	return out
}

func cleanupEntriesToDTO(ctx context.Context, entries []usecase.CleanupEntry) []cleanupEntryDTO {
	ctx, span := startSpan(ctx, "httpapi.cleanupEntriesToDTO")
	defer span.End()

	out := make([]cleanupEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, cleanupEntryDTO{
			PlayerID:    entry.PlayerID,
			Name:        entry.Name,
			ExternalID:  entry.ExternalID,
			ResultCount: entry.ResultCount,
			Reason:      entry.Reason,
		})
	}

	return out
}
