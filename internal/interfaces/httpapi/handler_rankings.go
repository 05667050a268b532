package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fairwaylabs/golfdata/internal/usecase"
)

type rankingSyncReportDTO struct {
	Fetched int      `json:"fetched"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

func (h *Handler) SyncRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncRankings")
	defer span.End()

	if h.rankingSyncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: ranking provider is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	report, err := h.rankingSyncService.SyncRankings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "ranking sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingSyncReportDTO{
		Fetched: report.Fetched,
		Updated: report.Updated,
		Skipped: report.Skipped,
		Errors:  append([]string(nil), report.Errors...),
	})
}
