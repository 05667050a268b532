package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fairwaylabs/golfdata/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	summaries, err := h.playerService.SearchPlayers(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "q", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, playerSummaryDTO{
			Player:      playerToDTO(ctx, summary.Player),
			ResultCount: summary.ResultCount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	detail, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	results := make([]resultDTO, 0, len(detail.Results))
	for _, res := range detail.Results {
		results = append(results, resultToDTO(ctx, res))
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		Player:  playerToDTO(ctx, detail.Player),
		Results: results,
	})
}

func (h *Handler) ListPlayerResultsByYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerResultsByYear")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	rawYear := strings.TrimSpace(r.URL.Query().Get("year"))
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: year query parameter must be an integer", usecase.ErrInvalidInput))
		return
	}

	results, err := h.playerService.GetPlayerResultsByYear(ctx, playerID, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list player results failed", "player_id", playerID, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, res := range results {
		items = append(items, resultToDTO(ctx, res))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// DeletePlayer refuses to remove a player who still owns tournament results;
// that surfaces as a 409 to the caller.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.reconcileService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": playerID})
}

type playerDetailDTO struct {
	Player  playerDTO   `json:"player"`
	Results []resultDTO `json:"results"`
}

type playerSummaryDTO struct {
	Player      playerDTO `json:"player"`
	ResultCount int       `json:"resultCount"`
}
