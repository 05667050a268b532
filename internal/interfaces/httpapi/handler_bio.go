package httpapi

import (
	"net/http"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
)

type bioUpdatesRequest struct {
	Updates []bioUpdateItem `json:"updates" validate:"required,min=1,dive"`
}

// bioUpdateItem needs at least one lookup key; every biographical field is
// independently optional.
type bioUpdateItem struct {
	ExternalID  string `json:"externalId" validate:"required_without=Name"`
	Name        string `json:"name" validate:"required_without=ExternalID"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	BirthDate   string `json:"birthDate"`
	BirthPlace  string `json:"birthPlace"`
	College     string `json:"college"`
	Swing       string `json:"swing"`
	TurnedPro   int    `json:"turnedPro" validate:"omitempty,min=1850"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	PhotoURL    string `json:"photoUrl"`
	Ranking     *int   `json:"ranking" validate:"omitempty,min=1"`
}

type bioMergeReportDTO struct {
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

func (h *Handler) ApplyBioUpdates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyBioUpdates")
	defer span.End()

	var req bioUpdatesRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updates := make([]player.BioUpdate, 0, len(req.Updates))
	for _, item := range req.Updates {
		updates = append(updates, player.BioUpdate{
			ExternalID:  item.ExternalID,
			Name:        item.Name,
			Country:     item.Country,
			CountryCode: item.CountryCode,
			BirthDate:   item.BirthDate,
			BirthPlace:  item.BirthPlace,
			College:     item.College,
			Swing:       item.Swing,
			TurnedPro:   item.TurnedPro,
			Height:      item.Height,
			Weight:      item.Weight,
			PhotoURL:    item.PhotoURL,
			Ranking:     item.Ranking,
		})
	}

	report, err := h.bioMergeService.ApplyUpdates(ctx, updates)
	if err != nil {
		h.logger.WarnContext(ctx, "bio update batch failed", "records", len(updates), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bioMergeReportDTO{
		Updated: report.Updated,
		Skipped: report.Skipped,
		Errors:  append([]string(nil), report.Errors...),
	})
}
