package httpapi

import (
	"context"
	"net/http"

	"github.com/fairwaylabs/golfdata/internal/ingest"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

type importRequest struct {
	Directory string `json:"directory" validate:"required"`
	BatchSize int    `json:"batchSize" validate:"omitempty,min=1"`
}

type importSummaryDTO struct {
	TotalFiles  int               `json:"totalFiles"`
	ParsedFiles int               `json:"parsedFiles"`
	BatchSize   int               `json:"batchSize"`
	Records     []importRecordDTO `json:"records"`
	Failures    []string          `json:"failures"`
}

type importRecordDTO struct {
	PlayerID string         `json:"playerId"`
	Name     string         `json:"name"`
	Years    []yearGroupDTO `json:"years"`
}

type yearGroupDTO struct {
	Year    int         `json:"year"`
	Results []resultDTO `json:"results"`
}

func (h *Handler) RunImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunImport")
	defer span.End()

	var req importRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.importService.ImportDirectory(ctx, req.Directory, req.BatchSize)
	if err != nil {
		h.logger.WarnContext(ctx, "import directory failed", "dir", req.Directory, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importSummaryToDTO(ctx, summary))
}

func importSummaryToDTO(ctx context.Context, summary usecase.ImportSummary) importSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.importSummaryToDTO")
	defer span.End()

	records := make([]importRecordDTO, 0, len(summary.Records))
	for _, record := range summary.Records {
		records = append(records, importRecordToDTO(ctx, record))
	}

	return importSummaryDTO{
		TotalFiles:  summary.TotalFiles,
		ParsedFiles: summary.ParsedFiles,
		BatchSize:   summary.BatchSize,
		Records:     records,
		Failures:    append([]string(nil), summary.Failures...),
	}
}

func importRecordToDTO(ctx context.Context, record ingest.ImportRecord) importRecordDTO {
	ctx, span := startSpan(ctx, "httpapi.importRecordToDTO")
	defer span.End()

	years := make([]yearGroupDTO, 0, len(record.Years))
	for _, group := range record.Years {
		results := make([]resultDTO, 0, len(group.Results))
		for _, res := range group.Results {
			results = append(results, resultToDTO(ctx, res))
		}
		years = append(years, yearGroupDTO{Year: group.Year, Results: results})
	}

	return importRecordDTO{
		PlayerID: record.PlayerID,
		Name:     record.Name,
		Years:    years,
	}
}
