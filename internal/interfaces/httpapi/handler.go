package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

type Handler struct {
	playerService      *usecase.PlayerService
	importService      *usecase.ImportService
	dedupService       *usecase.DedupService
	reconcileService   *usecase.ReconcileService
	bioMergeService    *usecase.BioMergeService
	rankingSyncService *usecase.RankingSyncService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	importService *usecase.ImportService,
	dedupService *usecase.DedupService,
	reconcileService *usecase.ReconcileService,
	bioMergeService *usecase.BioMergeService,
	rankingSyncService *usecase.RankingSyncService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		playerService:      playerService,
		importService:      importService,
		dedupService:       dedupService,
		reconcileService:   reconcileService,
		bioMergeService:    bioMergeService,
		rankingSyncService: rankingSyncService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSONBody(body io.Reader, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type playerDTO struct {
	ID          string `json:"id"`
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	BirthDate   string `json:"birthDate"`
	BirthPlace  string `json:"birthPlace"`
	College     string `json:"college"`
	Swing       string `json:"swing"`
	TurnedPro   int    `json:"turnedPro"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	PhotoURL    string `json:"photoUrl"`
	Ranking     *int   `json:"ranking"`
}

type resultDTO struct {
	ID           string   `json:"id"`
	PlayerID     string   `json:"playerId"`
	PlayerName   string   `json:"playerName"`
	Year         int      `json:"year"`
	Date         string   `json:"date"`
	Tournament   string   `json:"tournament"`
	Course       string   `json:"course"`
	Rounds       []string `json:"rounds"`
	TotalScore   *int     `json:"totalScore"`
	ToPar        *int     `json:"toPar"`
	DisplayScore string   `json:"displayScore"`
	Overall      string   `json:"overall"`
	Earnings     *int64   `json:"earnings"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:          v.ID,
		ExternalID:  v.ExternalID,
		Name:        v.Name,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Country:     v.Country,
		CountryCode: v.CountryCode,
		BirthDate:   v.BirthDate,
		BirthPlace:  v.BirthPlace,
		College:     v.College,
		Swing:       v.Swing,
		TurnedPro:   v.TurnedPro,
		Height:      v.Height,
		Weight:      v.Weight,
		PhotoURL:    v.PhotoURL,
		Ranking:     v.Ranking,
	}
}

// resultToDTO keeps nullable score fields as pointers so an unknown value
// serializes as JSON null rather than a fake zero.
func resultToDTO(ctx context.Context, v result.TournamentResult) resultDTO {
	ctx, span := startSpan(ctx, "httpapi.resultToDTO")
	defer span.End()

	return resultDTO{
		ID:           v.ID,
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		Year:         v.Year,
		Date:         v.Date,
		Tournament:   v.Tournament,
		Course:       v.Course,
		Rounds:       append([]string(nil), v.Rounds...),
		TotalScore:   v.TotalScore,
		ToPar:        v.ToPar,
		DisplayScore: v.DisplayScore,
		Overall:      v.Overall,
		Earnings:     v.Earnings,
	}
}
