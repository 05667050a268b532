package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fairwaylabs/golfdata/external/rankings"
	"github.com/fairwaylabs/golfdata/internal/config"
	"github.com/fairwaylabs/golfdata/internal/interfaces/httpapi"
	"github.com/fairwaylabs/golfdata/internal/platform/logging"
	"github.com/fairwaylabs/golfdata/internal/platform/resilience"
	"github.com/fairwaylabs/golfdata/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	playerRepo, resultRepo, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	playerSvc := usecase.NewPlayerService(playerRepo, resultRepo, logger)
	importSvc := usecase.NewImportService(logger)
	dedupSvc := usecase.NewDedupService(playerRepo, resultRepo, logger)
	reconcileSvc := usecase.NewReconcileService(playerRepo, resultRepo, dedupSvc, logger)
	bioMergeSvc := usecase.NewBioMergeService(playerRepo, logger)

	var rankingSyncSvc *usecase.RankingSyncService
	if cfg.RankingsEnabled {
		provider := rankings.NewClient(rankings.ClientConfig{
			BaseURL:    cfg.RankingsBaseURL,
			Token:      cfg.RankingsToken,
			Timeout:    cfg.RankingsTimeout,
			MaxRetries: cfg.RankingsMaxRetries,
			Logger:     logging.Default(),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.RankingsCircuitEnabled,
				FailureThreshold: cfg.RankingsCircuitFailureCount,
				OpenTimeout:      cfg.RankingsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.RankingsCircuitHalfOpenMaxReq,
			},
		})
		rankingSyncSvc = usecase.NewRankingSyncService(provider, playerRepo, logger)
	}

	handler := httpapi.NewHandler(
		playerSvc,
		importSvc,
		dedupSvc,
		reconcileSvc,
		bioMergeSvc,
		rankingSyncSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
