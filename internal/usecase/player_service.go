package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

type PlayerService struct {
	playerRepo player.Repository
	resultRepo result.Repository
	logger     *slog.Logger
}

// PlayerDetail is one player together with their full tournament history.
type PlayerDetail struct {
	Player  player.Player
	Results []result.TournamentResult
}

// PlayerSummary is the list projection: one player plus the denormalized
// count of their tournament results.
type PlayerSummary struct {
	Player      player.Player
	ResultCount int
}

func NewPlayerService(playerRepo player.Repository, resultRepo result.Repository, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerService{playerRepo: playerRepo, resultRepo: resultRepo, logger: logger}
}

// SearchPlayers lists players filtered by a case-insensitive name substring
// (empty query matches everyone), each annotated with their dependent result
// count. Matching stays exact-substring; no fuzzy comparison.
func (s *PlayerService) SearchPlayers(ctx context.Context, query string) ([]PlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	needle := player.NormalizeName(query)
	summaries := make([]PlayerSummary, 0, len(players))
	for _, p := range players {
		if needle != "" && !strings.Contains(player.NormalizeName(p.Name), needle) {
			continue
		}
		count, err := s.resultRepo.CountByPlayer(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("count results for player %s: %w", p.ID, err)
		}
		summaries = append(summaries, PlayerSummary{Player: p, ResultCount: count})
	}

	return summaries, nil
}

// GetPlayer loads one player and their tournament results.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerDetail{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	found, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player %s: %w", playerID, err)
	}
	if !ok {
		return PlayerDetail{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	results, err := s.resultRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list results for player %s: %w", playerID, err)
	}

	return PlayerDetail{Player: found, Results: results}, nil
}

// GetPlayerResultsByYear loads one player's results for a single season.
func (s *PlayerService) GetPlayerResultsByYear(ctx context.Context, playerID string, year int) ([]result.TournamentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerResultsByYear")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be greater than zero", ErrInvalidInput)
	}

	_, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player %s: %w", playerID, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	results, err := s.resultRepo.ListByPlayerAndYear(ctx, playerID, year)
	if err != nil {
		return nil, fmt.Errorf("list results for player %s year %d: %w", playerID, year, err)
	}
	return results, nil
}
