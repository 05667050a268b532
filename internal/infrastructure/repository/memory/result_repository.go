package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

type ResultRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]result.TournamentResult
}

func NewResultRepository(results []result.TournamentResult) *ResultRepository {
	byPlayer := make(map[string][]result.TournamentResult)
	for _, res := range results {
		byPlayer[res.PlayerID] = append(byPlayer[res.PlayerID], res)
	}

	return &ResultRepository{byPlayer: byPlayer}
}

func (r *ResultRepository) CountByPlayer(_ context.Context, playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byPlayer[playerID]), nil
}

func (r *ResultRepository) ListByPlayer(_ context.Context, playerID string) ([]result.TournamentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]result.TournamentResult(nil), r.byPlayer[playerID]...)
	sortResults(out)

	return out, nil
}

func (r *ResultRepository) ListByPlayerAndYear(_ context.Context, playerID string, year int) ([]result.TournamentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.TournamentResult, 0)
	for _, res := range r.byPlayer[playerID] {
		if res.Year == year {
			out = append(out, res)
		}
	}
	sortResults(out)

	return out, nil
}

func (r *ResultRepository) ListByYear(_ context.Context, year int) ([]result.TournamentResult, error) {
	return r.listWhere(func(res result.TournamentResult) bool {
		return res.Year == year
	})
}

func (r *ResultRepository) ListByTournament(_ context.Context, tournament string) ([]result.TournamentResult, error) {
	return r.listWhere(func(res result.TournamentResult) bool {
		return res.Tournament == tournament
	})
}

func (r *ResultRepository) listWhere(keep func(result.TournamentResult) bool) ([]result.TournamentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.TournamentResult, 0)
	for _, results := range r.byPlayer {
		for _, res := range results {
			if keep(res) {
				out = append(out, res)
			}
		}
	}
	sortResults(out)

	return out, nil
}

func (r *ResultRepository) InsertMany(_ context.Context, items []result.TournamentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.byPlayer[item.PlayerID] = append(r.byPlayer[item.PlayerID], item)
	}

	return nil
}

func sortResults(results []result.TournamentResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Year != results[j].Year {
			return results[i].Year < results[j].Year
		}
		if results[i].Tournament != results[j].Tournament {
			return results[i].Tournament < results[j].Tournament
		}
		return results[i].ID < results[j].ID
	})
}
