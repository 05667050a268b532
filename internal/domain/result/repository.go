package result

import "context"

// Repository describes tournament-result persistence needs from use cases.
// CountByPlayer backs the no-data-loss check: reconcile re-reads it right
// before any delete instead of trusting an earlier snapshot.
type Repository interface {
	CountByPlayer(ctx context.Context, playerID string) (int, error)
	ListByPlayer(ctx context.Context, playerID string) ([]TournamentResult, error)
	ListByPlayerAndYear(ctx context.Context, playerID string, year int) ([]TournamentResult, error)
	ListByYear(ctx context.Context, year int) ([]TournamentResult, error)
	ListByTournament(ctx context.Context, tournament string) ([]TournamentResult, error)
	InsertMany(ctx context.Context, items []TournamentResult) error
}
