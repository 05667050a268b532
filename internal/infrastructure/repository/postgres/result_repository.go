package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfdata/internal/domain/result"
	qb "github.com/fairwaylabs/golfdata/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

var resultInsertColumns = []string{
	"public_id",
	"player_public_id",
	"player_name",
	"year",
	"date",
	"tournament",
	"course",
	"rounds",
	"total_score",
	"to_par",
	"display_score",
	"overall",
	"earnings",
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("tournament_results").
		Where(qb.Eq("player_public_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count results query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count results for player %s: %w", playerID, err)
	}

	return count, nil
}

func (r *ResultRepository) ListByPlayer(ctx context.Context, playerID string) ([]result.TournamentResult, error) {
	return r.list(ctx, qb.Eq("player_public_id", playerID))
}

func (r *ResultRepository) ListByPlayerAndYear(ctx context.Context, playerID string, year int) ([]result.TournamentResult, error) {
	return r.list(ctx, qb.Eq("player_public_id", playerID), qb.Eq("year", year))
}

func (r *ResultRepository) ListByYear(ctx context.Context, year int) ([]result.TournamentResult, error) {
	return r.list(ctx, qb.Eq("year", year))
}

func (r *ResultRepository) ListByTournament(ctx context.Context, tournament string) ([]result.TournamentResult, error) {
	return r.list(ctx, qb.Eq("tournament", tournament))
}

func (r *ResultRepository) list(ctx context.Context, conditions ...qb.Condition) ([]result.TournamentResult, error) {
	query, args, err := qb.Select("*").From("tournament_results").
		Where(conditions...).
		OrderBy("year", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	out := make([]result.TournamentResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *ResultRepository) InsertMany(ctx context.Context, items []result.TournamentResult) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("tournament_results").Columns(resultInsertColumns...)
	for _, item := range items {
		row := resultToInsertModel(item)
		builder.Values(
			row.PublicID,
			row.PlayerID,
			row.PlayerName,
			row.Year,
			row.Date,
			row.Tournament,
			row.Course,
			row.Rounds,
			row.TotalScore,
			row.ToPar,
			row.DisplayScore,
			row.Overall,
			row.Earnings,
		)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert results query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %d results: %w", len(items), err)
	}

	return nil
}
