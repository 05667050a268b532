package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
	qb "github.com/fairwaylabs/golfdata/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", id))
}

func (r *PlayerRepository) GetByExternalID(ctx context.Context, externalID string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("external_id", externalID))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

// FindByNameInsensitive matches on LOWER(name); the migration ships an
// expression index so this does not walk the table.
func (r *PlayerRepository) FindByNameInsensitive(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.EqFold("name", strings.TrimSpace(name)))
}

func (r *PlayerRepository) getOne(ctx context.Context, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(cond, qb.IsNull("deleted_at")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerToInsertModel(item), "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player %s: %w", item.ID, err)
	}

	return nil
}

func (r *PlayerRepository) Patch(ctx context.Context, id string, patch player.Patch) error {
	if patch.IsEmpty() {
		return nil
	}

	builder := qb.Update("players")
	setStringPtr(builder, "country", patch.Country)
	setStringPtr(builder, "country_code", patch.CountryCode)
	setStringPtr(builder, "birth_date", patch.BirthDate)
	setStringPtr(builder, "birth_place", patch.BirthPlace)
	setStringPtr(builder, "college", patch.College)
	setStringPtr(builder, "swing", patch.Swing)
	setStringPtr(builder, "height", patch.Height)
	setStringPtr(builder, "weight", patch.Weight)
	setStringPtr(builder, "photo_url", patch.PhotoURL)
	if patch.TurnedPro != nil {
		builder.Set("turned_pro", *patch.TurnedPro)
	}
	if patch.Ranking != nil {
		builder.Set("ranking", *patch.Ranking)
	}

	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build patch player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("patch player %s: %w", id, err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}

	return nil
}

func setStringPtr(builder *qb.UpdateBuilder, column string, value *string) {
	if value == nil {
		return
	}
	builder.Set(column, *value)
}
