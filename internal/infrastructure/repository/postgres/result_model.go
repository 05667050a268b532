package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

type resultTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	PlayerID     string         `db:"player_public_id"`
	PlayerName   string         `db:"player_name"`
	Year         int            `db:"year"`
	Date         sql.NullString `db:"date"`
	Tournament   string         `db:"tournament"`
	Course       sql.NullString `db:"course"`
	Rounds       pq.StringArray `db:"rounds"`
	TotalScore   sql.NullInt64  `db:"total_score"`
	ToPar        sql.NullInt64  `db:"to_par"`
	DisplayScore sql.NullString `db:"display_score"`
	Overall      sql.NullString `db:"overall"`
	Earnings     sql.NullInt64  `db:"earnings"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row resultTableModel) toDomain() result.TournamentResult {
	return result.TournamentResult{
		ID:           row.PublicID,
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		Year:         row.Year,
		Date:         row.Date.String,
		Tournament:   row.Tournament,
		Course:       row.Course.String,
		Rounds:       []string(row.Rounds),
		TotalScore:   nullInt64ToIntPtr(row.TotalScore),
		ToPar:        nullInt64ToIntPtr(row.ToPar),
		DisplayScore: row.DisplayScore.String,
		Overall:      row.Overall.String,
		Earnings:     nullInt64ToInt64Ptr(row.Earnings),
	}
}

type resultInsertModel struct {
	PublicID     string         `db:"public_id"`
	PlayerID     string         `db:"player_public_id"`
	PlayerName   string         `db:"player_name"`
	Year         int            `db:"year"`
	Date         sql.NullString `db:"date"`
	Tournament   string         `db:"tournament"`
	Course       sql.NullString `db:"course"`
	Rounds       pq.StringArray `db:"rounds"`
	TotalScore   sql.NullInt64  `db:"total_score"`
	ToPar        sql.NullInt64  `db:"to_par"`
	DisplayScore sql.NullString `db:"display_score"`
	Overall      sql.NullString `db:"overall"`
	Earnings     sql.NullInt64  `db:"earnings"`
}

func resultToInsertModel(item result.TournamentResult) resultInsertModel {
	return resultInsertModel{
		PublicID:     item.ID,
		PlayerID:     item.PlayerID,
		PlayerName:   item.PlayerName,
		Year:         item.Year,
		Date:         nullString(item.Date),
		Tournament:   item.Tournament,
		Course:       nullString(item.Course),
		Rounds:       pq.StringArray(item.Rounds),
		TotalScore:   nullIntPtr(item.TotalScore),
		ToPar:        nullIntPtr(item.ToPar),
		DisplayScore: nullString(item.DisplayScore),
		Overall:      nullString(item.Overall),
		Earnings:     nullInt64Ptr(item.Earnings),
	}
}
