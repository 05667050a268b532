package postgres

import (
	"database/sql"
	"time"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
)

type playerTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	ExternalID  sql.NullString `db:"external_id"`
	Name        string         `db:"name"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Country     string         `db:"country"`
	CountryCode sql.NullString `db:"country_code"`
	BirthDate   sql.NullString `db:"birth_date"`
	BirthPlace  sql.NullString `db:"birth_place"`
	College     sql.NullString `db:"college"`
	Swing       sql.NullString `db:"swing"`
	TurnedPro   sql.NullInt64  `db:"turned_pro"`
	Height      sql.NullString `db:"height"`
	Weight      sql.NullString `db:"weight"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Ranking     sql.NullInt64  `db:"ranking"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          row.PublicID,
		ExternalID:  row.ExternalID.String,
		Name:        row.Name,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Country:     row.Country,
		CountryCode: row.CountryCode.String,
		BirthDate:   row.BirthDate.String,
		BirthPlace:  row.BirthPlace.String,
		College:     row.College.String,
		Swing:       row.Swing.String,
		TurnedPro:   int(row.TurnedPro.Int64),
		Height:      row.Height.String,
		Weight:      row.Weight.String,
		PhotoURL:    row.PhotoURL.String,
		Ranking:     nullInt64ToIntPtr(row.Ranking),
	}
}

type playerInsertModel struct {
	PublicID    string         `db:"public_id"`
	ExternalID  sql.NullString `db:"external_id"`
	Name        string         `db:"name"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Country     string         `db:"country"`
	CountryCode sql.NullString `db:"country_code"`
	BirthDate   sql.NullString `db:"birth_date"`
	BirthPlace  sql.NullString `db:"birth_place"`
	College     sql.NullString `db:"college"`
	Swing       sql.NullString `db:"swing"`
	TurnedPro   sql.NullInt64  `db:"turned_pro"`
	Height      sql.NullString `db:"height"`
	Weight      sql.NullString `db:"weight"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Ranking     sql.NullInt64  `db:"ranking"`
}

func playerToInsertModel(item player.Player) playerInsertModel {
	return playerInsertModel{
		PublicID:    item.ID,
		ExternalID:  nullString(item.ExternalID),
		Name:        item.Name,
		FirstName:   item.FirstName,
		LastName:    item.LastName,
		Country:     item.Country,
		CountryCode: nullString(item.CountryCode),
		BirthDate:   nullString(item.BirthDate),
		BirthPlace:  nullString(item.BirthPlace),
		College:     nullString(item.College),
		Swing:       nullString(item.Swing),
		TurnedPro:   nullPositiveInt(item.TurnedPro),
		Height:      nullString(item.Height),
		Weight:      nullString(item.Weight),
		PhotoURL:    nullString(item.PhotoURL),
		Ranking:     nullIntPtr(item.Ranking),
	}
}
