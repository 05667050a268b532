package ingest

import (
	"bytes"
	"fmt"
	"strconv"

	sonic "github.com/bytedance/sonic"

	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

const (
	// FallbackYear groups appearances whose export row carries no year.
	FallbackYear = 9999

	// toParSentinel is the upstream "no data" marker for to-par. It is
	// suppressed on import so the placeholder never gets persisted.
	toParSentinel = -78
)

// exportPayload is the raw shape of one per-player export file. The explicit
// player fields are optional; the filename is the fallback source of truth.
type exportPayload struct {
	PlayerID    flexibleID         `json:"player_id"`
	Name        string             `json:"name"`
	Tournaments []exportTournament `json:"tournaments"`
}

type exportTournament struct {
	Year       *int     `json:"year"`
	Date       string   `json:"date"`
	Tournament string   `json:"tournament"`
	Course     string   `json:"course"`
	Rounds     []string `json:"rounds"`
	TotalScore *int     `json:"total_score"`
	ToPar      *int     `json:"to_par"`
	Score      string   `json:"score"`
	Overall    string   `json:"overall"`
	Earnings   *int64   `json:"earnings"`
}

// flexibleID accepts either a JSON string or number; older exports carried
// the upstream id as a bare number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n int64
	if err := sonic.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("player_id must be a string or number: %w", err)
	}
	*f = flexibleID(strconv.FormatInt(n, 10))
	return nil
}

// YearGroup holds one season's tournament results, ascending by year inside
// an ImportRecord.
type YearGroup struct {
	Year    int
	Results []result.TournamentResult
}

// ImportRecord is the normalized output for one export file. It is consumed
// by the storage write path immediately after construction and discarded.
type ImportRecord struct {
	PlayerID string
	Name     string
	Years    []YearGroup
}
