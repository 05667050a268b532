package result

import (
	"fmt"
	"strings"
)

// TournamentResult is one tournament appearance for one player. PlayerName is
// denormalized so reconciliation and reporting never need a join back to the
// players table for display.
//
// Earnings is nil when unknown. Zero is a valid, distinct real amount and is
// never used as a default.
type TournamentResult struct {
	ID           string
	PlayerID     string
	PlayerName   string
	Year         int
	Date         string
	Tournament   string
	Course       string
	Rounds       []string
	TotalScore   *int
	ToPar        *int
	DisplayScore string
	Overall      string
	Earnings     *int64
}

func (r TournamentResult) Validate() error {
	if strings.TrimSpace(r.PlayerID) == "" {
		return fmt.Errorf("result player id is required")
	}
	if strings.TrimSpace(r.Tournament) == "" {
		return fmt.Errorf("result tournament name is required")
	}
	if r.Year <= 0 {
		return fmt.Errorf("result year must be greater than zero")
	}

	return nil
}
