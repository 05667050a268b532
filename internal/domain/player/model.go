package player

import (
	"fmt"
	"strings"
)

// CountryUnknown is the placeholder stored historically when a player's
// country was never resolved. Merge logic treats it the same as an empty
// country so real values can replace it.
const CountryUnknown = "Unknown"

// Player is the canonical record for one golfer. At most one Player should
// exist per ExternalID in steady state; duplicates are detected and repaired
// by the reconcile pass, not rejected at write time.
type Player struct {
	ID          string
	ExternalID  string
	Name        string
	FirstName   string
	LastName    string
	Country     string
	CountryCode string
	BirthDate   string
	BirthPlace  string
	College     string
	Swing       string
	TurnedPro   int
	Height      string
	Weight      string
	PhotoURL    string
	Ranking     *int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Country) == "" {
		return fmt.Errorf("player country is required")
	}

	return nil
}

// HasCountry reports whether the stored country is a real value rather than
// empty or the legacy "Unknown" placeholder.
func (p Player) HasCountry() bool {
	country := strings.TrimSpace(p.Country)
	return country != "" && country != CountryUnknown
}

// SplitName derives first/last name from a display name: the first word is
// the first name, everything after it the last name.
func SplitName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
