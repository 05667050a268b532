package ingest

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

var titleCaser = cases.Title(language.English)

// NormalizeFile reshapes one raw export payload into an ImportRecord. The
// filename supplies fallback identifier and name; explicit payload fields win
// when present. Malformed JSON is returned as an error so the batch importer
// can report it and continue with the remaining files.
func NormalizeFile(filename string, raw []byte) (ImportRecord, error) {
	var payload exportPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return ImportRecord{}, fmt.Errorf("parse export %s: %w", filepath.Base(filename), err)
	}

	playerID, name := ParseExportFilename(filename)
	if explicit := strings.TrimSpace(string(payload.PlayerID)); explicit != "" {
		playerID = explicit
	}
	if explicit := strings.TrimSpace(payload.Name); explicit != "" {
		name = explicit
	}
	if playerID == "" {
		return ImportRecord{}, fmt.Errorf("export %s: player id missing from payload and filename", filepath.Base(filename))
	}

	byYear := make(map[int][]result.TournamentResult)
	for _, row := range payload.Tournaments {
		year := FallbackYear
		if row.Year != nil && *row.Year > 0 {
			year = *row.Year
		}
		byYear[year] = append(byYear[year], normalizeTournament(playerID, name, year, row))
	}

	years := make([]YearGroup, 0, len(byYear))
	for year, results := range byYear {
		years = append(years, YearGroup{Year: year, Results: results})
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})

	return ImportRecord{
		PlayerID: playerID,
		Name:     name,
		Years:    years,
	}, nil
}

// normalizeTournament applies the omit-if-absent policy: optional fields stay
// zero/nil unless the export carries a real value, and the to-par sentinel is
// dropped rather than persisted.
func normalizeTournament(playerID, playerName string, year int, row exportTournament) result.TournamentResult {
	out := result.TournamentResult{
		PlayerID:     playerID,
		PlayerName:   playerName,
		Year:         year,
		Date:         strings.TrimSpace(row.Date),
		Tournament:   strings.TrimSpace(row.Tournament),
		DisplayScore: strings.TrimSpace(row.Score),
		Overall:      strings.TrimSpace(row.Overall),
	}

	if course := strings.TrimSpace(row.Course); course != "" {
		out.Course = course
	}
	if len(row.Rounds) > 0 {
		out.Rounds = append([]string(nil), row.Rounds...)
	}
	if row.TotalScore != nil {
		total := *row.TotalScore
		out.TotalScore = &total
	}
	if row.ToPar != nil && *row.ToPar != toParSentinel {
		toPar := *row.ToPar
		out.ToPar = &toPar
	}
	if row.Earnings != nil {
		earnings := *row.Earnings
		out.Earnings = &earnings
	}

	return out
}

// ParseExportFilename derives the fallback identifier and display name from
// the `{id}_{First}_{Last...}` convention, e.g. 10140_Xander_Schauffele.json
// yields ("10140", "Xander Schauffele"). Name tokens are title-cased.
func ParseExportFilename(filename string) (string, string) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := strings.Split(base, "_")
	if len(tokens) == 0 {
		return "", ""
	}

	playerID := strings.TrimSpace(tokens[0])
	words := make([]string, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		words = append(words, titleCaser.String(strings.ToLower(token)))
	}

	return playerID, strings.Join(words, " ")
}
