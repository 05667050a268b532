package memory

import (
	"github.com/fairwaylabs/golfdata/internal/domain/player"
	"github.com/fairwaylabs/golfdata/internal/domain/result"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID:          "plr-10140",
			ExternalID:  "10140",
			Name:        "Xander Schauffele",
			FirstName:   "Xander",
			LastName:    "Schauffele",
			Country:     "United States",
			CountryCode: "USA",
			BirthDate:   "1993-10-25",
			BirthPlace:  "San Diego, California",
			College:     "San Diego State University",
			Swing:       "Right",
			TurnedPro:   2015,
			Height:      "5 ft 10 in",
			Weight:      "175 lbs",
			Ranking:     intPtr(3),
		},
		{
			ID:          "plr-8793",
			ExternalID:  "8793",
			Name:        "Rory McIlroy",
			FirstName:   "Rory",
			LastName:    "McIlroy",
			Country:     "Northern Ireland",
			CountryCode: "NIR",
			BirthDate:   "1989-05-04",
			BirthPlace:  "Holywood, County Down",
			Swing:       "Right",
			TurnedPro:   2007,
			Ranking:     intPtr(2),
		},
		{
			ID:          "plr-46046",
			ExternalID:  "46046",
			Name:        "Scottie Scheffler",
			FirstName:   "Scottie",
			LastName:    "Scheffler",
			Country:     "United States",
			CountryCode: "USA",
			College:     "University of Texas",
			Swing:       "Right",
			TurnedPro:   2018,
			Ranking:     intPtr(1),
		},
		{
			ID:      "plr-legacy-01",
			Name:    "Ludvig Aberg",
			Country: player.CountryUnknown,
		},
	}
}

func SeedResults() []result.TournamentResult {
	return []result.TournamentResult{
		{
			ID:           "res-0001",
			PlayerID:     "plr-10140",
			PlayerName:   "Xander Schauffele",
			Year:         2024,
			Date:         "May 16-19",
			Tournament:   "PGA Championship",
			Course:       "Valhalla Golf Club",
			Rounds:       []string{"62", "68", "68", "65"},
			TotalScore:   intPtr(263),
			ToPar:        intPtr(-21),
			DisplayScore: "-21",
			Overall:      "1",
			Earnings:     int64Ptr(330_000_000),
		},
		{
			ID:           "res-0002",
			PlayerID:     "plr-10140",
			PlayerName:   "Xander Schauffele",
			Year:         2024,
			Date:         "Jul 18-21",
			Tournament:   "The Open Championship",
			Course:       "Royal Troon",
			Rounds:       []string{"69", "72", "69", "65"},
			TotalScore:   intPtr(275),
			ToPar:        intPtr(-9),
			DisplayScore: "-9",
			Overall:      "1",
			Earnings:     int64Ptr(310_000_000),
		},
		{
			ID:           "res-0003",
			PlayerID:     "plr-8793",
			PlayerName:   "Rory McIlroy",
			Year:         2025,
			Date:         "Apr 10-13",
			Tournament:   "Masters Tournament",
			Course:       "Augusta National",
			Rounds:       []string{"72", "66", "66", "73"},
			TotalScore:   intPtr(277),
			ToPar:        intPtr(-11),
			DisplayScore: "-11",
			Overall:      "1",
			Earnings:     int64Ptr(420_000_000),
		},
		{
			ID:         "res-0004",
			PlayerID:   "plr-46046",
			PlayerName: "Scottie Scheffler",
			Year:       2025,
			Date:       "May 15-18",
			Tournament: "PGA Championship",
			Course:     "Quail Hollow",
			Overall:    "1",
		},
	}
}
