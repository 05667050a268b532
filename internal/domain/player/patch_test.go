package player

import "testing"

func TestBuildBioPatch_CountryOverwritesOnlyPlaceholder(t *testing.T) {
	t.Parallel()

	unknown := Player{ID: "p1", Name: "Ludvig Aberg", Country: CountryUnknown}
	patch := BuildBioPatch(unknown, BioUpdate{Country: "Sweden", CountryCode: "SWE"})
	if patch.Country == nil || *patch.Country != "Sweden" {
		t.Fatalf("expected country patch Sweden, got %v", patch.Country)
	}
	if patch.CountryCode == nil || *patch.CountryCode != "SWE" {
		t.Fatalf("expected country code patch SWE, got %v", patch.CountryCode)
	}

	populated := Player{ID: "p1", Name: "Ludvig Aberg", Country: "Sweden"}
	patch = BuildBioPatch(populated, BioUpdate{Country: "Norway"})
	if patch.Country != nil {
		t.Fatalf("populated country must never be overwritten, got %v", *patch.Country)
	}

	empty := Player{ID: "p2", Name: "Unknown Golfer"}
	patch = BuildBioPatch(empty, BioUpdate{Country: "Spain"})
	if patch.Country == nil || *patch.Country != "Spain" {
		t.Fatalf("empty country should accept incoming value, got %v", patch.Country)
	}
}

func TestBuildBioPatch_BlankAndNonPositiveFieldsExcluded(t *testing.T) {
	t.Parallel()

	existing := Player{ID: "p1", Name: "Xander Schauffele", Country: "United States"}
	patch := BuildBioPatch(existing, BioUpdate{
		College:   "   ",
		Swing:     "Right",
		TurnedPro: 0,
		Height:    "",
		Weight:    "175 lbs",
	})

	if patch.College != nil {
		t.Fatalf("blank college must be excluded, got %v", *patch.College)
	}
	if patch.Swing == nil || *patch.Swing != "Right" {
		t.Fatalf("expected swing patch, got %v", patch.Swing)
	}
	if patch.TurnedPro != nil {
		t.Fatalf("non-positive turned-pro must be excluded, got %v", *patch.TurnedPro)
	}
	if patch.Weight == nil || *patch.Weight != "175 lbs" {
		t.Fatalf("expected weight patch, got %v", patch.Weight)
	}
}

func TestBuildBioPatch_EmptyPatch(t *testing.T) {
	t.Parallel()

	existing := Player{ID: "p1", Name: "Xander Schauffele", Country: "United States"}
	patch := BuildBioPatch(existing, BioUpdate{Country: "Ireland", College: " "})
	if !patch.IsEmpty() {
		t.Fatalf("expected empty patch, got %+v", patch)
	}
}

func TestBuildBioPatch_RankingMustBePositive(t *testing.T) {
	t.Parallel()

	existing := Player{ID: "p1", Name: "Xander Schauffele", Country: "United States"}

	zero := 0
	if patch := BuildBioPatch(existing, BioUpdate{Ranking: &zero}); patch.Ranking != nil {
		t.Fatalf("zero ranking must be excluded, got %v", *patch.Ranking)
	}

	third := 3
	patch := BuildBioPatch(existing, BioUpdate{Ranking: &third})
	if patch.Ranking == nil || *patch.Ranking != 3 {
		t.Fatalf("expected ranking patch 3, got %v", patch.Ranking)
	}
}
