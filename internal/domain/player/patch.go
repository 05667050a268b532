package player

import "strings"

// BioUpdate is one incoming biographical record, keyed by external ID with a
// name fallback for lookup. Every field is independently optional.
type BioUpdate struct {
	ExternalID  string
	Name        string
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

// Patch is a sparse update: only non-nil fields are written. It maps onto a
// single atomic patch call against the store.
type Patch struct {
	Country     *string
	CountryCode *string
	BirthDate   *string
	BirthPlace  *string
	College     *string
	Swing       *string
	TurnedPro   *int
	Height      *string
	Weight      *string
	PhotoURL    *string
	Ranking     *int
}

func (p Patch) IsEmpty() bool {
	return p.Country == nil &&
		p.CountryCode == nil &&
		p.BirthDate == nil &&
		p.BirthPlace == nil &&
		p.College == nil &&
		p.Swing == nil &&
		p.Height == nil &&
		p.Weight == nil &&
		p.PhotoURL == nil &&
		p.TurnedPro == nil &&
		p.Ranking == nil
}

// BuildBioPatch computes the sparse patch that applying incoming to existing
// would produce. String fields are taken only when non-blank after trimming,
// numeric fields only when positive. Country is special: a populated real
// country is never overwritten, but empty or the "Unknown" placeholder is.
func BuildBioPatch(existing Player, incoming BioUpdate) Patch {
	var patch Patch

	if country := strings.TrimSpace(incoming.Country); country != "" && !existing.HasCountry() {
		patch.Country = &country
		if code := strings.TrimSpace(incoming.CountryCode); code != "" {
			patch.CountryCode = &code
		}
	}
	patch.BirthDate = stringField(incoming.BirthDate)
	patch.BirthPlace = stringField(incoming.BirthPlace)
	patch.College = stringField(incoming.College)
	patch.Swing = stringField(incoming.Swing)
	patch.Height = stringField(incoming.Height)
	patch.Weight = stringField(incoming.Weight)
	patch.PhotoURL = stringField(incoming.PhotoURL)
	if incoming.TurnedPro > 0 {
		turnedPro := incoming.TurnedPro
		patch.TurnedPro = &turnedPro
	}
	if incoming.Ranking != nil && *incoming.Ranking > 0 {
		ranking := *incoming.Ranking
		patch.Ranking = &ranking
	}

	return patch
}

func stringField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
