package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fairwaylabs/golfdata/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	byID    map[string]player.Player
	byExtID map[string]string
	byName  map[string]string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		byID:    make(map[string]player.Player),
		byExtID: make(map[string]string),
		byName:  make(map[string]string),
	}
	for _, p := range players {
		r.index(p)
	}

	return r
}

func (r *PlayerRepository) index(p player.Player) {
	r.byID[p.ID] = p
	if extID := strings.TrimSpace(p.ExternalID); extID != "" {
		r.byExtID[extID] = p.ID
	}
	r.byName[p.Name] = p.ID
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	return p, ok, nil
}

func (r *PlayerRepository) GetByExternalID(_ context.Context, externalID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byExtID[strings.TrimSpace(externalID)]
	if !ok {
		return player.Player{}, false, nil
	}
	p, ok := r.byID[id]

	return p, ok, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return player.Player{}, false, nil
	}
	p, ok := r.byID[id]

	return p, ok, nil
}

func (r *PlayerRepository) FindByNameInsensitive(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := player.NormalizeName(name)
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := r.byID[id]
		if player.NormalizeName(p.Name) == want {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index(item)
	return nil
}

func (r *PlayerRepository) Patch(_ context.Context, id string, patch player.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil
	}

	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.CountryCode != nil {
		p.CountryCode = *patch.CountryCode
	}
	if patch.BirthDate != nil {
		p.BirthDate = *patch.BirthDate
	}
	if patch.BirthPlace != nil {
		p.BirthPlace = *patch.BirthPlace
	}
	if patch.College != nil {
		p.College = *patch.College
	}
	if patch.Swing != nil {
		p.Swing = *patch.Swing
	}
	if patch.TurnedPro != nil {
		p.TurnedPro = *patch.TurnedPro
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.Ranking != nil {
		ranking := *patch.Ranking
		p.Ranking = &ranking
	}

	r.byID[id] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	if extID := strings.TrimSpace(p.ExternalID); extID != "" && r.byExtID[extID] == id {
		delete(r.byExtID, extID)
	}
	if r.byName[p.Name] == id {
		delete(r.byName, p.Name)
	}

	return nil
}
