package player

import (
	"sort"
	"strings"
)

// ClusterMember is one player inside a duplicate cluster, annotated with its
// live count of dependent tournament results. A member with ResultCount > 0
// must never be deleted.
type ClusterMember struct {
	Player      Player
	ResultCount int
}

// DuplicateCluster is a natural key shared by more than one player. Clusters
// are computed fresh on every maintenance pass and never persisted.
type DuplicateCluster struct {
	Key     string
	Members []ClusterMember
}

// NormalizeName is the only name normalization used for matching: lowercase
// and trim. Diacritic or punctuation variants stay distinct on purpose.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ClustersByExternalID groups players that share an external identifier and
// returns the groups with more than one member. Players without an external
// ID are excluded; they cannot be matched this way.
func ClustersByExternalID(players []Player) []DuplicateCluster {
	return clustersBy(players, func(p Player) string {
		return strings.TrimSpace(p.ExternalID)
	})
}

// ClustersByName groups all players by normalized display name and returns
// the groups with more than one member.
func ClustersByName(players []Player) []DuplicateCluster {
	return clustersBy(players, func(p Player) string {
		return NormalizeName(p.Name)
	})
}

// WithoutExternalID returns the players that have no external identifier at
// all. They are dedup candidates too but need manual review.
func WithoutExternalID(players []Player) []Player {
	out := make([]Player, 0)
	for _, p := range players {
		if strings.TrimSpace(p.ExternalID) == "" {
			out = append(out, p)
		}
	}
	return out
}

func clustersBy(players []Player, keyFn func(Player) string) []DuplicateCluster {
	byKey := make(map[string][]ClusterMember)
	for _, p := range players {
		key := keyFn(p)
		if key == "" {
			continue
		}
		byKey[key] = append(byKey[key], ClusterMember{Player: p})
	}

	out := make([]DuplicateCluster, 0)
	for key, members := range byKey {
		if len(members) < 2 {
			continue
		}
		out = append(out, DuplicateCluster{Key: key, Members: members})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out
}

// SortMembersByResultCount orders cluster members descending by dependent
// result count. The first member after sorting is the canonical one.
func SortMembersByResultCount(members []ClusterMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].ResultCount > members[j].ResultCount
	})
}
