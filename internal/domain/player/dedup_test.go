package player

import "testing"

func TestClustersByExternalID(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: "a", Name: "Xander Schauffele", ExternalID: "10140"},
		{ID: "b", Name: "X. Schauffele", ExternalID: "10140"},
		{ID: "c", Name: "Rory McIlroy", ExternalID: "8793"},
		{ID: "d", Name: "No External"},
	}

	clusters := ClustersByExternalID(players)
	if len(clusters) != 1 {
		t.Fatalf("expected one duplicate cluster, got %d", len(clusters))
	}
	if clusters[0].Key != "10140" {
		t.Fatalf("expected cluster key 10140, got %s", clusters[0].Key)
	}
	if len(clusters[0].Members) != 2 {
		t.Fatalf("expected two members, got %d", len(clusters[0].Members))
	}
}

func TestClustersByName_LowercaseTrimOnly(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: "a", Name: "Rory McIlroy"},
		{ID: "b", Name: "  rory mcilroy "},
		{ID: "c", Name: "Rory Mcílroy"},
	}

	clusters := ClustersByName(players)
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 2 {
		t.Fatalf("diacritic variant must stay distinct; expected 2 members, got %d", len(clusters[0].Members))
	}
}

func TestWithoutExternalID(t *testing.T) {
	t.Parallel()

	players := []Player{
		{ID: "a", ExternalID: "1"},
		{ID: "b", ExternalID: "  "},
		{ID: "c"},
	}

	missing := WithoutExternalID(players)
	if len(missing) != 2 {
		t.Fatalf("expected two players without external id, got %d", len(missing))
	}
}

func TestSortMembersByResultCount(t *testing.T) {
	t.Parallel()

	members := []ClusterMember{
		{Player: Player{ID: "a"}, ResultCount: 0},
		{Player: Player{ID: "b"}, ResultCount: 5},
		{Player: Player{ID: "c"}, ResultCount: 2},
	}

	SortMembersByResultCount(members)
	if members[0].Player.ID != "b" || members[1].Player.ID != "c" || members[2].Player.ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", members[0].Player.ID, members[1].Player.ID, members[2].Player.ID)
	}
}
