package usecase

import (
	"testing"

	"github.com/golazo-app/golazo-api/internal/domain/summary"
)

func TestBuildPlayerTeamMapShotSideWins(t *testing.T) {
	shots := []ExternalShot{
		{Player: summary.Player{ID: 10}, IsHome: true},
	}
	// Conflicting lineup membership: the same player listed away.
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 10}, TeamFromLineup: summary.TeamSideAway},
		{Player: summary.Player{ID: 11}, TeamFromLineup: summary.TeamSideAway},
	}

	sides := BuildPlayerTeamMap(shots, stats)

	if got := sides[10]; got != summary.TeamSideHome {
		t.Fatalf("shot-derived side should win: got=%s want=%s", got, summary.TeamSideHome)
	}
	if got := sides[11]; got != summary.TeamSideAway {
		t.Fatalf("lineup should fill gaps: got=%s want=%s", got, summary.TeamSideAway)
	}
}

func TestBuildPlayerTeamMapUnknownPlayersStayUnmapped(t *testing.T) {
	sides := BuildPlayerTeamMap(nil, []ExternalPlayerStats{
		{Player: summary.Player{ID: 7}, TeamFromLineup: summary.TeamSideHome},
	})

	if _, ok := sides[99]; ok {
		t.Fatal("player absent from both feeds must stay unmapped")
	}
	if len(sides) != 1 {
		t.Fatalf("unexpected map size: got=%d want=1", len(sides))
	}
}

func TestBuildPlayerTeamMapEmptyFeeds(t *testing.T) {
	sides := BuildPlayerTeamMap(nil, nil)
	if len(sides) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(sides))
	}
}
