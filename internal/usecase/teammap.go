package usecase

import "github.com/golazo-app/golazo-api/internal/domain/summary"

// BuildPlayerTeamMap resolves each player id to a team side by
// cross-referencing the two per-match feeds. Shot rows win because
// their IsHome flag comes straight from the provider; lineup membership
// only fills the gaps. Players in neither feed stay unmapped and are
// dropped from any event that needs a side.
func BuildPlayerTeamMap(shots []ExternalShot, stats []ExternalPlayerStats) map[int64]summary.TeamSide {
	sides := make(map[int64]summary.TeamSide, len(stats))

	for _, shot := range shots {
		if shot.Player.ID == 0 {
			continue
		}
		if shot.IsHome {
			sides[shot.Player.ID] = summary.TeamSideHome
		} else {
			sides[shot.Player.ID] = summary.TeamSideAway
		}
	}

	for _, row := range stats {
		if row.Player.ID == 0 {
			continue
		}
		if _, mapped := sides[row.Player.ID]; mapped {
			continue
		}
		if row.TeamFromLineup == summary.TeamSideHome || row.TeamFromLineup == summary.TeamSideAway {
			sides[row.Player.ID] = row.TeamFromLineup
		}
	}

	return sides
}
