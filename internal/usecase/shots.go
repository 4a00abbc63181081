package usecase

import (
	"fmt"
	"sort"

	"github.com/golazo-app/golazo-api/internal/domain/summary"
)

const shotTypeGoal = "goal"

// BuildShots turns shot-map rows into display shots and attaches the
// heuristic assist link to goals. The candidate set is every lineup
// player with a positive goalAssist counter; the first one on the
// scoring team (source order) is credited. This can misattribute when
// several teammates recorded assists in the same match; the provider
// carries no authoritative assist-to-goal link, so this stays a
// documented approximation.
func BuildShots(shots []ExternalShot, stats []ExternalPlayerStats) []summary.Shot {
	assistCandidates := make([]ExternalPlayerStats, 0, 4)
	for _, row := range stats {
		if row.GoalAssist > 0 {
			assistCandidates = append(assistCandidates, row)
		}
	}

	out := make([]summary.Shot, 0, len(shots))
	for _, shot := range shots {
		isGoal := shot.ShotType == shotTypeGoal

		item := summary.Shot{
			Player:      shot.Player,
			Time:        shot.Time,
			TimeSeconds: shot.Time * 60,
			TeamID:      shot.TeamID,
			IsHome:      shot.IsHome,
			ShotType:    shot.ShotType,
			Situation:   shot.Situation,
			BodyPart:    shot.BodyPart,
			XG:          shot.XG,
			X:           shot.X,
			Y:           shot.Y,
		}
		if isGoal {
			item.GoalType = shot.GoalType
		}

		if isGoal && len(assistCandidates) > 0 {
			side := summary.TeamSideAway
			if shot.IsHome {
				side = summary.TeamSideHome
			}
			for _, candidate := range assistCandidates {
				if candidate.TeamFromLineup != side {
					continue
				}
				assist := candidate.Player
				item.HasAssist = true
				item.AssistPlayer = &assist
				item.AssistDescription = fmt.Sprintf("Asistencia de %s", assist.Name)
				break
			}
		}

		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Time > out[j].Time })
	return out
}
