package usecase

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/golazo-app/golazo-api/internal/domain/summary"
)

// DefaultFoulCardWindowMin is the nearness window, in minutes, within
// which a statistics-derived foul and a card incident for the same
// player are treated as the same real-world event.
const DefaultFoulCardWindowMin = 2

const (
	foulLabel         = "Falta"
	saveLabel         = "Parada"
	cardYellowLabel   = "Tarjeta amarilla"
	cardRedLabel      = "Tarjeta roja"
	cardSecondYellows = "Tarjeta roja (doble amarilla)"

	incidentTypeCard = "card"
	positionKeeper   = "G"
)

// StatsDerivedFouls synthesizes one foul per counted foul in the lineup
// statistics, with estimated minutes. Each entry gets a synthetic
// incident id used later as the dedup handle. Players without a
// resolvable side are skipped.
func StatsDerivedFouls(stats []ExternalPlayerStats, sides map[int64]summary.TeamSide) []summary.Foul {
	out := make([]summary.Foul, 0, len(stats))

	for _, row := range stats {
		if row.Fouls <= 0 {
			continue
		}
		side, ok := sides[row.Player.ID]
		if !ok {
			continue
		}

		for k, minute := range EstimateEventMinutes(row.Fouls, row.MinutesPlayed) {
			out = append(out, summary.Foul{
				PlayerID:    row.Player.ID,
				PlayerName:  row.Player.Name,
				ShirtNumber: parseShirtNumber(row.Player.JerseyNumber, 0),
				Team:        side,
				Time:        minute,
				TimeSeconds: minute * 60,
				FoulType:    foulLabel,
				Description: fmt.Sprintf("Falta de %s", row.Player.Name),
				IncidentID:  fmt.Sprintf("%d_foul_%d", row.Player.ID, k+1),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeSeconds > out[j].TimeSeconds })
	return out
}

// ReconcileFouls merges the card-incident feed with the synthesized
// foul list into one timeline. The incident feed is precise in time but
// only covers fouls that drew a card; the statistics feed is exhaustive
// in count but has estimated times. A card with an unconsumed
// statistics foul for the same player within the window becomes a
// single combined event; the statistics entry is marked consumed so the
// remainder pass cannot emit it again. Incidents that cannot be
// attributed to a side are discarded.
func ReconcileFouls(incidents []ExternalIncident, statsFouls []summary.Foul, sides map[int64]summary.TeamSide, windowMin int) []summary.Foul {
	if windowMin <= 0 {
		windowMin = DefaultFoulCardWindowMin
	}

	out := make([]summary.Foul, 0, len(incidents)+len(statsFouls))
	consumed := make(map[string]struct{}, len(statsFouls))

	for _, incident := range incidents {
		if incident.IncidentType != incidentTypeCard || incident.Player == nil {
			continue
		}
		player := *incident.Player

		var cardLabel string
		var isSecondYellow bool
		switch incident.CardType {
		case "yellow":
			cardLabel = cardYellowLabel
		case "red":
			cardLabel = cardRedLabel
		case "yellowRed":
			cardLabel = cardSecondYellows
			isSecondYellow = true
		default:
			cardLabel = cardYellowLabel
		}

		side := incident.TeamSide
		if side != summary.TeamSideHome && side != summary.TeamSideAway {
			side = sides[player.ID]
		}
		if side != summary.TeamSideHome && side != summary.TeamSideAway {
			continue
		}

		nearbyIdx := -1
		for idx, foul := range statsFouls {
			if foul.PlayerID != player.ID {
				continue
			}
			if _, used := consumed[foul.IncidentID]; used {
				continue
			}
			if absInt(foul.Time-incident.Time) <= windowMin {
				nearbyIdx = idx
				break
			}
		}

		if nearbyIdx >= 0 {
			var combined string
			switch {
			case isSecondYellow:
				combined = "Falta + " + cardSecondYellows
			case cardLabel == cardRedLabel:
				combined = "Falta + " + cardRedLabel
			default:
				combined = "Falta + " + cardLabel
			}

			out = append(out, summary.Foul{
				PlayerID:    player.ID,
				PlayerName:  player.Name,
				ShirtNumber: parseShirtNumber(player.JerseyNumber, 0),
				Team:        side,
				Time:        incident.Time,
				TimeSeconds: incident.Time * 60,
				FoulType:    combined,
				Description: fmt.Sprintf("Falta de %s - %s", player.Name, cardLabel),
				IncidentID:  strconv.FormatInt(incident.ID, 10),
			})
			consumed[statsFouls[nearbyIdx].IncidentID] = struct{}{}
			continue
		}

		out = append(out, summary.Foul{
			PlayerID:    player.ID,
			PlayerName:  player.Name,
			ShirtNumber: parseShirtNumber(player.JerseyNumber, 0),
			Team:        side,
			Time:        incident.Time,
			TimeSeconds: incident.Time * 60,
			FoulType:    cardLabel,
			Description: fmt.Sprintf("%s para %s", cardLabel, player.Name),
			IncidentID:  strconv.FormatInt(incident.ID, 10),
		})
	}

	for _, foul := range statsFouls {
		if _, used := consumed[foul.IncidentID]; used {
			continue
		}
		out = append(out, foul)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeSeconds > out[j].TimeSeconds })
	return out
}

// GoalkeeperSaves synthesizes save events for keepers with a positive
// saves counter, using the same minute estimation as fouls.
func GoalkeeperSaves(stats []ExternalPlayerStats, sides map[int64]summary.TeamSide) []summary.Save {
	out := make([]summary.Save, 0, 4)

	for _, row := range stats {
		if row.Position != positionKeeper || row.Saves <= 0 {
			continue
		}
		side, ok := sides[row.Player.ID]
		if !ok {
			continue
		}

		for _, minute := range EstimateEventMinutes(row.Saves, row.MinutesPlayed) {
			out = append(out, summary.Save{
				PlayerID:    row.Player.ID,
				PlayerName:  row.Player.Name,
				ShirtNumber: parseShirtNumber(row.Player.JerseyNumber, 1),
				Team:        side,
				Time:        minute,
				TimeSeconds: minute * 60,
				SaveType:    saveLabel,
				Description: fmt.Sprintf("Parada de %s", row.Player.Name),
				ShotBlocked: true,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeSeconds > out[j].TimeSeconds })
	return out
}

// BuildMatchSummary runs the full reconciliation pipeline over the
// three sub-resource feeds. Callers pass whatever subset of the feeds
// they managed to fetch; empty slices degrade to an emptier summary
// rather than an error.
func BuildMatchSummary(shots []ExternalShot, stats []ExternalPlayerStats, incidents []ExternalIncident, windowMin int) summary.Summary {
	sides := BuildPlayerTeamMap(shots, stats)
	statsFouls := StatsDerivedFouls(stats, sides)

	return summary.Summary{
		Shots: BuildShots(shots, stats),
		Fouls: ReconcileFouls(incidents, statsFouls, sides, windowMin),
		Saves: GoalkeeperSaves(stats, sides),
	}
}

func parseShirtNumber(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
