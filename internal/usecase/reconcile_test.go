package usecase

import (
	"testing"

	"github.com/golazo-app/golazo-api/internal/domain/summary"
)

func homeSides(ids ...int64) map[int64]summary.TeamSide {
	sides := make(map[int64]summary.TeamSide, len(ids))
	for _, id := range ids {
		sides[id] = summary.TeamSideHome
	}
	return sides
}

func TestStatsDerivedFouls(t *testing.T) {
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 5, Name: "Casemiro", JerseyNumber: "18"}, MinutesPlayed: 90, Fouls: 3, TeamFromLineup: summary.TeamSideHome},
		{Player: summary.Player{ID: 6, Name: "Clean"}, MinutesPlayed: 90, Fouls: 0, TeamFromLineup: summary.TeamSideHome},
	}
	sides := homeSides(5, 6)

	fouls := StatsDerivedFouls(stats, sides)
	if len(fouls) != 3 {
		t.Fatalf("unexpected foul count: got=%d want=3", len(fouls))
	}
	// Descending order, so the third estimated foul comes first.
	if fouls[0].Time != 90 || fouls[0].IncidentID != "5_foul_3" {
		t.Fatalf("unexpected leading foul: time=%d id=%s", fouls[0].Time, fouls[0].IncidentID)
	}
	if fouls[2].IncidentID != "5_foul_1" {
		t.Fatalf("unexpected trailing foul id: got=%s", fouls[2].IncidentID)
	}
	if fouls[0].ShirtNumber != 18 {
		t.Fatalf("unexpected shirt number: got=%d want=18", fouls[0].ShirtNumber)
	}
	if fouls[0].Description != "Falta de Casemiro" {
		t.Fatalf("unexpected description: got=%q", fouls[0].Description)
	}
}

func TestStatsDerivedFoulsSkipsUnmappedPlayers(t *testing.T) {
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 5}, MinutesPlayed: 90, Fouls: 2},
	}

	fouls := StatsDerivedFouls(stats, map[int64]summary.TeamSide{})
	if len(fouls) != 0 {
		t.Fatalf("player without a resolvable side must be excluded: got=%d fouls", len(fouls))
	}
}

func TestReconcileFoulsMergesNearbyCard(t *testing.T) {
	sides := homeSides(5)
	statsFouls := []summary.Foul{
		{PlayerID: 5, PlayerName: "Casemiro", Team: summary.TeamSideHome, Time: 49, TimeSeconds: 49 * 60, FoulType: "Falta", IncidentID: "5_foul_1"},
	}
	incidents := []ExternalIncident{
		{ID: 9001, Time: 50, IncidentType: "card", CardType: "yellow", Player: &summary.Player{ID: 5, Name: "Casemiro"}},
	}

	fouls := ReconcileFouls(incidents, statsFouls, sides, DefaultFoulCardWindowMin)
	if len(fouls) != 1 {
		t.Fatalf("nearby card and foul must collapse to one event: got=%d", len(fouls))
	}

	got := fouls[0]
	if got.FoulType != "Falta + Tarjeta amarilla" {
		t.Fatalf("unexpected merged type: got=%q", got.FoulType)
	}
	if got.Description != "Falta de Casemiro - Tarjeta amarilla" {
		t.Fatalf("unexpected merged description: got=%q", got.Description)
	}
	if got.Time != 50 {
		t.Fatalf("merged event must keep the incident minute: got=%d want=50", got.Time)
	}
	if got.IncidentID != "9001" {
		t.Fatalf("merged event must carry the incident id: got=%q", got.IncidentID)
	}
}

func TestReconcileFoulsCardOutsideWindowStaysSeparate(t *testing.T) {
	sides := homeSides(5)
	statsFouls := []summary.Foul{
		{PlayerID: 5, PlayerName: "Casemiro", Team: summary.TeamSideHome, Time: 20, TimeSeconds: 20 * 60, FoulType: "Falta", IncidentID: "5_foul_1"},
	}
	incidents := []ExternalIncident{
		{ID: 9002, Time: 70, IncidentType: "card", CardType: "yellow", Player: &summary.Player{ID: 5, Name: "Casemiro"}},
	}

	fouls := ReconcileFouls(incidents, statsFouls, sides, DefaultFoulCardWindowMin)
	if len(fouls) != 2 {
		t.Fatalf("distant card and foul must stay separate: got=%d", len(fouls))
	}
	if fouls[0].FoulType != "Tarjeta amarilla" {
		t.Fatalf("unexpected card-only type: got=%q", fouls[0].FoulType)
	}
	if fouls[0].Description != "Tarjeta amarilla para Casemiro" {
		t.Fatalf("unexpected card-only description: got=%q", fouls[0].Description)
	}
	if fouls[1].FoulType != "Falta" {
		t.Fatalf("statistics foul should survive unmerged: got=%q", fouls[1].FoulType)
	}
}

func TestReconcileFoulsCardLabels(t *testing.T) {
	tests := []struct {
		cardType string
		wantType string
		wantDesc string
	}{
		{cardType: "red", wantType: "Falta + Tarjeta roja", wantDesc: "Falta de Pepe - Tarjeta roja"},
		{cardType: "yellowRed", wantType: "Falta + Tarjeta roja (doble amarilla)", wantDesc: "Falta de Pepe - Tarjeta roja (doble amarilla)"},
		{cardType: "", wantType: "Falta + Tarjeta amarilla", wantDesc: "Falta de Pepe - Tarjeta amarilla"},
	}

	for _, tc := range tests {
		t.Run("card_"+tc.cardType, func(t *testing.T) {
			sides := homeSides(7)
			statsFouls := []summary.Foul{
				{PlayerID: 7, Team: summary.TeamSideHome, Time: 33, TimeSeconds: 33 * 60, IncidentID: "7_foul_1"},
			}
			incidents := []ExternalIncident{
				{ID: 1, Time: 33, IncidentType: "card", CardType: tc.cardType, Player: &summary.Player{ID: 7, Name: "Pepe"}},
			}

			fouls := ReconcileFouls(incidents, statsFouls, sides, 2)
			if len(fouls) != 1 {
				t.Fatalf("expected one merged foul, got %d", len(fouls))
			}
			if fouls[0].FoulType != tc.wantType {
				t.Fatalf("unexpected type: got=%q want=%q", fouls[0].FoulType, tc.wantType)
			}
			if fouls[0].Description != tc.wantDesc {
				t.Fatalf("unexpected description: got=%q want=%q", fouls[0].Description, tc.wantDesc)
			}
		})
	}
}

func TestReconcileFoulsDiscardsUnattributableIncidents(t *testing.T) {
	incidents := []ExternalIncident{
		// No player attached.
		{ID: 1, Time: 10, IncidentType: "card", CardType: "yellow"},
		// Player side unknown in both the incident and the map.
		{ID: 2, Time: 20, IncidentType: "card", CardType: "yellow", Player: &summary.Player{ID: 42}},
		// Not a card at all.
		{ID: 3, Time: 30, IncidentType: "goal", Player: &summary.Player{ID: 5}},
	}

	fouls := ReconcileFouls(incidents, nil, homeSides(5), 2)
	if len(fouls) != 0 {
		t.Fatalf("unattributable incidents must be discarded: got=%d", len(fouls))
	}
}

func TestReconcileFoulsIncidentSideOverridesMap(t *testing.T) {
	sides := homeSides(5)
	incidents := []ExternalIncident{
		{ID: 1, Time: 10, IncidentType: "card", CardType: "yellow", TeamSide: summary.TeamSideAway, Player: &summary.Player{ID: 5, Name: "Own"}},
	}

	fouls := ReconcileFouls(incidents, nil, sides, 2)
	if len(fouls) != 1 || fouls[0].Team != summary.TeamSideAway {
		t.Fatalf("incident-declared side should win over the map: got=%+v", fouls)
	}
}

func TestReconcileFoulsConsumesEachStatsFoulOnce(t *testing.T) {
	sides := homeSides(5)
	statsFouls := []summary.Foul{
		{PlayerID: 5, Team: summary.TeamSideHome, Time: 50, TimeSeconds: 50 * 60, IncidentID: "5_foul_1"},
	}
	incidents := []ExternalIncident{
		{ID: 1, Time: 50, IncidentType: "card", CardType: "yellow", Player: &summary.Player{ID: 5}},
		{ID: 2, Time: 51, IncidentType: "card", CardType: "yellowRed", Player: &summary.Player{ID: 5}},
	}

	fouls := ReconcileFouls(incidents, statsFouls, sides, 2)
	if len(fouls) != 2 {
		t.Fatalf("unexpected event count: got=%d want=2", len(fouls))
	}
	merged := 0
	for _, f := range fouls {
		if f.FoulType == "Falta + Tarjeta amarilla" {
			merged++
		}
	}
	if merged != 1 {
		t.Fatalf("the single statistics foul must merge exactly once: merged=%d", merged)
	}
}

func TestReconcileFoulsSortedDescending(t *testing.T) {
	sides := homeSides(5, 6)
	statsFouls := []summary.Foul{
		{PlayerID: 5, Team: summary.TeamSideHome, Time: 12, TimeSeconds: 12 * 60, IncidentID: "5_foul_1"},
		{PlayerID: 6, Team: summary.TeamSideHome, Time: 77, TimeSeconds: 77 * 60, IncidentID: "6_foul_1"},
	}
	incidents := []ExternalIncident{
		{ID: 1, Time: 40, IncidentType: "card", CardType: "yellow", Player: &summary.Player{ID: 5}},
	}

	fouls := ReconcileFouls(incidents, statsFouls, sides, 2)
	for i := 1; i < len(fouls); i++ {
		if fouls[i-1].TimeSeconds < fouls[i].TimeSeconds {
			t.Fatalf("fouls not sorted descending at %d", i)
		}
	}
}

func TestGoalkeeperSaves(t *testing.T) {
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 1, Name: "Courtois", JerseyNumber: "13"}, Position: "G", Saves: 2, MinutesPlayed: 90, TeamFromLineup: summary.TeamSideHome},
		{Player: summary.Player{ID: 2, Name: "Quiet"}, Position: "G", Saves: 0, MinutesPlayed: 90, TeamFromLineup: summary.TeamSideAway},
		{Player: summary.Player{ID: 3, Name: "Outfield"}, Position: "D", Saves: 1, MinutesPlayed: 90, TeamFromLineup: summary.TeamSideAway},
	}
	sides := map[int64]summary.TeamSide{
		1: summary.TeamSideHome,
		2: summary.TeamSideAway,
		3: summary.TeamSideAway,
	}

	saves := GoalkeeperSaves(stats, sides)
	if len(saves) != 2 {
		t.Fatalf("only keepers with positive saves produce events: got=%d want=2", len(saves))
	}
	if saves[0].Time != 90 || saves[1].Time != 45 {
		t.Fatalf("unexpected estimated minutes: %d, %d", saves[0].Time, saves[1].Time)
	}
	if saves[0].SaveType != "Parada" || !saves[0].ShotBlocked {
		t.Fatalf("unexpected save shape: %+v", saves[0])
	}
	if saves[0].Description != "Parada de Courtois" {
		t.Fatalf("unexpected save description: got=%q", saves[0].Description)
	}
}

func TestGoalkeeperSavesShirtNumberFallback(t *testing.T) {
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 1, Name: "NoShirt"}, Position: "G", Saves: 1, MinutesPlayed: 90},
	}

	saves := GoalkeeperSaves(stats, homeSides(1))
	if saves[0].ShirtNumber != 1 {
		t.Fatalf("keeper shirt number should fall back to 1: got=%d", saves[0].ShirtNumber)
	}
}

func TestBuildMatchSummaryWithoutIncidents(t *testing.T) {
	stats := []ExternalPlayerStats{
		{Player: summary.Player{ID: 5, Name: "Casemiro"}, MinutesPlayed: 90, Fouls: 2, TeamFromLineup: summary.TeamSideHome},
	}

	sum := BuildMatchSummary(nil, stats, nil, 0)
	if len(sum.Fouls) != 2 {
		t.Fatalf("without incidents the statistics fouls stand alone: got=%d want=2", len(sum.Fouls))
	}
	for _, f := range sum.Fouls {
		if f.FoulType != "Falta" {
			t.Fatalf("unexpected foul type without incidents: got=%q", f.FoulType)
		}
	}
}
