package usecase

import (
	"context"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/domain/summary"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
)

// StatsProvider is the upstream sports-data source. Match metadata and
// the match list come back as domain values; the per-match sub-resource
// feeds come back as External* rows because they are raw material for
// reconciliation, not display data.
type StatsProvider interface {
	MatchesByDate(ctx context.Context, date string) ([]match.Match, error)
	MatchByID(ctx context.Context, matchID int64) (match.Match, error)
	ShotmapByMatch(ctx context.Context, matchID int64) ([]ExternalShot, error)
	LineupStatsByMatch(ctx context.Context, matchID int64) ([]ExternalPlayerStats, error)
	IncidentsByMatch(ctx context.Context, matchID int64) ([]ExternalIncident, error)
}

type TournamentProvider interface {
	TournamentSuggestions(ctx context.Context) ([]tournament.Tournament, error)
}

// ExternalShot is one shot-map row. IsHome is authoritative here; the
// team map trusts it over lineup membership.
type ExternalShot struct {
	Player    summary.Player
	Time      int
	TeamID    int64
	IsHome    bool
	ShotType  string
	Situation string
	BodyPart  string
	GoalType  string
	XG        float64
	X         float64
	Y         float64
}

// ExternalPlayerStats is one flattened lineup entry with the nested
// per-player statistics counters. TeamFromLineup records which roster
// array the player was found in.
type ExternalPlayerStats struct {
	Player         summary.Player
	TeamID         int64
	Position       string
	TeamFromLineup summary.TeamSide

	MinutesPlayed int
	Fouls         int
	Saves         int
	GoalAssist    int
	Rating        float64

	TotalPass         int
	AccuratePass      int
	TotalLongBalls    int
	AccurateLongBalls int
	KeyPass           int
	TotalCross        int

	AerialWon     int
	AerialLost    int
	DuelWon       int
	DuelLost      int
	ChallengeLost int
	Dispossessed  int

	BigChanceMissed        int
	OnTargetScoringAttempt int
	BlockedScoringAttempt  int
	TotalClearance         int
	TotalTackle            int
	Touches                int
	PossessionLostCtrl     int

	SavedShotsFromInsideTheBox int
	GoodHighClaim              int
	TotalKeeperSweeper         int
	AccurateKeeperSweeper      int
}

// ExternalIncident is one row of the incidents feed. Only card
// incidents with an attached player participate in reconciliation.
type ExternalIncident struct {
	ID           int64
	Time         int
	IncidentType string
	CardType     string
	TeamSide     summary.TeamSide
	Player       *summary.Player
}
