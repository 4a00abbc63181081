package sofascore

import (
	"strconv"
	"strings"

	"github.com/golazo-app/golazo-api/internal/domain/match"
	"github.com/golazo-app/golazo-api/internal/domain/summary"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
	"github.com/golazo-app/golazo-api/internal/usecase"
)

type scheduledEventsEnvelope struct {
	Events []eventItem `json:"events"`
}

type eventEnvelope struct {
	Event eventItem `json:"event"`
}

type eventItem struct {
	ID             int64          `json:"id"`
	HomeTeam       teamItem       `json:"homeTeam"`
	AwayTeam       teamItem       `json:"awayTeam"`
	HomeScore      scoreItem      `json:"homeScore"`
	AwayScore      scoreItem      `json:"awayScore"`
	Status         statusItem     `json:"status"`
	StartTimestamp int64          `json:"startTimestamp"`
	Tournament     tournamentItem `json:"tournament"`
	Time           timeItem       `json:"time"`
}

type teamItem struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	NameCode   string         `json:"nameCode"`
	Slug       string         `json:"slug"`
	TeamColors teamColorsItem `json:"teamColors"`
}

type teamColorsItem struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Text      string `json:"text"`
}

type scoreItem struct {
	Current    int `json:"current"`
	Display    int `json:"display"`
	Period1    int `json:"period1"`
	Period2    int `json:"period2"`
	Normaltime int `json:"normaltime"`
	Overtime   int `json:"overtime"`
	Penalties  int `json:"penalties"`
}

type statusItem struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type timeItem struct {
	Minute                      int   `json:"minute"`
	Extra                       int   `json:"extra"`
	InjuryTime1                 int   `json:"injuryTime1"`
	InjuryTime2                 int   `json:"injuryTime2"`
	CurrentPeriodStartTimestamp int64 `json:"currentPeriodStartTimestamp"`
}

type tournamentItem struct {
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	UniqueTournament uniqueTournamentItem `json:"uniqueTournament"`
	Category         categoryItem         `json:"category"`
}

type uniqueTournamentItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type categoryItem struct {
	Name    string      `json:"name"`
	Alpha2  string      `json:"alpha2"`
	Country countryItem `json:"country"`
}

type countryItem struct {
	Name   string `json:"name"`
	Alpha2 string `json:"alpha2"`
}

type shotmapEnvelope struct {
	Shotmap []shotItem `json:"shotmap"`
}

type shotItem struct {
	Player       playerItem `json:"player"`
	Time         int        `json:"time"`
	TeamID       int64      `json:"teamId"`
	IsHome       bool       `json:"isHome"`
	JerseyNumber string     `json:"jerseyNumber"`
	ShotType     string     `json:"shotType"`
	Situation    string     `json:"situation"`
	BodyPart     string     `json:"bodyPart"`
	GoalType     string     `json:"goalType"`
	XG           float64    `json:"xg"`
	X            float64    `json:"x"`
	Y            float64    `json:"y"`
}

type playerItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Slug         string `json:"slug"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
	UserCount    int    `json:"userCount"`
}

type lineupsEnvelope struct {
	Home lineupSide `json:"home"`
	Away lineupSide `json:"away"`
}

type lineupSide struct {
	Players []lineupPlayer `json:"players"`
}

// The lineup row carries its own jerseyNumber and position; they take
// precedence over whatever the nested player object reports.
type lineupPlayer struct {
	Player       playerItem      `json:"player"`
	TeamID       int64           `json:"teamId"`
	JerseyNumber string          `json:"jerseyNumber"`
	Position     string          `json:"position"`
	Statistics   lineupStatsItem `json:"statistics"`
}

type lineupStatsItem struct {
	MinutesPlayed              int     `json:"minutesPlayed"`
	Rating                     float64 `json:"rating"`
	Fouls                      int     `json:"fouls"`
	Saves                      int     `json:"saves"`
	GoalAssist                 int     `json:"goalAssist"`
	TotalPass                  int     `json:"totalPass"`
	AccuratePass               int     `json:"accuratePass"`
	TotalLongBalls             int     `json:"totalLongBalls"`
	AccurateLongBalls          int     `json:"accurateLongBalls"`
	KeyPass                    int     `json:"keyPass"`
	TotalCross                 int     `json:"totalCross"`
	AerialWon                  int     `json:"aerialWon"`
	AerialLost                 int     `json:"aerialLost"`
	DuelWon                    int     `json:"duelWon"`
	DuelLost                   int     `json:"duelLost"`
	ChallengeLost              int     `json:"challengeLost"`
	Dispossessed               int     `json:"dispossessed"`
	BigChanceMissed            int     `json:"bigChanceMissed"`
	OnTargetScoringAttempt     int     `json:"onTargetScoringAttempt"`
	BlockedScoringAttempt      int     `json:"blockedScoringAttempt"`
	TotalClearance             int     `json:"totalClearance"`
	TotalTackle                int     `json:"totalTackle"`
	Touches                    int     `json:"touches"`
	PossessionLostCtrl         int     `json:"possessionLostCtrl"`
	SavedShotsFromInsideTheBox int     `json:"savedShotsFromInsideTheBox"`
	GoodHighClaim              int     `json:"goodHighClaim"`
	TotalKeeperSweeper         int     `json:"totalKeeperSweeper"`
	AccurateKeeperSweeper      int     `json:"accurateKeeperSweeper"`
}

type incidentsEnvelope struct {
	Incidents []incidentItem `json:"incidents"`
}

// The provider has reported the card class under two names over time.
type incidentItem struct {
	ID            int64       `json:"id"`
	Time          int         `json:"time"`
	IncidentType  string      `json:"incidentType"`
	CardType      string      `json:"cardType"`
	IncidentClass string      `json:"incidentClass"`
	TeamSide      string      `json:"teamSide"`
	IsHome        *bool       `json:"isHome"`
	Player        *playerItem `json:"player"`
}

func mapEvent(item eventItem) match.Match {
	return match.Match{
		ID:             item.ID,
		HomeTeam:       mapTeam(item.HomeTeam),
		AwayTeam:       mapTeam(item.AwayTeam),
		HomeScore:      match.Score(item.HomeScore),
		AwayScore:      match.Score(item.AwayScore),
		Status:         match.Status(item.Status),
		StartTimestamp: item.StartTimestamp,
		Tournament:     mapEventTournament(item.Tournament),
		Clock: match.Clock{
			Minute:             item.Time.Minute,
			Extra:              item.Time.Extra,
			InjuryTime1:        item.Time.InjuryTime1,
			InjuryTime2:        item.Time.InjuryTime2,
			CurrentPeriodStart: item.Time.CurrentPeriodStartTimestamp,
		},
	}
}

func mapTeam(item teamItem) match.Team {
	return match.Team{
		ID:       item.ID,
		Name:     item.Name,
		NameCode: item.NameCode,
		Slug:     item.Slug,
		Colors:   match.TeamColors(item.TeamColors),
	}
}

func mapEventTournament(item tournamentItem) tournament.Tournament {
	name := item.UniqueTournament.Name
	if name == "" {
		name = item.Name
	}
	slug := item.UniqueTournament.Slug
	if slug == "" {
		slug = item.Slug
	}
	country := item.Category.Country.Name
	if country == "" {
		country = item.Category.Name
	}
	code := item.Category.Country.Alpha2
	if code == "" {
		code = item.Category.Alpha2
	}

	out := tournament.Tournament{
		Name:        name,
		Slug:        slug,
		Country:     country,
		CountryCode: code,
	}
	if item.UniqueTournament.ID > 0 {
		out.ID = strconv.FormatInt(item.UniqueTournament.ID, 10)
	}
	return out
}

func mapShot(item shotItem) usecase.ExternalShot {
	return usecase.ExternalShot{
		Player:    mapPlayer(item.Player, item.JerseyNumber, item.Player.Position),
		Time:      item.Time,
		TeamID:    item.TeamID,
		IsHome:    item.IsHome,
		ShotType:  item.ShotType,
		Situation: item.Situation,
		BodyPart:  item.BodyPart,
		GoalType:  item.GoalType,
		XG:        item.XG,
		X:         item.X,
		Y:         item.Y,
	}
}

func mapLineups(envelope lineupsEnvelope) []usecase.ExternalPlayerStats {
	out := make([]usecase.ExternalPlayerStats, 0, len(envelope.Home.Players)+len(envelope.Away.Players))
	for _, row := range envelope.Home.Players {
		out = append(out, mapLineupRow(row, summary.TeamSideHome))
	}
	for _, row := range envelope.Away.Players {
		out = append(out, mapLineupRow(row, summary.TeamSideAway))
	}
	return out
}

func mapLineupRow(row lineupPlayer, side summary.TeamSide) usecase.ExternalPlayerStats {
	stats := row.Statistics
	return usecase.ExternalPlayerStats{
		Player:                     mapPlayer(row.Player, row.JerseyNumber, row.Position),
		TeamID:                     row.TeamID,
		Position:                   row.Position,
		TeamFromLineup:             side,
		MinutesPlayed:              stats.MinutesPlayed,
		Rating:                     stats.Rating,
		Fouls:                      stats.Fouls,
		Saves:                      stats.Saves,
		GoalAssist:                 stats.GoalAssist,
		TotalPass:                  stats.TotalPass,
		AccuratePass:               stats.AccuratePass,
		TotalLongBalls:             stats.TotalLongBalls,
		AccurateLongBalls:          stats.AccurateLongBalls,
		KeyPass:                    stats.KeyPass,
		TotalCross:                 stats.TotalCross,
		AerialWon:                  stats.AerialWon,
		AerialLost:                 stats.AerialLost,
		DuelWon:                    stats.DuelWon,
		DuelLost:                   stats.DuelLost,
		ChallengeLost:              stats.ChallengeLost,
		Dispossessed:               stats.Dispossessed,
		BigChanceMissed:            stats.BigChanceMissed,
		OnTargetScoringAttempt:     stats.OnTargetScoringAttempt,
		BlockedScoringAttempt:      stats.BlockedScoringAttempt,
		TotalClearance:             stats.TotalClearance,
		TotalTackle:                stats.TotalTackle,
		Touches:                    stats.Touches,
		PossessionLostCtrl:         stats.PossessionLostCtrl,
		SavedShotsFromInsideTheBox: stats.SavedShotsFromInsideTheBox,
		GoodHighClaim:              stats.GoodHighClaim,
		TotalKeeperSweeper:         stats.TotalKeeperSweeper,
		AccurateKeeperSweeper:      stats.AccurateKeeperSweeper,
	}
}

func mapIncident(item incidentItem) usecase.ExternalIncident {
	cardType := item.CardType
	if cardType == "" {
		cardType = item.IncidentClass
	}

	out := usecase.ExternalIncident{
		ID:           item.ID,
		Time:         item.Time,
		IncidentType: item.IncidentType,
		CardType:     cardType,
	}

	switch strings.ToLower(item.TeamSide) {
	case string(summary.TeamSideHome):
		out.TeamSide = summary.TeamSideHome
	case string(summary.TeamSideAway):
		out.TeamSide = summary.TeamSideAway
	default:
		if item.IsHome != nil {
			if *item.IsHome {
				out.TeamSide = summary.TeamSideHome
			} else {
				out.TeamSide = summary.TeamSideAway
			}
		}
	}

	if item.Player != nil {
		player := mapPlayer(*item.Player, item.Player.JerseyNumber, item.Player.Position)
		out.Player = &player
	}
	return out
}

func mapPlayer(item playerItem, jerseyNumber, position string) summary.Player {
	if jerseyNumber == "" {
		jerseyNumber = item.JerseyNumber
	}
	if position == "" {
		position = item.Position
	}
	return summary.Player{
		ID:           item.ID,
		Name:         item.Name,
		ShortName:    item.ShortName,
		Slug:         item.Slug,
		JerseyNumber: jerseyNumber,
		Position:     position,
		UserCount:    item.UserCount,
	}
}
