package match

import (
	"github.com/golazo-app/golazo-api/internal/domain/summary"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
)

type Team struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	NameCode string     `json:"nameCode,omitempty"`
	Slug     string     `json:"slug,omitempty"`
	Colors   TeamColors `json:"teamColors"`
}

type TeamColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Score carries the running total plus per-period splits when the
// provider reports them.
type Score struct {
	Current    int `json:"current"`
	Display    int `json:"display"`
	Period1    int `json:"period1,omitempty"`
	Period2    int `json:"period2,omitempty"`
	Normaltime int `json:"normaltime,omitempty"`
	Overtime   int `json:"overtime,omitempty"`
	Penalties  int `json:"penalties,omitempty"`
}

// Status type values follow the provider vocabulary: notstarted,
// inprogress, finished, postponed, cancelled, interrupted.
type Status struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type Clock struct {
	Minute             int   `json:"minute,omitempty"`
	Extra              int   `json:"extra,omitempty"`
	InjuryTime1        int   `json:"injuryTime1,omitempty"`
	InjuryTime2        int   `json:"injuryTime2,omitempty"`
	CurrentPeriodStart int64 `json:"currentPeriodStartTimestamp,omitempty"`
}

type Match struct {
	ID             int64                 `json:"id"`
	HomeTeam       Team                  `json:"homeTeam"`
	AwayTeam       Team                  `json:"awayTeam"`
	HomeScore      Score                 `json:"homeScore"`
	AwayScore      Score                 `json:"awayScore"`
	Status         Status                `json:"status"`
	StartTimestamp int64                 `json:"startTimestamp"`
	Tournament     tournament.Tournament `json:"tournament"`
	Clock          Clock                 `json:"time"`
}

// Detail is the composed per-match record: metadata plus the
// reconciled event summary.
type Detail struct {
	Match
	Summary summary.Summary `json:"summary"`
}
