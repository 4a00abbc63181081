package summary

// TeamSide tells whether an event belongs to the home or away side of a
// match. It is always derived by cross-referencing sources, never taken
// from a single feed as authoritative.
type TeamSide string

const (
	TeamSideHome TeamSide = "home"
	TeamSideAway TeamSide = "away"
)

// Player identity as used across all per-match feeds. ID is the join
// key; everything else is display data.
type Player struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Slug         string `json:"slug"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
	UserCount    int    `json:"userCount"`
}

// Shot is a single attempt from the shot map, optionally decorated with
// a heuristic assist link when the shot is a goal.
type Shot struct {
	Player            Player  `json:"player"`
	Time              int     `json:"time"`
	TimeSeconds       int     `json:"timeSeconds"`
	TeamID            int64   `json:"teamId"`
	IsHome            bool    `json:"isHome"`
	ShotType          string  `json:"shotType"`
	Situation         string  `json:"situation"`
	BodyPart          string  `json:"bodyPart"`
	GoalType          string  `json:"goalType,omitempty"`
	XG                float64 `json:"xg"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	HasAssist         bool    `json:"hasAssist"`
	AssistPlayer      *Player `json:"assistPlayer,omitempty"`
	AssistDescription string  `json:"assistDescription,omitempty"`
}

// Foul is either derived from a card incident, synthesized from the
// per-player foul counter, or a merge of both. IncidentID is the dedup
// handle: card fouls carry the upstream incident id, synthesized fouls
// carry "<playerID>_foul_<k>".
type Foul struct {
	PlayerID    int64    `json:"playerId"`
	PlayerName  string   `json:"playerName"`
	ShirtNumber int      `json:"shirtNumber"`
	Team        TeamSide `json:"team"`
	Time        int      `json:"time"`
	TimeSeconds int      `json:"timeSeconds"`
	FoulType    string   `json:"foulType"`
	Description string   `json:"description"`
	IncidentID  string   `json:"incidentId"`
}

// Save is a goalkeeper save synthesized from the saves counter.
type Save struct {
	PlayerID    int64    `json:"playerId"`
	PlayerName  string   `json:"playerName"`
	ShirtNumber int      `json:"shirtNumber"`
	Team        TeamSide `json:"team"`
	Time        int      `json:"time"`
	TimeSeconds int      `json:"timeSeconds"`
	SaveType    string   `json:"saveType"`
	Description string   `json:"description"`
	ShotBlocked bool     `json:"shotBlocked"`
}

// Summary is the reconciled, display-ready event timeline of a match.
// All slices are sorted descending by TimeSeconds.
type Summary struct {
	Shots []Shot `json:"shots"`
	Fouls []Foul `json:"fouls"`
	Saves []Save `json:"saves"`
}
