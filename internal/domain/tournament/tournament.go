package tournament

// Tournament is a football competition as surfaced by the upstream
// suggestions feed. IDs are kept as strings because the fallback list
// predates numeric provider ids.
type Tournament struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug,omitempty"`
	Country        string `json:"country,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

// Backup is the static list served when the upstream feed is
// unavailable. Order matters for display.
func Backup() []Tournament {
	return []Tournament{
		{ID: "8", Name: "LaLiga", Slug: "laliga", Country: "Spain", CountryCode: "ES"},
		{ID: "17", Name: "Premier League", Slug: "premier-league", Country: "England", CountryCode: "EN"},
		{ID: "23", Name: "Serie A", Slug: "serie-a", Country: "Italy", CountryCode: "IT"},
		{ID: "35", Name: "Bundesliga", Slug: "bundesliga", Country: "Germany", CountryCode: "DE"},
		{ID: "34", Name: "Ligue 1", Slug: "ligue-1", Country: "France", CountryCode: "FR"},
		{ID: "7", Name: "Champions League", Slug: "champions-league", Country: "Europe", CountryCode: "EU"},
		{ID: "679", Name: "LaLiga 2", Slug: "laliga-2", Country: "Spain", CountryCode: "ES"},
		{ID: "2955", Name: "LigaPro Serie A, Primera Etapa", Slug: "ligapro", Country: "Ecuador", CountryCode: "EC"},
	}
}
