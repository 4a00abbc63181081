package httpapi

import (
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
	"github.com/golazo-app/golazo-api/internal/labels"
)

// tournamentDTO carries the Spanish display labels and the flag URL on
// top of the provider catalog entry.
type tournamentDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug,omitempty"`
	Country        string `json:"country,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FlagURL        string `json:"flagUrl,omitempty"`
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:             t.ID,
		Name:           labels.TournamentName(t.Name),
		Slug:           t.Slug,
		Country:        labels.CountryName(t.Country),
		CountryCode:    t.CountryCode,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		FlagURL:        labels.TournamentFlagURL(t.Name, t.Country),
	}
}
