// Package labels holds the static Spanish display dictionaries for
// tournaments and countries, plus country flag lookups. Unknown keys
// pass through unchanged so new competitions degrade gracefully.
package labels

import "strings"

var tournamentNames = map[string]string{
	// Europe
	"Premier League":               "Premier League",
	"Championship":                 "Championship",
	"FA Cup":                       "Copa FA",
	"Carabao Cup":                  "Copa de la Liga Inglesa",
	"Community Shield":             "Community Shield",
	"LaLiga":                       "LaLiga",
	"Copa del Rey":                 "Copa del Rey",
	"Supercopa de España":          "Supercopa de España",
	"Serie A":                      "Serie A",
	"Coppa Italia":                 "Copa Italia",
	"Supercoppa Italiana":          "Supercopa Italiana",
	"Bundesliga":                   "Bundesliga",
	"2. Bundesliga":                "Segunda Bundesliga",
	"DFB Pokal":                    "Copa Alemana",
	"DFL Supercup":                 "Supercopa Alemana",
	"Ligue 1":                      "Ligue 1",
	"Coupe de France":              "Copa de Francia",
	"Trophée des Champions":        "Supercopa de Francia",
	"Primeira Liga":                "Liga Portugal",
	"Taça de Portugal":             "Copa de Portugal",
	"Supertaça Cândido de Oliveira": "Supercopa de Portugal",
	"Eredivisie":                   "Eredivisie",
	"KNVB Beker":                   "Copa de los Países Bajos",
	"Johan Cruijff Schaal":         "Supercopa de los Países Bajos",
	"Belgian Pro League":           "Liga Belga",
	"Scottish Premiership":         "Liga Escocesa",
	"Turkish Super Lig":            "Liga Turca",
	"Greek Super League":           "Liga Griega",
	"Russian Premier League":       "Liga Rusa",
	"Ukrainian Premier League":     "Liga Ucraniana",
	// UEFA competitions
	"Champions League":  "Liga de Campeones",
	"Europa League":     "Europa League",
	"Conference League": "Conference League",
	"UEFA Super Cup":    "Supercopa de Europa",
	"Euro Cup":          "Eurocopa",
	"Nations League":    "Liga de Naciones",
	// Americas
	"Copa Libertadores":          "Copa Libertadores",
	"Copa Sudamericana":          "Copa Sudamericana",
	"Recopa Sudamericana":        "Recopa Sudamericana",
	"Brasileirão":                "Brasileirao",
	"Copa do Brasil":             "Copa de Brasil",
	"Supercopa do Brasil":        "Supercopa de Brasil",
	"Liga Profesional Argentina": "Liga Argentina",
	"Copa de la Liga Profesional": "Copa de la Liga Argentina",
	"Major League Soccer":        "MLS",
	"Leagues Cup":                "Leagues Cup",
	"CONCACAF Champions Cup":     "Liga de Campeones de la CONCACAF",
	"Gold Cup":                   "Copa Oro",
	// Africa
	"CAF Champions League":   "Liga de Campeones CAF",
	"CAF Confederation Cup":  "Copa Confederación CAF",
	"Africa Cup of Nations":  "Copa África",
	// Asia
	"AFC Champions League": "Liga de Campeones AFC",
	"Asian Cup":            "Copa de Asia",
	"J1 League":            "Liga Japonesa",
	"K League":             "Liga Coreana",
	"Chinese Super League": "Liga China",
	"Saudi Pro League":     "Liga Saudí",
	"Qatar Stars League":   "Liga de Qatar",
	// International
	"World Cup":     "Copa del Mundo",
	"Copa América":  "Copa América",
	"Olympic Games": "Juegos Olímpicos",
}

var countryNames = map[string]string{
	"England":       "Inglaterra",
	"Spain":         "España",
	"Italy":         "Italia",
	"Germany":       "Alemania",
	"France":        "Francia",
	"Portugal":      "Portugal",
	"Netherlands":   "Países Bajos",
	"Europe":        "Europa",
	"International": "Internacional",
}

// flagcdn country codes keyed by the provider's English country names.
// Continents and confederations map to placeholder flags.
var flagCodes = map[string]string{
	"England":        "gb-eng",
	"Scotland":       "gb-sct",
	"Wales":          "gb-wls",
	"United Kingdom": "gb",

	"Spain":          "es",
	"Italy":          "it",
	"Germany":        "de",
	"France":         "fr",
	"Portugal":       "pt",
	"Netherlands":    "nl",
	"Belgium":        "be",
	"Ireland":        "ie",
	"Sweden":         "se",
	"Norway":         "no",
	"Denmark":        "dk",
	"Finland":        "fi",
	"Switzerland":    "ch",
	"Austria":        "at",
	"Poland":         "pl",
	"Czech Republic": "cz",
	"Croatia":        "hr",
	"Cyprus":         "cy",
	"Serbia":         "rs",
	"Greece":         "gr",
	"Turkey":         "tr",
	"Russia":         "ru",
	"Ukraine":        "ua",
	"Romania":        "ro",
	"Hungary":        "hu",
	"Bulgaria":       "bg",
	"Slovakia":       "sk",
	"Slovenia":       "si",
	"Bosnia":         "ba",
	"Montenegro":     "me",
	"Albania":        "al",
	"Moldova":        "md",
	"Georgia":        "ge",
	"Armenia":        "am",
	"Kazakhstan":     "kz",
	"Israel":         "il",

	"Argentina":     "ar",
	"Brazil":        "br",
	"Uruguay":       "uy",
	"Chile":         "cl",
	"Colombia":      "co",
	"Paraguay":      "py",
	"Peru":          "pe",
	"Ecuador":       "ec",
	"Venezuela":     "ve",
	"Mexico":        "mx",
	"United States": "us",
	"Canada":        "ca",
	"Costa Rica":    "cr",
	"Honduras":      "hn",
	"Panama":        "pa",
	"USA":           "us",

	"Morocco":      "ma",
	"Algeria":      "dz",
	"Tunisia":      "tn",
	"Egypt":        "eg",
	"South Africa": "za",
	"Nigeria":      "ng",
	"Ghana":        "gh",
	"Ivory Coast":  "ci",
	"Cameroon":     "cm",
	"Senegal":      "sn",

	"Japan":                "jp",
	"South Korea":          "kr",
	"China":                "cn",
	"Saudi Arabia":         "sa",
	"Qatar":                "qa",
	"United Arab Emirates": "ae",
	"Iran":                 "ir",
	"India":                "in",
	"Australia":            "au",

	"Europe":          "eu",
	"International":   "un",
	"World":           "un",
	"Africa":          "un",
	"North America":   "un",
	"South America":   "un",
	"Central America": "un",
	"America":         "un",
	"Asia":            "un",
	"Oceania":         "un",
	"Antarctica":      "un",

	"UEFA":     "eu",
	"CONMEBOL": "un",
	"CONCACAF": "un",
	"AFC":      "un",
	"CAF":      "un",
	"OFC":      "un",
	"FIFA":     "un",
}

// International competitions whose flag is a region, not the category
// country reported by the provider.
var tournamentFlagRegions = map[string]string{
	"Africa Cup of Nations":   "Africa",
	"CONMEBOL Libertadores":   "South America",
	"Copa América":            "South America",
	"EURO":                    "Europe",
	"EURO, Qualification":     "Europe",
	"FIFA Club World Cup":     "World",
	"FIFA World Cup":          "World",
	"UEFA Champions League":   "Europe",
	"UEFA Conference League":  "Europe",
	"UEFA Europa League":      "Europe",
	"UEFA Nations League":     "Europe",
	"World Cup Qual. CONMEBOL": "South America",
	"World Cup Qual. UEFA":    "Europe",
}

func TournamentName(name string) string {
	if translated, ok := tournamentNames[name]; ok {
		return translated
	}
	return name
}

func CountryName(name string) string {
	if translated, ok := countryNames[name]; ok {
		return translated
	}
	return name
}

// CountryFlagURL returns the flagcdn image URL for a country name, or
// empty when no flag is known.
func CountryFlagURL(country string) string {
	code, ok := flagCodes[country]
	if !ok {
		return ""
	}
	return "https://flagcdn.com/w80/" + code + ".png"
}

// TournamentFlagURL resolves the flag for a tournament, preferring the
// regional override for international competitions.
func TournamentFlagURL(tournamentName, country string) string {
	if region, ok := tournamentFlagRegions[strings.TrimSpace(tournamentName)]; ok {
		return CountryFlagURL(region)
	}
	return CountryFlagURL(country)
}
