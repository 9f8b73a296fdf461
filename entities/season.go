package entities

import "strings"

// Season selects a row in every seasonal reference table.
type Season string

const (
	SeasonSummer  Season = "summer"
	SeasonMonsoon Season = "monsoon"
	SeasonWinter  Season = "winter"
)

// DefaultSeason is used when a request does not name one.
const DefaultSeason = SeasonSummer

var Seasons = []Season{SeasonSummer, SeasonMonsoon, SeasonWinter}

func (s Season) Valid() bool {
	switch s {
	case SeasonSummer, SeasonMonsoon, SeasonWinter:
		return true
	}
	return false
}

// ParseSeason normalizes s. An empty string maps to DefaultSeason.
func ParseSeason(s string) (Season, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSeason, true
	}
	season := Season(s)
	return season, season.Valid()
}
