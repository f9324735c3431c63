package matches

import (
	"strings"

	"github.com/karimfs/matchday/internal/models"
)

// Filter keeps the matches satisfying every non-empty constraint. Country
// and league are exact matches; the team constraint is a case-insensitive
// substring test against either the home or the away name. The three
// constraints are ANDed.
func Filter(ms []models.Match, f models.Filters) []models.Match {
	if f.IsZero() {
		return ms
	}

	team := strings.ToLower(f.Team)
	out := make([]models.Match, 0, len(ms))
	for _, m := range ms {
		if f.Country != "" && m.CountryName != f.Country {
			continue
		}
		if f.League != "" && m.LeagueName != f.League {
			continue
		}
		if team != "" &&
			!strings.Contains(strings.ToLower(m.HomeTeamName), team) &&
			!strings.Contains(strings.ToLower(m.AwayTeamName), team) {
			continue
		}
		out = append(out, m)
	}
	return out
}
