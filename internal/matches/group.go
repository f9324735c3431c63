package matches

import "github.com/karimfs/matchday/internal/models"

// LeagueGroup is one league's matches within a grouped view.
type LeagueGroup struct {
	League  string         `json:"league"`
	Matches []models.Match `json:"matches"`
}

// GroupByLeague groups a filtered sequence by league name, keeping groups in
// first-appearance order of the input rather than alphabetically.
func GroupByLeague(ms []models.Match) []LeagueGroup {
	index := make(map[string]int, len(ms))
	var groups []LeagueGroup
	for _, m := range ms {
		i, ok := index[m.LeagueName]
		if !ok {
			i = len(groups)
			index[m.LeagueName] = i
			groups = append(groups, LeagueGroup{League: m.LeagueName})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	return groups
}
