package matches

import (
	"sort"
	"strings"

	"github.com/karimfs/matchday/internal/models"
)

// worldCupLeague is the league constraint applied by the world-cup shortcut.
const worldCupLeague = "World Cup"

// UniqueLeagues returns the distinct league names across the full match
// set, lexically sorted, for populating filter option lists.
func UniqueLeagues(ms []models.Match) []string {
	return uniqueSorted(ms, func(m models.Match) string { return m.LeagueName })
}

// UniqueCountries returns the distinct country names, lexically sorted.
func UniqueCountries(ms []models.Match) []string {
	return uniqueSorted(ms, func(m models.Match) string { return m.CountryName })
}

func uniqueSorted(ms []models.Match, key func(models.Match) string) []string {
	seen := make(map[string]struct{}, len(ms))
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		k := key(m)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WorldCupShortcut returns the filters and active category for the
// world-cup banner: the league constraint is pinned to the sentinel name,
// country and team constraints are cleared, and the category is upcoming
// when any non-live, non-finished match belongs to a league whose name
// contains "world cup" (case-insensitive), finished otherwise.
func WorldCupShortcut(ms []models.Match) (models.Filters, models.Category) {
	f := models.Filters{League: worldCupLeague}
	for _, m := range ms {
		if strings.Contains(strings.ToLower(m.LeagueName), "world cup") &&
			!m.IsLive() && m.Status != models.StatusFinished {
			return f, models.CategoryUpcoming
		}
	}
	return f, models.CategoryFinished
}
