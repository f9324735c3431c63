package models

// Category is one of the three mutually exclusive match buckets.
type Category string

const (
	CategoryLive     Category = "live"
	CategoryUpcoming Category = "upcoming"
	CategoryFinished Category = "finished"
)

// ParseCategory maps a string to a Category, defaulting to live.
func ParseCategory(s string) Category {
	switch s {
	case string(CategoryUpcoming):
		return CategoryUpcoming
	case string(CategoryFinished):
		return CategoryFinished
	default:
		return CategoryLive
	}
}

// Match is a single fixture as delivered by the upstream football API.
// Field names mirror the provider's wire format: scores are strings with ""
// meaning "not yet played", and the live flag is the string "1" when live.
type Match struct {
	ID            string `json:"match_id"`
	CountryID     string `json:"country_id"`
	CountryName   string `json:"country_name"`
	LeagueID      string `json:"league_id"`
	LeagueName    string `json:"league_name"`
	Date          string `json:"match_date"`
	Status        string `json:"match_status"`
	Time          string `json:"match_time"`
	HomeTeamID    string `json:"match_hometeam_id"`
	HomeTeamName  string `json:"match_hometeam_name"`
	HomeScore     string `json:"match_hometeam_score"`
	AwayTeamID    string `json:"match_awayteam_id"`
	AwayTeamName  string `json:"match_awayteam_name"`
	AwayScore     string `json:"match_awayteam_score"`
	HomeSystem    string `json:"match_hometeam_system"`
	AwaySystem    string `json:"match_awayteam_system"`
	Live          string `json:"match_live"`
	HomeTeamBadge string `json:"team_home_badge"`
	AwayTeamBadge string `json:"team_away_badge"`

	Goalscorers []Goalscorer `json:"goalscorer"`
	Cards       []CardEvent  `json:"cards"`
	Lineups     Lineups      `json:"lineups"`
}

// IsLive reports whether the provider flagged the match as in play.
func (m Match) IsLive() bool {
	return m.Live == "1"
}

// StatusFinished is the provider's terminal match status. Anything else on a
// non-live match (including "Postponed") counts as upcoming.
const StatusFinished = "Finished"

// Goalscorer is a goal event, ordered by match minute.
type Goalscorer struct {
	Time       string `json:"time"`
	HomeScorer string `json:"home_scorer"`
	AwayScorer string `json:"away_scorer"`
	Score      string `json:"score"`
	Info       string `json:"info"`
}

// CardEvent is a booking event, ordered by match minute.
type CardEvent struct {
	Time      string `json:"time"`
	HomeFault string `json:"home_fault"`
	Card      string `json:"card"`
	AwayFault string `json:"away_fault"`
	Info      string `json:"info"`
}

// LineupPlayer is a single roster entry.
type LineupPlayer struct {
	Player        string  `json:"player"`
	PlayerNumber  string  `json:"player_number"`
	PlayerCountry *string `json:"player_country"`
}

// TeamLineup is one side's roster.
type TeamLineup struct {
	StartingLineups []LineupPlayer `json:"starting_lineups"`
	Substitutes     []LineupPlayer `json:"substitutes"`
	Coach           []LineupPlayer `json:"coach"`
	MissingPlayers  []LineupPlayer `json:"missing_players"`
}

// Lineups holds both rosters.
type Lineups struct {
	HomeTeam TeamLineup `json:"home_team"`
	AwayTeam TeamLineup `json:"away_team"`
}

// Filters is the set of optional match constraints for the current view.
// An empty string means "no constraint".
type Filters struct {
	League  string `json:"league"`
	Country string `json:"country"`
	Team    string `json:"team"`
}

// IsZero reports whether no constraint is set.
func (f Filters) IsZero() bool {
	return f.League == "" && f.Country == "" && f.Team == ""
}
