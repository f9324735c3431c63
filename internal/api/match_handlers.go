package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/karimfs/matchday/internal/errors"
	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/matches"
	"github.com/karimfs/matchday/internal/models"
)

// matchListResponse is the payload behind the scores view: the bucket the
// client ended up on, per-bucket counts over the filtered set, and the
// selected bucket grouped by league in first-appearance order.
type matchListResponse struct {
	Category      models.Category       `json:"category"`
	Filters       models.Filters        `json:"filters"`
	Counts        map[string]int        `json:"counts"`
	Groups        []matches.LeagueGroup `json:"groups"`
	FetchError    string                `json:"fetch_error,omitempty"`
	LastFetchedAt string                `json:"last_fetched_at,omitempty"`
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := models.Filters{
		League:  q.Get("league"),
		Country: q.Get("country"),
		Team:    q.Get("team"),
	}
	active := models.ParseCategory(q.Get("category"))

	filtered := matches.Filter(s.MatchService.Matches(), filters)
	cat := matches.Categorize(filtered, time.Now())

	// When nothing is live the live tab would be empty for no visible
	// reason; fall through to upcoming so the default view has content.
	applied := cat.Recommended(active)

	resp := matchListResponse{
		Category: applied,
		Filters:  filters,
		Counts: map[string]int{
			"live":     len(cat.Live),
			"upcoming": len(cat.Upcoming),
			"finished": len(cat.Finished),
		},
		Groups:     matches.GroupByLeague(cat.Bucket(applied)),
		FetchError: s.MatchService.LastError(),
	}
	if t := s.MatchService.LastFetched(); !t.IsZero() {
		resp.LastFetchedAt = t.UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefreshMatches(w http.ResponseWriter, r *http.Request) {
	if err := s.MatchService.Refresh(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches": len(s.MatchService.Matches()),
	})
}

func (s *Server) handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, m := range s.MatchService.Matches() {
		if m.ID == id {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	handleError(w, r, errors.NewNotFoundError("match", id))
}

func (s *Server) handleLeagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"leagues": matches.UniqueLeagues(s.MatchService.Matches()),
	})
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"countries": matches.UniqueCountries(s.MatchService.Matches()),
	})
}

func (s *Server) handleWorldCup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	filters, category := matches.WorldCupShortcut(s.MatchService.Matches())
	log.Debug("world cup shortcut resolved to category %s", category)

	writeJSON(w, http.StatusOK, map[string]any{
		"filters":  filters,
		"category": category,
	})
}
