package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/repository"
	"github.com/karimfs/matchday/internal/services"
)

type stubFootballClient struct {
	matches []models.Match
	err     error
}

func (c *stubFootballClient) FetchEvents(ctx context.Context, from, to string) ([]models.Match, error) {
	return c.matches, c.err
}

type memSeenRepo struct {
	seen map[string][]int
}

func (m *memSeenRepo) key(clientID string, level models.QuizLevel) string {
	return clientID + "/" + string(level)
}

func (m *memSeenRepo) SeenIDs(ctx context.Context, clientID string, level models.QuizLevel) ([]int, error) {
	return m.seen[m.key(clientID, level)], nil
}

func (m *memSeenRepo) MarkSeen(ctx context.Context, clientID string, level models.QuizLevel, id int) error {
	k := m.key(clientID, level)
	m.seen[k] = append(m.seen[k], id)
	return nil
}

func (m *memSeenRepo) Reset(ctx context.Context, clientID string, level models.QuizLevel) error {
	delete(m.seen, m.key(clientID, level))
	return nil
}

type memResultRepo struct{}

func (memResultRepo) Insert(ctx context.Context, r models.QuizResult) (int64, error) { return 1, nil }
func (memResultRepo) List(ctx context.Context, clientID string, f repository.QuizResultFilter) ([]models.QuizResult, error) {
	return nil, nil
}
func (memResultRepo) BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error) {
	return nil, nil
}

type memPrefRepo struct {
	prefs map[string]models.Preferences
}

func (m *memPrefRepo) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	if p, ok := m.prefs[clientID]; ok {
		return p, nil
	}
	return models.Preferences{Theme: "light", Language: "en"}, nil
}

func (m *memPrefRepo) Set(ctx context.Context, clientID string, p models.Preferences) error {
	m.prefs[clientID] = p
	return nil
}

func fixtureMatches() []models.Match {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	return []models.Match{
		{ID: "1", CountryName: "England", LeagueName: "Premier League", Date: today,
			Time: "20:00", Status: "", Live: "1", HomeTeamName: "Arsenal", AwayTeamName: "Chelsea"},
		{ID: "2", CountryName: "Spain", LeagueName: "La Liga", Date: tomorrow,
			Time: "21:00", Status: "", Live: "0", HomeTeamName: "Sevilla", AwayTeamName: "Valencia"},
		{ID: "3", CountryName: "England", LeagueName: "Premier League", Date: yesterday,
			Time: "17:30", Status: "Finished", Live: "0", HomeTeamName: "Everton", AwayTeamName: "Fulham"},
	}
}

func newTestServer(t *testing.T, footballMatches []models.Match) *httptest.Server {
	t.Helper()

	matchSvc := services.NewMatchService(&stubFootballClient{matches: footballMatches}, 30)
	require.NoError(t, matchSvc.Refresh(context.Background()))

	quizSvc := services.NewQuizService(
		&memSeenRepo{seen: make(map[string][]int)},
		memResultRepo{},
		services.WithRandSource(func() *rand.Rand { return rand.New(rand.NewSource(1)) }),
		services.WithTickInterval(time.Hour),
	)
	t.Cleanup(quizSvc.Close)

	srv := &Server{
		MatchService:   matchSvc,
		QuizService:    quizSvc,
		ArticleService: services.NewArticleService(),
		PreferenceRepo: &memPrefRepo{prefs: make(map[string]models.Preferences)},
		AllowedOrigins: []string{"*"},
	}
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestServer_Matches(t *testing.T) {
	ts := newTestServer(t, fixtureMatches())

	var body struct {
		Category string         `json:"category"`
		Counts   map[string]int `json:"counts"`
		Groups   []struct {
			League  string         `json:"league"`
			Matches []models.Match `json:"matches"`
		} `json:"groups"`
	}
	resp := getJSON(t, ts.URL+"/api/matches", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "live", body.Category)
	assert.Equal(t, 1, body.Counts["live"])
	assert.Equal(t, 1, body.Counts["upcoming"])
	assert.Equal(t, 1, body.Counts["finished"])
	require.Len(t, body.Groups, 1)
	assert.Equal(t, "Premier League", body.Groups[0].League)
}

func TestServer_MatchesRecommendsUpcomingWhenNothingLive(t *testing.T) {
	ms := fixtureMatches()[1:] // drop the live match
	ts := newTestServer(t, ms)

	var body struct {
		Category string `json:"category"`
	}
	getJSON(t, ts.URL+"/api/matches?category=live", &body)

	assert.Equal(t, "upcoming", body.Category)
}

func TestServer_MatchesFilterByTeam(t *testing.T) {
	ts := newTestServer(t, fixtureMatches())

	var body struct {
		Counts map[string]int `json:"counts"`
	}
	getJSON(t, ts.URL+"/api/matches?team=chel", &body)

	assert.Equal(t, 1, body.Counts["live"])
	assert.Equal(t, 0, body.Counts["upcoming"])
	assert.Equal(t, 0, body.Counts["finished"])
}

func TestServer_MatchDetail(t *testing.T) {
	ts := newTestServer(t, fixtureMatches())

	var m models.Match
	resp := getJSON(t, ts.URL+"/api/matches/2", &m)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sevilla", m.HomeTeamName)

	var errBody struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	resp = getJSON(t, ts.URL+"/api/matches/999", &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Error.Code)
}

func TestServer_Leagues(t *testing.T) {
	ts := newTestServer(t, fixtureMatches())

	var body struct {
		Leagues []string `json:"leagues"`
	}
	getJSON(t, ts.URL+"/api/leagues", &body)

	assert.Equal(t, []string{"La Liga", "Premier League"}, body.Leagues)
}

func TestServer_QuizFlow(t *testing.T) {
	ts := newTestServer(t, nil)

	jar := newCookieClient(t)

	var state struct {
		Phase    string `json:"phase"`
		Total    int    `json:"total"`
		Question *struct {
			Options []string `json:"options"`
			Answer  string   `json:"answer"`
		} `json:"question"`
	}

	resp := postJSON(t, jar, ts.URL+"/api/quiz/start",
		`{"level":"intermediate","lang":"en"}`, &state)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "in_progress", state.Phase)
	assert.Equal(t, 5, state.Total)
	require.NotNil(t, state.Question)
	assert.Empty(t, state.Question.Answer)

	resp = postJSON(t, jar, ts.URL+"/api/quiz/answer",
		`{"option":"`+state.Question.Options[0]+`"}`, &state)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, state.Question)
	assert.NotEmpty(t, state.Question.Answer, "answer revealed once answered")

	resp = postJSON(t, jar, ts.URL+"/api/quiz/quit", `{}`, &map[string]any{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_QuizStartInvalidLevel(t *testing.T) {
	ts := newTestServer(t, nil)
	jar := newCookieClient(t)

	var errBody struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	resp := postJSON(t, jar, ts.URL+"/api/quiz/start",
		`{"level":"legend","lang":"en"}`, &errBody)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errBody.Error.Code)
}

func TestServer_ClientCookieAssigned(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/matches")
	require.NoError(t, err)
	resp.Body.Close()

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "client_id" && len(c.Value) == 32 {
			found = true
		}
	}
	assert.True(t, found, "first visit sets the client token cookie")
}

func TestServer_Translations(t *testing.T) {
	ts := newTestServer(t, nil)

	var body struct {
		Bundle struct {
			Direction string            `json:"direction"`
			Strings   map[string]string `json:"strings"`
		} `json:"bundle"`
	}
	getJSON(t, ts.URL+"/api/translations/ar", &body)
	assert.Equal(t, "rtl", body.Bundle.Direction)

	getJSON(t, ts.URL+"/api/translations/de", &body)
	assert.Equal(t, "ltr", body.Bundle.Direction, "unknown language falls back to English")
}

func TestServer_PreferencesRoundTrip(t *testing.T) {
	ts := newTestServer(t, nil)
	jar := newCookieClient(t)

	var prefs models.Preferences
	resp := putJSON(t, jar, ts.URL+"/api/preferences",
		`{"theme":"dark","language":"ar"}`, &prefs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dark", prefs.Theme)

	var errBody struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	resp = putJSON(t, jar, ts.URL+"/api/preferences",
		`{"theme":"sepia","language":"en"}`, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errBody.Error.Code)
}

func TestServer_Articles(t *testing.T) {
	ts := newTestServer(t, nil)

	var body struct {
		Articles []models.Article `json:"articles"`
	}
	getJSON(t, ts.URL+"/api/articles", &body)
	all := len(body.Articles)
	require.Greater(t, all, 0)

	getJSON(t, ts.URL+"/api/articles?q=press", &body)
	require.NotEmpty(t, body.Articles)
	assert.Less(t, len(body.Articles), all)
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// newCookieClient returns an http.Client that keeps the client token cookie
// across requests, like a browser would.
func newCookieClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url, body string, out any) *http.Response {
	t.Helper()
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func putJSON(t *testing.T, client *http.Client, url, body string, out any) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}
