package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/karimfs/matchday/internal/db"
	"github.com/karimfs/matchday/internal/repository"
	"github.com/karimfs/matchday/internal/services"
)

type Server struct {
	DB             *db.DB
	MatchService   services.MatchService
	QuizService    services.QuizService
	ArticleService services.ArticleService
	PreferenceRepo repository.PreferenceRepository
	AllowedOrigins []string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.clientMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches", s.handleMatches)
		r.Post("/matches/refresh", s.handleRefreshMatches)
		r.Get("/matches/{id}", s.handleMatchDetail)
		r.Get("/leagues", s.handleLeagues)
		r.Get("/countries", s.handleCountries)
		r.Get("/worldcup", s.handleWorldCup)

		r.Get("/quiz/levels", s.handleQuizLevels)
		r.Post("/quiz/start", s.handleQuizStart)
		r.Get("/quiz/session", s.handleQuizSession)
		r.Post("/quiz/answer", s.handleQuizAnswer)
		r.Post("/quiz/advance", s.handleQuizAdvance)
		r.Post("/quiz/quit", s.handleQuizQuit)
		r.Get("/quiz/results", s.handleQuizResults)

		r.Get("/articles", s.handleArticles)
		r.Get("/articles/{id}", s.handleArticleDetail)

		r.Get("/translations/{lang}", s.handleTranslations)
		r.Get("/preferences", s.handleGetPreferences)
		r.Put("/preferences", s.handleSetPreferences)
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   s.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
