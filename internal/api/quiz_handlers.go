package api

import (
	"net/http"

	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/repository"
)

func (s *Server) handleQuizLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"levels": models.QuizLevels,
	})
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level string `json:"level"`
		Lang  string `json:"lang"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	clientID := clientFromContext(r.Context())
	state, err := s.QuizService.Start(r.Context(), clientID, body.Lang, models.QuizLevel(body.Level))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleQuizSession(w http.ResponseWriter, r *http.Request) {
	clientID := clientFromContext(r.Context())
	writeJSON(w, http.StatusOK, s.QuizService.State(r.Context(), clientID))
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Option string `json:"option"`
	}
	if err := decodeJSON(r, &body); err != nil {
		handleError(w, r, err)
		return
	}

	clientID := clientFromContext(r.Context())
	state, err := s.QuizService.Answer(r.Context(), clientID, body.Option)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleQuizAdvance(w http.ResponseWriter, r *http.Request) {
	clientID := clientFromContext(r.Context())
	state, err := s.QuizService.Advance(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleQuizQuit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	clientID := clientFromContext(r.Context())
	if err := s.QuizService.Quit(r.Context(), clientID); err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("quiz session quit")
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleQuizResults(w http.ResponseWriter, r *http.Request) {
	clientID := clientFromContext(r.Context())
	filter := repository.QuizResultFilter{
		Level: models.QuizLevel(r.URL.Query().Get("level")),
	}

	results, err := s.QuizService.Results(r.Context(), clientID, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	best, err := s.QuizService.BestScores(r.Context(), clientID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results":     results,
		"best_scores": best,
	})
}
