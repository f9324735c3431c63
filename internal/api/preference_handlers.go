package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karimfs/matchday/internal/errors"
	"github.com/karimfs/matchday/internal/i18n"
	"github.com/karimfs/matchday/internal/models"
)

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": i18n.Languages,
		"bundle":    i18n.ForLanguage(lang),
	})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	clientID := clientFromContext(r.Context())
	prefs, err := s.PreferenceRepo.Get(r.Context(), clientID)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleSetPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := decodeJSON(r, &prefs); err != nil {
		handleError(w, r, err)
		return
	}

	if prefs.Theme != "light" && prefs.Theme != "dark" {
		handleError(w, r, errors.NewValidationError("theme", "must be 'light' or 'dark'"))
		return
	}
	if prefs.Language != "en" && prefs.Language != "ar" {
		handleError(w, r, errors.NewValidationError("language", "must be 'en' or 'ar'"))
		return
	}

	clientID := clientFromContext(r.Context())
	if err := s.PreferenceRepo.Set(r.Context(), clientID, prefs); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
