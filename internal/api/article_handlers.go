package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karimfs/matchday/internal/errors"
)

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := q.Get("lang")

	list := s.ArticleService.Search(r.Context(), lang, q.Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"articles": list,
	})
}

func (s *Server) handleArticleDetail(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid article id: "+idStr))
		return
	}

	article, err := s.ArticleService.Get(r.Context(), r.URL.Query().Get("lang"), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}
