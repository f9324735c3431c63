package services

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/karimfs/matchday/internal/articles"
	"github.com/karimfs/matchday/internal/errors"
	"github.com/karimfs/matchday/internal/models"
)

// ArticleService serves the editorial catalog with fuzzy search over title,
// category and excerpt.
type ArticleService interface {
	List(ctx context.Context, lang string) []models.Article
	Get(ctx context.Context, lang string, id int) (models.Article, error)
	Search(ctx context.Context, lang, query string) []models.Article
}

type articleService struct{}

// NewArticleService creates a new ArticleService.
func NewArticleService() ArticleService {
	return &articleService{}
}

func (s *articleService) List(ctx context.Context, lang string) []models.Article {
	return articles.Catalog(lang)
}

func (s *articleService) Get(ctx context.Context, lang string, id int) (models.Article, error) {
	a, ok := articles.ByID(lang, id)
	if !ok {
		return models.Article{}, errors.NewNotFoundError("article", id)
	}
	return a, nil
}

// Search ranks the catalog against the query. An empty query returns the full
// list unranked. Matching is fuzzy and accent-insensitive on the title and
// category, with the excerpt as a substring fallback for longer phrases.
func (s *articleService) Search(ctx context.Context, lang, query string) []models.Article {
	query = strings.TrimSpace(query)
	catalog := articles.Catalog(lang)
	if query == "" {
		return catalog
	}

	type scored struct {
		article models.Article
		rank    int
	}
	var hits []scored
	for _, a := range catalog {
		rank := bestRank(query, a.Title, a.Category)
		if rank < 0 && strings.Contains(strings.ToLower(a.Excerpt), strings.ToLower(query)) {
			rank = len(a.Excerpt)
		}
		if rank < 0 {
			continue
		}
		hits = append(hits, scored{article: a, rank: rank})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]models.Article, len(hits))
	for i, h := range hits {
		out[i] = h.article
	}
	return out
}

// bestRank returns the lowest (best) fuzzy rank of the query against any of
// the fields, or -1 when nothing matches.
func bestRank(query string, fields ...string) int {
	best := -1
	for _, f := range fields {
		r := fuzzy.RankMatchNormalizedFold(query, f)
		if r < 0 {
			continue
		}
		if best < 0 || r < best {
			best = r
		}
	}
	return best
}
