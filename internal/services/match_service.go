package services

import (
	"context"
	"sync"
	"time"

	"github.com/karimfs/matchday/internal/football"
	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
)

// MatchService owns the current match list. The list is fetched in one shot
// over the trailing window and every derived view (categorization, filters,
// grouping) is recomputed from it on demand.
type MatchService interface {
	Refresh(ctx context.Context) error
	Matches() []models.Match
	// LastError returns the normalized message of the most recent failed
	// refresh, or "" after a successful one. An empty list with no error is
	// the valid "no matches" state, distinct from failure.
	LastError() string
	LastFetched() time.Time
}

type matchService struct {
	client     football.ClientInterface
	windowDays int
	now        func() time.Time

	mu        sync.RWMutex
	matches   []models.Match
	lastErr   string
	fetchedAt time.Time
}

// NewMatchService creates a new MatchService fetching the trailing
// windowDays of events.
func NewMatchService(client football.ClientInterface, windowDays int) MatchService {
	return &matchService{
		client:     client,
		windowDays: windowDays,
		now:        time.Now,
	}
}

func (s *matchService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("match_service")

	to := s.now()
	from := to.AddDate(0, 0, -s.windowDays)
	log.Debug("refreshing matches: from=%s, to=%s",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	ms, err := s.client.FetchEvents(ctx, from.Format("2006-01-02"), to.Format("2006-01-02"))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchedAt = s.now()
	if err != nil {
		log.Error("match refresh failed: %v", err)
		s.matches = nil
		s.lastErr = err.Error()
		return err
	}

	s.matches = ms
	s.lastErr = ""
	log.Info("match list refreshed: %d matches", len(ms))
	return nil
}

func (s *matchService) Matches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches
}

func (s *matchService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *matchService) LastFetched() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}
