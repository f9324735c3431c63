package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/karimfs/matchday/internal/errors"
	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/quiz"
	"github.com/karimfs/matchday/internal/repository"
)

// QuizPhase is the session phase visible to clients.
type QuizPhase string

const (
	PhaseLevelSelect QuizPhase = "level_select"
	PhaseInProgress  QuizPhase = "in_progress"
	PhaseFinished    QuizPhase = "finished"
)

// QuizQuestionView is the question as shown to the client. The correct
// answer and explanation are withheld until the question is answered.
type QuizQuestionView struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizState is a snapshot of one client's session.
type QuizState struct {
	Phase           QuizPhase         `json:"phase"`
	Level           models.QuizLevel  `json:"level,omitempty"`
	Title           string            `json:"title,omitempty"`
	Index           int               `json:"index"`
	Total           int               `json:"total"`
	Score           int               `json:"score"`
	Countdown       int               `json:"countdown"`
	Answered        bool              `json:"answered"`
	Selected        string            `json:"selected,omitempty"`
	ShowExplanation bool              `json:"show_explanation"`
	Question        *QuizQuestionView `json:"question,omitempty"`
}

// QuizService runs quiz sessions. One session per client token; starting a
// new session tears the previous one down, countdown ticker included.
type QuizService interface {
	Start(ctx context.Context, clientID, lang string, level models.QuizLevel) (*QuizState, error)
	State(ctx context.Context, clientID string) *QuizState
	Answer(ctx context.Context, clientID, option string) (*QuizState, error)
	Advance(ctx context.Context, clientID string) (*QuizState, error)
	Quit(ctx context.Context, clientID string) error
	Results(ctx context.Context, clientID string, filter repository.QuizResultFilter) ([]models.QuizResult, error)
	BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error)
	Close()
}

type sessionRuntime struct {
	session   *quiz.Session
	title     string
	startedAt time.Time
	stop      chan struct{}
	stopped   bool
	recorded  bool
}

type quizService struct {
	seenRepo   repository.SeenQuestionRepository
	resultRepo repository.QuizResultRepository
	newRand    func() *rand.Rand
	tickEvery  time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionRuntime
}

// QuizOption configures a quizService.
type QuizOption func(*quizService)

// WithRandSource sets the shuffle source factory, so tests can make draws
// deterministic.
func WithRandSource(f func() *rand.Rand) QuizOption {
	return func(s *quizService) { s.newRand = f }
}

// WithTickInterval sets the countdown tick period (one second in production).
func WithTickInterval(d time.Duration) QuizOption {
	return func(s *quizService) { s.tickEvery = d }
}

// NewQuizService creates a new QuizService.
func NewQuizService(seenRepo repository.SeenQuestionRepository, resultRepo repository.QuizResultRepository, opts ...QuizOption) QuizService {
	s := &quizService{
		seenRepo:   seenRepo,
		resultRepo: resultRepo,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		tickEvery: time.Second,
		sessions:  make(map[string]*sessionRuntime),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *quizService) Start(ctx context.Context, clientID, lang string, level models.QuizLevel) (*QuizState, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_service")

	if !level.Valid() {
		return nil, errors.NewValidationError("level", "must be 'intermediate', 'advanced' or 'champion'")
	}

	catalog, ok := quiz.ForLevel(lang, level)
	if !ok {
		return nil, errors.NewNotFoundError("quiz level", level)
	}

	seen, err := s.seenRepo.SeenIDs(ctx, clientID, level)
	if err != nil {
		log.Error("failed to load seen ids: %v", err)
		return nil, errors.NewInternalError(err)
	}

	session, eff, err := quiz.NewSession(catalog, seen, s.newRand())
	if err != nil {
		// Undersized catalogs are a configuration error, not a user one.
		log.Error("cannot start session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if eff.ResetSeen {
		log.Info("seen history exhausted for level %s, resetting", level)
		if err := s.seenRepo.Reset(ctx, clientID, level); err != nil {
			log.Warn("failed to reset seen ids: %v", err)
			// Continue; the draw already ran over the full catalog.
		}
	}

	rt := &sessionRuntime{
		session:   session,
		title:     catalog.Title,
		startedAt: time.Now(),
		stop:      make(chan struct{}),
	}

	s.mu.Lock()
	s.teardownLocked(clientID)
	s.sessions[clientID] = rt
	s.mu.Unlock()

	go s.runCountdown(clientID, rt)

	log.Info("quiz session started: level=%s, lang=%s", level, lang)
	return s.snapshot(rt), nil
}

// runCountdown drives one session's countdown. The runtime pointer guards
// against stale timers: if the client has since started a new session, ticks
// for the old one are discarded and the goroutine exits via its stop channel.
func (s *quizService) runCountdown(clientID string, rt *sessionRuntime) {
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()
	for {
		select {
		case <-rt.stop:
			return
		case <-ticker.C:
			s.tick(clientID, rt)
		}
	}
}

func (s *quizService) tick(clientID string, rt *sessionRuntime) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[clientID] != rt {
		return // replaced session, stale tick
	}
	rt.session.Tick()
	if rt.session.Finished() {
		s.finishLocked(clientID, rt)
	}
}

func (s *quizService) State(ctx context.Context, clientID string) *QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.sessions[clientID]
	if !ok {
		return &QuizState{Phase: PhaseLevelSelect}
	}
	return s.snapshot(rt)
}

func (s *quizService) Answer(ctx context.Context, clientID, option string) (*QuizState, error) {
	log := logger.FromContext(ctx).WithPrefix("quiz_service")

	s.mu.Lock()
	rt, ok := s.sessions[clientID]
	if !ok {
		s.mu.Unlock()
		return nil, errors.NewNotFoundError("quiz session", clientID)
	}

	eff := rt.session.Answer(option)
	level := rt.session.Level
	state := s.snapshot(rt)
	s.mu.Unlock()

	// Persist outside the lock; the effect is already decided.
	if eff.MarkSeenID != 0 {
		if err := s.seenRepo.MarkSeen(ctx, clientID, level, eff.MarkSeenID); err != nil {
			log.Warn("failed to mark question seen: %v", err)
			// Continue even if history persistence fails.
		}
	}
	return state, nil
}

func (s *quizService) Advance(ctx context.Context, clientID string) (*QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rt, ok := s.sessions[clientID]
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", clientID)
	}
	rt.session.Advance()
	if rt.session.Finished() {
		s.finishLocked(clientID, rt)
	}
	return s.snapshot(rt), nil
}

func (s *quizService) Quit(ctx context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked(clientID)
	return nil
}

func (s *quizService) Results(ctx context.Context, clientID string, filter repository.QuizResultFilter) ([]models.QuizResult, error) {
	out, err := s.resultRepo.List(ctx, clientID, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return out, nil
}

func (s *quizService) BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error) {
	out, err := s.resultRepo.BestScores(ctx, clientID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return out, nil
}

// Close tears down every live session.
func (s *quizService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for clientID := range s.sessions {
		s.teardownLocked(clientID)
	}
}

// finishLocked stops the countdown and records the result. The session stays
// registered so the client can read the final score until quit or restart.
func (s *quizService) finishLocked(clientID string, rt *sessionRuntime) {
	s.stopTimerLocked(rt)
	if rt.recorded {
		return
	}
	rt.recorded = true

	result := models.QuizResult{
		ClientID:    clientID,
		Level:       rt.session.Level,
		Score:       rt.session.Score,
		Total:       len(rt.session.Questions),
		DurationSec: time.Since(rt.startedAt).Seconds(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := s.resultRepo.Insert(ctx, result); err != nil {
			logger.Default().WithPrefix("quiz_service").Warn("failed to record quiz result: %v", err)
		}
	}()
}

func (s *quizService) teardownLocked(clientID string) {
	if rt, ok := s.sessions[clientID]; ok {
		s.stopTimerLocked(rt)
		delete(s.sessions, clientID)
	}
}

func (s *quizService) stopTimerLocked(rt *sessionRuntime) {
	if !rt.stopped {
		rt.stopped = true
		close(rt.stop)
	}
}

func (s *quizService) snapshot(rt *sessionRuntime) *QuizState {
	sess := rt.session
	state := &QuizState{
		Phase:           PhaseInProgress,
		Level:           sess.Level,
		Title:           rt.title,
		Index:           sess.Index,
		Total:           len(sess.Questions),
		Score:           sess.Score,
		Countdown:       sess.Countdown,
		Answered:        sess.Answered,
		Selected:        sess.Selected,
		ShowExplanation: sess.ShowExplanation,
	}
	if sess.Finished() {
		state.Phase = PhaseFinished
		return state
	}
	q, _ := sess.Current()
	view := &QuizQuestionView{
		ID:       q.ID,
		Question: q.Question,
		Options:  q.Options,
	}
	if sess.Answered {
		view.Answer = q.Answer
		view.Explanation = q.Explanation
	}
	state.Question = view
	return state
}
