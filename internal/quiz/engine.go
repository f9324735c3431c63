// Package quiz implements the quiz session state machine: question drawing
// with history-aware de-duplication, answer scoring and the per-question
// countdown. The engine is pure; persistence side effects are returned as
// descriptions for the caller to apply.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/karimfs/matchday/internal/models"
)

const (
	// SessionLength is the number of questions drawn per session.
	SessionLength = 5
	// CountdownStart is the per-question countdown in seconds.
	CountdownStart = 6
)

// Effect describes the persistence work a transition requires. The engine
// never touches storage itself; a thin adapter applies these.
type Effect struct {
	// ResetSeen asks the caller to clear the persisted seen-id set for the
	// session's level before recording anything new.
	ResetSeen bool
	// MarkSeenID is the question id to add to the seen set, or 0 for none.
	// Only an explicit answer marks a question seen; a timeout does not.
	MarkSeenID int
}

// Session is one quiz attempt from level selection to completion.
type Session struct {
	Level     models.QuizLevel
	Questions []models.Question
	Index     int
	Score     int
	Countdown int

	// Per-question sub-state, reset on every advance.
	Answered        bool
	Selected        string
	ShowExplanation bool
}

// NewSession draws a fresh session for the given catalog.
//
// Questions whose id appears in seen are excluded from the draw. When fewer
// than SessionLength unseen questions remain the seen set is reset (signalled
// via the returned Effect) and the draw runs over the full catalog, accepting
// immediate repeats right after a reset. The shuffle source is injectable so
// callers can make draws deterministic.
//
// A catalog smaller than SessionLength is a configuration error.
func NewSession(q models.Quiz, seen []int, rng *rand.Rand) (*Session, Effect, error) {
	if len(q.Questions) < SessionLength {
		return nil, Effect{}, fmt.Errorf("quiz catalog for level %q has %d questions, need at least %d",
			q.Level, len(q.Questions), SessionLength)
	}

	seenSet := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	pool := make([]models.Question, 0, len(q.Questions))
	for _, question := range q.Questions {
		if _, ok := seenSet[question.ID]; !ok {
			pool = append(pool, question)
		}
	}

	var eff Effect
	if len(pool) < SessionLength {
		eff.ResetSeen = true
		pool = append(pool[:0:0], q.Questions...)
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return &Session{
		Level:     q.Level,
		Questions: pool[:SessionLength],
		Countdown: CountdownStart,
	}, eff, nil
}

// Finished reports whether every question has been played.
func (s *Session) Finished() bool {
	return s.Index >= len(s.Questions)
}

// Current returns the question being shown, if any.
func (s *Session) Current() (models.Question, bool) {
	if s.Finished() {
		return models.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Answer records the selected option for the current question. The score
// increments only on exact string equality with the stored answer, and the
// question id is always marked seen, right or wrong. Answering twice, or
// answering a finished session, is a no-op.
func (s *Session) Answer(option string) Effect {
	q, ok := s.Current()
	if !ok || s.Answered {
		return Effect{}
	}

	s.Selected = option
	s.Answered = true
	s.ShowExplanation = true
	if option == q.Answer {
		s.Score++
	}
	return Effect{MarkSeenID: q.ID}
}

// Advance moves to the next question, resetting the per-question sub-state
// and the countdown. Advancing past the last question finishes the session.
func (s *Session) Advance() {
	if s.Finished() {
		return
	}
	s.Index++
	s.Answered = false
	s.Selected = ""
	s.ShowExplanation = false
	s.Countdown = CountdownStart
}

// Tick drives the countdown by one second. It is a no-op once the current
// question is answered or the session is finished. When the countdown runs
// out the session advances as a timeout: no score change and, deliberately,
// no seen mark for the skipped question. Reports whether a timeout advance
// happened.
func (s *Session) Tick() bool {
	if s.Answered || s.Finished() {
		return false
	}
	if s.Countdown > 1 {
		s.Countdown--
		return false
	}
	s.Advance()
	return true
}
