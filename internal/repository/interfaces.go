package repository

import (
	"context"

	"github.com/karimfs/matchday/internal/models"
)

// SeenQuestionRepository persists the per-level seen-question history.
// Readers must tolerate a missing or corrupt stored value and treat it as an
// empty list; a broken history must never break the quiz.
type SeenQuestionRepository interface {
	SeenIDs(ctx context.Context, clientID string, level models.QuizLevel) ([]int, error)
	MarkSeen(ctx context.Context, clientID string, level models.QuizLevel, questionID int) error
	Reset(ctx context.Context, clientID string, level models.QuizLevel) error
}

// PreferenceRepository persists theme and language per client.
type PreferenceRepository interface {
	Get(ctx context.Context, clientID string) (models.Preferences, error)
	Set(ctx context.Context, clientID string, prefs models.Preferences) error
}

// QuizResultFilter narrows a quiz results listing.
type QuizResultFilter struct {
	Level models.QuizLevel
	Limit int
}

// QuizResultRepository records finished quiz sessions.
type QuizResultRepository interface {
	Insert(ctx context.Context, result models.QuizResult) (int64, error)
	List(ctx context.Context, clientID string, filter QuizResultFilter) ([]models.QuizResult, error)
	BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error)
}
