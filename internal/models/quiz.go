package models

// QuizLevel is a named quiz difficulty tier with its own question catalog
// and its own persisted seen-question history.
type QuizLevel string

const (
	LevelIntermediate QuizLevel = "intermediate"
	LevelAdvanced     QuizLevel = "advanced"
	LevelChampion     QuizLevel = "champion"
)

// QuizLevels lists the supported tiers in display order.
var QuizLevels = []QuizLevel{LevelIntermediate, LevelAdvanced, LevelChampion}

// Valid reports whether the level is one of the supported tiers.
func (l QuizLevel) Valid() bool {
	switch l {
	case LevelIntermediate, LevelAdvanced, LevelChampion:
		return true
	}
	return false
}

// Question is one quiz question. IDs are unique within a level's catalog.
// The correct option is identified by exact string equality with Answer.
type Question struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Quiz is a level's full question catalog for one language.
type Quiz struct {
	Title     string     `json:"title"`
	Level     QuizLevel  `json:"level"`
	Questions []Question `json:"questions"`
}

// QuizResult is one finished session, recorded for the results history.
type QuizResult struct {
	ID          int64     `json:"id"`
	ClientID    string    `json:"-"`
	Level       QuizLevel `json:"level"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	DurationSec float64   `json:"duration_seconds"`
	CreatedAt   string    `json:"created_at"`
}

// QuizBestScore is the best recorded score for one level.
type QuizBestScore struct {
	Level QuizLevel `json:"level"`
	Score int       `json:"score"`
	Total int       `json:"total"`
}
