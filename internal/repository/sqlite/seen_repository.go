package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/repository"
)

// seenKey builds the storage key for a level's history. The pattern matches
// what the browser frontend used before the history moved server-side, so a
// future import stays possible.
func seenKey(level models.QuizLevel) string {
	return fmt.Sprintf("seen_questions_%s", level)
}

type seenQuestionRepository struct {
	db *sql.DB
}

// NewSeenQuestionRepository creates a new SeenQuestionRepository implementation
func NewSeenQuestionRepository(db *sql.DB) repository.SeenQuestionRepository {
	return &seenQuestionRepository{db: db}
}

func (r *seenQuestionRepository) SeenIDs(ctx context.Context, clientID string, level models.QuizLevel) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("seen_repo")

	var raw string
	err := r.db.QueryRowContext(ctx, `
SELECT value FROM kv WHERE client_id = ? AND key = ?
`, clientID, seenKey(level)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to read seen ids: %v", err)
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Corrupt history is treated as empty rather than surfaced.
		log.Warn("corrupt seen-id value for level %s, treating as empty: %v", level, err)
		return nil, nil
	}
	log.Debug("loaded %d seen ids for level %s", len(ids), level)
	return ids, nil
}

func (r *seenQuestionRepository) MarkSeen(ctx context.Context, clientID string, level models.QuizLevel, questionID int) error {
	log := logger.FromContext(ctx).WithPrefix("seen_repo")

	ids, err := r.SeenIDs(ctx, clientID, level)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == questionID {
			return nil // already recorded
		}
	}
	ids = append(ids, questionID)

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO kv (client_id, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, clientID, seenKey(level), string(raw))
	if err != nil {
		log.Error("failed to mark question seen: %v", err)
		return err
	}
	log.Debug("marked question %d seen for level %s", questionID, level)
	return nil
}

func (r *seenQuestionRepository) Reset(ctx context.Context, clientID string, level models.QuizLevel) error {
	log := logger.FromContext(ctx).WithPrefix("seen_repo")

	_, err := r.db.ExecContext(ctx, `
DELETE FROM kv WHERE client_id = ? AND key = ?
`, clientID, seenKey(level))
	if err != nil {
		log.Error("failed to reset seen ids: %v", err)
		return err
	}
	log.Debug("seen ids reset for level %s", level)
	return nil
}
