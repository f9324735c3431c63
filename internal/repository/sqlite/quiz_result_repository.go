package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type quizResultRepository struct {
	db *sql.DB
}

// NewQuizResultRepository creates a new QuizResultRepository implementation
func NewQuizResultRepository(db *sql.DB) repository.QuizResultRepository {
	return &quizResultRepository{db: db}
}

func (r *quizResultRepository) Insert(ctx context.Context, result models.QuizResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("inserting quiz result: level=%s, score=%d/%d", result.Level, result.Score, result.Total)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO quiz_results (client_id, level, score, total, duration_seconds)
VALUES (?, ?, ?, ?, ?)
`, result.ClientID, result.Level, result.Score, result.Total, result.DurationSec)
	if err != nil {
		log.Error("failed to insert quiz result: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get quiz result id: %v", err)
		return 0, err
	}
	log.Debug("quiz result inserted: id=%d", id)
	return id, nil
}

func (r *quizResultRepository) List(ctx context.Context, clientID string, filter repository.QuizResultFilter) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("listing quiz results: level=%s, limit=%d", filter.Level, filter.Limit)

	query := sqlBuilder.Select("id", "client_id", "level", "score", "total", "duration_seconds", "created_at").
		From("quiz_results").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC")

	if filter.Level != "" {
		query = query.Where(squirrel.Eq{"level": filter.Level})
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query = query.Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query quiz results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.QuizResult
	for rows.Next() {
		var qr models.QuizResult
		if err := rows.Scan(&qr.ID, &qr.ClientID, &qr.Level, &qr.Score, &qr.Total, &qr.DurationSec, &qr.CreatedAt); err != nil {
			log.Error("failed to scan quiz result row: %v", err)
			return nil, err
		}
		out = append(out, qr)
	}
	log.Debug("found %d quiz results", len(out))
	return out, rows.Err()
}

func (r *quizResultRepository) BestScores(ctx context.Context, clientID string) ([]models.QuizBestScore, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT level, MAX(score), total
FROM quiz_results
WHERE client_id = ?
GROUP BY level, total
ORDER BY level
`, clientID)
	if err != nil {
		log.Error("failed to query best scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.QuizBestScore
	for rows.Next() {
		var bs models.QuizBestScore
		if err := rows.Scan(&bs.Level, &bs.Score, &bs.Total); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}
