package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/karimfs/matchday/internal/logger"
	"github.com/karimfs/matchday/internal/models"
	"github.com/karimfs/matchday/internal/repository"
)

const (
	themeKey    = "theme"
	languageKey = "language"
)

type preferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository implementation
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	log := logger.FromContext(ctx).WithPrefix("pref_repo")

	prefs := models.Preferences{Theme: "light", Language: "en"}
	rows, err := r.db.QueryContext(ctx, `
SELECT key, value FROM kv WHERE client_id = ? AND key IN (?, ?)
`, clientID, themeKey, languageKey)
	if err != nil {
		log.Error("failed to read preferences: %v", err)
		return prefs, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return prefs, err
		}
		switch k {
		case themeKey:
			prefs.Theme = v
		case languageKey:
			prefs.Language = v
		}
	}
	return prefs, rows.Err()
}

func (r *preferenceRepository) Set(ctx context.Context, clientID string, prefs models.Preferences) error {
	log := logger.FromContext(ctx).WithPrefix("pref_repo")

	if prefs.Theme != "light" && prefs.Theme != "dark" {
		return errors.New("theme must be light or dark")
	}
	if prefs.Language != "en" && prefs.Language != "ar" {
		return errors.New("language must be en or ar")
	}

	for k, v := range map[string]string{themeKey: prefs.Theme, languageKey: prefs.Language} {
		if _, err := r.db.ExecContext(ctx, `
INSERT INTO kv (client_id, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, clientID, k, v); err != nil {
			log.Error("failed to store preference %s: %v", k, err)
			return err
		}
	}
	return nil
}
