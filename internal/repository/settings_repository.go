package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/antigravity/Trading-Journal-Backend/internal/apperrors"
)

// SettingsRepository provides data access methods for the
// portfolio_setting key/value table.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting returns the stored value for a key.
// Returns apperrors.ErrSettingNotFound when the key has no value.
func (r *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM portfolio_setting WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query portfolio_setting table: %w", err)
	}
	return value, nil
}

// SetSetting stores a value for a key, inserting or overwriting as needed.
func (r *SettingsRepository) SetSetting(key, value string) error {
	query := `
		INSERT INTO portfolio_setting ("key", value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to upsert portfolio_setting: %w", err)
	}
	return nil
}

// GetFloatSetting returns a numeric setting, or the fallback when the
// key is missing.
func (r *SettingsRepository) GetFloatSetting(key string, fallback float64) (float64, error) {
	raw, err := r.GetSetting(key)
	if err == apperrors.ErrSettingNotFound {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("setting %q is not numeric: %w", key, err)
	}
	return value, nil
}

// SetFloatSetting stores a numeric setting.
func (r *SettingsRepository) SetFloatSetting(key string, value float64) error {
	return r.SetSetting(key, strconv.FormatFloat(value, 'f', -1, 64))
}
