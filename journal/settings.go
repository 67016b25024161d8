package journal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rustyeddy/tradelog/config"
)

const (
	keyCommission       = "commission_per_contract"
	keyTextSize         = "text_size"
	keyDarkMode         = "dark_mode"
	keyScreenshotFolder = "screenshot_folder"
)

// LoadSettings overlays the persisted settings on defaults. Keys never
// saved keep their default value.
func (j *SQLite) LoadSettings(ctx context.Context, defaults config.Settings) (config.Settings, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT key, COALESCE(value, '') FROM settings`)
	if err != nil {
		return defaults, storageErr("load settings", err)
	}
	defer rows.Close()

	s := defaults
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return defaults, storageErr("load settings", err)
		}
		if err := applySetting(&s, key, value); err != nil {
			return defaults, storageErr("load settings", err)
		}
	}
	if err := rows.Err(); err != nil {
		return defaults, storageErr("load settings", err)
	}
	return s, nil
}

// SaveSettings replaces every persisted setting with s.
func (j *SQLite) SaveSettings(ctx context.Context, s config.Settings) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("save settings", err)
	}
	defer tx.Rollback()

	values := map[string]string{
		keyCommission:       strconv.FormatFloat(s.CommissionPerContract, 'f', -1, 64),
		keyTextSize:         strconv.Itoa(s.TextSize),
		keyDarkMode:         strconv.FormatBool(s.DarkMode),
		keyScreenshotFolder: s.ScreenshotFolder,
	}
	for k, v := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			return storageErr("save settings", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("save settings", err)
	}
	return nil
}

// applySetting parses one persisted value into s. Unknown keys are ignored.
func applySetting(s *config.Settings, key, value string) error {
	var err error
	switch key {
	case keyCommission:
		s.CommissionPerContract, err = strconv.ParseFloat(value, 64)
	case keyTextSize:
		s.TextSize, err = strconv.Atoi(value)
	case keyDarkMode:
		s.DarkMode, err = strconv.ParseBool(value)
	case keyScreenshotFolder:
		s.ScreenshotFolder = value
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}
