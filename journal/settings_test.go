package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/config"
)

func TestLoadSettingsDefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	got, err := j.LoadSettings(context.Background(), config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), got)
}

func TestSettingsSurviveReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, path := newTestSQLite(t)

	want := config.Settings{
		CommissionPerContract: 1.1,
		TextSize:              14,
		DarkMode:              true,
		ScreenshotFolder:      "/home/trader/shots",
	}
	require.NoError(t, j.SaveSettings(ctx, want))
	require.NoError(t, j.Close())

	again, err := NewSQLite(path)
	require.NoError(t, err)
	defer again.Close()

	got, err := again.LoadSettings(ctx, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// saving again overwrites rather than duplicating keys
	want.CommissionPerContract = 0
	require.NoError(t, again.SaveSettings(ctx, want))
	got, err = again.LoadSettings(ctx, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsCorruptValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.db.ExecContext(ctx, `INSERT INTO settings (key, value) VALUES ('text_size', 'huge')`)
	require.NoError(t, err)

	got, err := j.LoadSettings(ctx, config.DefaultSettings())
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, config.DefaultSettings(), got)
}
