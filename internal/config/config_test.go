package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.LogEvents)
	assert.Equal(t, 45, cfg.DayWidthPx)
	assert.Contains(t, cfg.DBPath, "pla2html.db")
	assert.Nil(t, cfg.CalendarStart)
	assert.Nil(t, cfg.CalendarEnd)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PLA2HTML_DB", "/tmp/test.db")
	t.Setenv("PLA2HTML_LOG", "true")
	t.Setenv("PLA2HTML_CALENDAR_START", "2021-10-01")
	t.Setenv("PLA2HTML_CALENDAR_END", "2021-12-31")
	t.Setenv("PLA2HTML_DAY_WIDTH_PX", "30")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.True(t, cfg.LogEvents)
	require.NotNil(t, cfg.CalendarStart)
	assert.Equal(t, time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC), *cfg.CalendarStart)
	require.NotNil(t, cfg.CalendarEnd)
	assert.Equal(t, time.December, cfg.CalendarEnd.Month())
	assert.Equal(t, 30, cfg.DayWidthPx)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PLA2HTML_LOG", "maybe")
	t.Setenv("PLA2HTML_CALENDAR_START", "October")
	t.Setenv("PLA2HTML_DAY_WIDTH_PX", "-3")

	cfg := LoadConfig()
	assert.False(t, cfg.LogEvents)
	assert.Nil(t, cfg.CalendarStart)
	assert.Equal(t, 45, cfg.DayWidthPx)
}
