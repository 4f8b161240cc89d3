package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Config holds runtime settings for pla2html.
type Config struct {
	DBPath    string
	LogEvents bool

	// CalendarStart and CalendarEnd override the rendered window. Nil means
	// derive the window from the schedule.
	CalendarStart *time.Time
	CalendarEnd   *time.Time

	DayWidthPx int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dbPath := filepath.Join(".pla2html", "pla2html.db")
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".pla2html", "pla2html.db")
	}
	return Config{
		DBPath:     dbPath,
		LogEvents:  false,
		DayWidthPx: 45,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PLA2HTML_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PLA2HTML_LOG"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	cfg.CalendarStart = dateEnv("PLA2HTML_CALENDAR_START")
	cfg.CalendarEnd = dateEnv("PLA2HTML_CALENDAR_END")
	if v := os.Getenv("PLA2HTML_DAY_WIDTH_PX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DayWidthPx = n
		}
	}

	return cfg
}

func dateEnv(name string) *time.Time {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}
