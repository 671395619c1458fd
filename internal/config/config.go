package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/joho/godotenv"
)

// View names accepted by the CLI and the STUDYPLAN_DEFAULT_VIEW setting.
const (
	ViewTimetable = "timetable"
	ViewProgress  = "progress"
	ViewCalendar  = "calendar"
	ViewAll       = "all"
)

var validViews = map[string]bool{
	ViewTimetable: true, ViewProgress: true, ViewCalendar: true, ViewAll: true,
}

// Config holds the tunable defaults for every input surface.
type Config struct {
	DefaultSpanDays int
	DefaultGrade    domain.Grade
	DefaultUnits    int
	DefaultView     string
	Addr            string
	LogUseCases     bool
}

// DefaultConfig returns a Config with sensible defaults: a 30-day range
// starting today, grade 3-1, 8 chapters per new subject, calendar view.
func DefaultConfig() Config {
	return Config{
		DefaultSpanDays: 30,
		DefaultGrade:    domain.DefaultGrade,
		DefaultUnits:    8,
		DefaultView:     ViewCalendar,
		Addr:            ":8080",
		LogUseCases:     false,
	}
}

// Load reads an optional .env file from the working directory, then
// configuration from environment variables, falling back to defaults for any
// unset or invalid values. Variables already set in the environment win over
// the .env file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return DefaultConfig(), err
	}
	return FromEnv(), nil
}

// FromEnv reads configuration from environment variables only.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUDYPLAN_DEFAULT_SPAN_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultSpanDays = n
		}
	}
	if v := os.Getenv("STUDYPLAN_DEFAULT_GRADE"); v != "" && domain.ValidGrades[v] {
		cfg.DefaultGrade = domain.Grade(v)
	}
	if v := os.Getenv("STUDYPLAN_DEFAULT_UNITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultUnits = n
		}
	}
	if v := strings.ToLower(os.Getenv("STUDYPLAN_DEFAULT_VIEW")); validViews[v] {
		cfg.DefaultView = v
	}
	if v := os.Getenv("STUDYPLAN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STUDYPLAN_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// ValidView reports whether name is a known view.
func ValidView(name string) bool {
	return validViews[name]
}
