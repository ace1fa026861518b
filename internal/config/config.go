// Package config holds the startup settings for the drawing window.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultTitle  = "Blobilism"
	DefaultFPS    = 60

	// LogLevelEnv names the environment variable read by FromEnv.
	LogLevelEnv = "BLOBILISM_LOG_LEVEL"
)

// Config describes the window and logging setup. The window is fixed size.
type Config struct {
	Width, Height int
	Title         string
	TargetFPS     int
	LogLevel      slog.Level
}

// Default returns the fixed 500x500 window setup.
func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		TargetFPS: DefaultFPS,
		LogLevel:  slog.LevelInfo,
	}
}

// FromEnv returns Default with the log level taken from LogLevelEnv when it
// is set. An unparseable level leaves the default in place and is returned
// as an error alongside the usable config.
func FromEnv() (Config, error) {
	cfg := Default()
	v, ok := os.LookupEnv(LogLevelEnv)
	if !ok || v == "" {
		return cfg, nil
	}
	level, err := ParseLevel(v)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", LogLevelEnv, err)
	}
	cfg.LogLevel = level
	return cfg, nil
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

var (
	ErrBadSize = errors.New("window dimensions must be positive")
	ErrBadFPS  = errors.New("target fps must be positive")
)

// Validate rejects non-positive window dimensions and frame rates.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("%w: %d", ErrBadFPS, c.TargetFPS)
	}
	return nil
}
