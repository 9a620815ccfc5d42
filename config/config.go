package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	envdata "VecKit/env/env_data"
	envloader "VecKit/env/env_loader"
)

var ErrInvalidConfig = errors.New("invalid config")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatWire Format = "wire"
)

type Config struct {
	Phase     float64
	Format    Format
	Precision int
	LogLevel  slog.Level
}

func Default() Config {
	return Config{
		Phase:     DefaultPhase,
		Format:    DefaultFormat,
		Precision: DefaultPrecision,
		LogLevel:  slog.LevelWarn,
	}
}

// Load reads .env in the working directory, then .env next to the
// executable, then builds the config from the environment. Exported
// variables win over both files, and the working directory file wins over
// the executable's.
func Load() (Config, error) {
	for _, path := range []string{envdata.WorkdirEnvfilePath(), envdata.EnvfilePath()} {
		if path == "" {
			continue
		}
		if err := envloader.LoadFileIfExists(path); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the config from VECKIT_* variables, using defaults for the
// ones that are unset.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Phase, err = ParsePhase(envloader.GetEnv(EnvPhase, strconv.FormatFloat(DefaultPhase, 'g', -1, 64))); err != nil {
		return Config{}, err
	}

	switch f := Format(strings.ToLower(envloader.GetEnv(EnvFormat, string(DefaultFormat)))); f {
	case FormatText, FormatJSON, FormatWire:
		cfg.Format = f
	default:
		return Config{}, fmt.Errorf("%w: %s=%q, want text, json or wire", ErrInvalidConfig, EnvFormat, f)
	}

	prec := envloader.GetEnv(EnvPrecision, strconv.Itoa(DefaultPrecision))
	if cfg.Precision, err = strconv.Atoi(prec); err != nil || cfg.Precision < 0 || cfg.Precision > MaxPrecision {
		return Config{}, fmt.Errorf("%w: %s=%q, want an integer from 0 to %d", ErrInvalidConfig, EnvPrecision, prec, MaxPrecision)
	}

	level := envloader.GetEnv(EnvLogLevel, DefaultLogLevel)
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLogLevel, level, err)
	}

	return cfg, nil
}

// ParsePhase accepts radians or one of the names screen and rubygame,
// both meaning -π/2.
func ParsePhase(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "screen", "rubygame":
		return -math.Pi / 2, nil
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: phase %q, want radians, screen or rubygame", ErrInvalidConfig, s)
	}
	return p, nil
}
