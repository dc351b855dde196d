// Package config reads runtime settings from STUATH_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings.
type Config struct {
	DBPath       string
	Delay        time.Duration // simulated loading delay before results appear
	SlotStrategy string
	Seed         int64
	SeedSet      bool // false means the random picker is seeded from the clock
	CatalogPath  string
	LogUseCases  bool
	Language     string // explicit override; empty defers to the saved preference
	SystemLang   string // language code derived from LANG
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:       defaultDBPath(),
		Delay:        2000 * time.Millisecond,
		SlotStrategy: "random",
	}
}

// Load reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STUATH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STUATH_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Delay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("STUATH_SLOT_STRATEGY"); v != "" {
		cfg.SlotStrategy = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("STUATH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
			cfg.SeedSet = true
		}
	}
	if v := os.Getenv("STUATH_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("STUATH_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUATH_LANG"); v != "" {
		cfg.Language = strings.ToLower(strings.TrimSpace(v))
	}
	cfg.SystemLang = LangFromLocale(os.Getenv("LANG"))

	return cfg
}

// EffectiveSeed returns the configured seed, or a clock-derived one.
func (c Config) EffectiveSeed() int64 {
	if c.SeedSet {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// LangFromLocale extracts the language part of a POSIX locale such as
// "fr_FR.UTF-8". "C" and "POSIX" carry no language.
func LangFromLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, "_.@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ToLower(locale)
	if locale == "c" || locale == "posix" {
		return ""
	}
	return locale
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stuath", "stuath.db")
	}
	return filepath.Join(home, ".stuath", "stuath.db")
}
