// Package config holds the shell-side configuration: flag token names,
// default conversion parameters, safety ceilings and cleanup policy. The
// conversion core never reads configuration; the shell translates these
// values into converter options per call.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mlies-mik/astrbot-ASCII-se/asciiart"
)

type Config struct {
	// Flag token names recognized by the command parser.
	ScaleToken     string `json:"scale_token"`
	CharsetToken   string `json:"charset_token"`
	WideGlyphToken string `json:"wide_glyph_token"`

	// Conversion defaults and bounds. Scale is clamped into
	// [MinScale, MaxScale] before it reaches the converter.
	DefaultScale            float64 `json:"default_scale"`
	MinScale                float64 `json:"min_scale"`
	MaxScale                float64 `json:"max_scale"`
	DefaultCharset          string  `json:"default_charset"`
	DefaultWideGlyphCharset string  `json:"default_wide_glyph_charset"`

	// MaxDimension is the deployment ceiling for either output dimension.
	// The core additionally enforces its own hard ceiling that this value
	// cannot raise.
	MaxDimension int `json:"max_dimension"`

	// OutputDir receives artifacts; empty means the system temp directory.
	OutputDir string `json:"output_dir"`

	// Cleanup policy, in minutes to match the deployment knobs of the
	// hosting bot.
	CleanupIntervalMinutes int `json:"cleanup_interval_minutes"`
	CacheMaxAgeMinutes     int `json:"cache_max_age_minutes"`

	// MaxFetchBytes caps how much source image data one request may buffer.
	MaxFetchBytes int64 `json:"max_fetch_bytes"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ScaleToken:              "--scale",
		CharsetToken:            "--charset",
		WideGlyphToken:          "--chinese",
		DefaultScale:            1.0,
		MinScale:                0.2,
		MaxScale:                3.0,
		DefaultCharset:          asciiart.DefaultCharset,
		DefaultWideGlyphCharset: asciiart.DefaultWideGlyphCharset,
		MaxDimension:            asciiart.AbsoluteMaxDimension,
		CleanupIntervalMinutes:  60,
		CacheMaxAgeMinutes:      1440,
		MaxFetchBytes:           15 << 20,
	}
}

/*
Load reads a JSON config file over the defaults, so a file only needs to name
the fields it changes. An empty path returns the defaults unchanged.
*/
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinScale <= 0 || c.MaxScale < c.MinScale {
		return fmt.Errorf("scale bounds [%g, %g] are invalid", c.MinScale, c.MaxScale)
	}
	if c.DefaultCharset == "" {
		return fmt.Errorf("default_charset must not be empty")
	}
	if c.CleanupIntervalMinutes <= 0 || c.CacheMaxAgeMinutes <= 0 {
		return fmt.Errorf("cleanup intervals must be positive")
	}
	return nil
}
