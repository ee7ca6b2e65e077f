// Package config loads editor settings from an optional TOML file, a .env
// file and TCAPTION_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config captures everything the editor needs at startup.
type Config struct {
	Language           string `toml:"language"`
	Prompt             string `toml:"prompt"`
	DefaultPreset      string `toml:"default_preset" validate:"omitempty,oneof=alex-hormozi minimal modern-vibe tiktok-viral"`
	FFmpegPath         string `toml:"ffmpeg_path" validate:"required"`
	MPVPath            string `toml:"mpv_path" validate:"required"`
	OpenAIBaseURL      string `toml:"openai_base_url" validate:"required,url"`
	TranscriptionModel string `toml:"transcription_model" validate:"required"`
	TickMillis         int    `toml:"tick_ms" validate:"gte=10,lte=1000"`
	AutosaveSeconds    int    `toml:"autosave_seconds" validate:"gte=0"`
	LogFile            string `toml:"log_file"`
	LogLevel           string `toml:"log_level" validate:"oneof=debug info warn error"`
	Export             Export `toml:"export"`
}

// Export holds the defaults for rendering the final video.
type Export struct {
	Resolution string `toml:"resolution"`
	FPS        int    `toml:"fps" validate:"gt=0,lte=120"`
	Quality    string `toml:"quality" validate:"oneof=standard high ultra"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language:           "auto",
		FFmpegPath:         "ffmpeg",
		MPVPath:            "mpv",
		OpenAIBaseURL:      "https://api.openai.com/v1",
		TranscriptionModel: "whisper-1",
		TickMillis:         50,
		AutosaveSeconds:    5,
		LogLevel:           "info",
		Export: Export{
			Resolution: "1080x1920",
			FPS:        30,
			Quality:    "high",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tcaption/config.toml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, "tcaption", "config.toml"), nil
	}
	return ExpandPath("~/.config/tcaption/config.toml")
}

// Load reads the config file at path (or DefaultPath when empty), applies
// environment overrides and validates the result. A missing file is not an
// error; the second return value reports whether one was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, false, err
		}
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, false, err
	}

	exists := true
	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, false, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.LogFile != "" {
		if cfg.LogFile, err = ExpandPath(cfg.LogFile); err != nil {
			return nil, false, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

// LoadDotEnv loads variables from a .env file without overriding ones that
// are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Language = getString("TCAPTION_LANG", c.Language)
	c.DefaultPreset = getString("TCAPTION_PRESET", c.DefaultPreset)
	c.FFmpegPath = getString("TCAPTION_FFMPEG", c.FFmpegPath)
	c.MPVPath = getString("TCAPTION_MPV", c.MPVPath)
	c.OpenAIBaseURL = getString("TCAPTION_OPENAI_BASE_URL", c.OpenAIBaseURL)
	c.LogFile = getString("TCAPTION_LOG_FILE", c.LogFile)
	c.LogLevel = getString("TCAPTION_LOG_LEVEL", c.LogLevel)
	c.AutosaveSeconds = getInt("TCAPTION_AUTOSAVE_SECONDS", c.AutosaveSeconds)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Tick is the playback clock interval.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// AutosaveInterval is the minimum gap between automatic saves; zero disables
// autosave.
func (c *Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveSeconds) * time.Second
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}
