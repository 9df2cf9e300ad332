package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/cardswipe/internal/controller"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Deck     DeckConfig     `mapstructure:"deck"`
	Swipe    SwipeConfig    `mapstructure:"swipe"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DeckConfig picks the deck played when none is named on the command line.
type DeckConfig struct {
	Name string `mapstructure:"name"`
}

// SwipeConfig holds gesture tunables. Distances are in viewport units; the
// terminal width is scaled onto ViewportWidth.
type SwipeConfig struct {
	ViewportWidth           float64       `mapstructure:"viewport_width"`
	Threshold               float64       `mapstructure:"threshold"`
	ExitMargin              float64       `mapstructure:"exit_margin"`
	CommitDuration          time.Duration `mapstructure:"commit_duration"`
	TapEpsilon              float64       `mapstructure:"tap_epsilon"`
	Direction               string        `mapstructure:"direction"`
	AutoCompleteOnLastSwipe bool          `mapstructure:"auto_complete_on_last_swipe"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FPS int `mapstructure:"fps"`
}

// LogConfig holds logging settings. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "cardswipe")
}

func configPath() string {
	if p := os.Getenv("CARDSWIPE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "cardswipe", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CARDSWIPE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	def := controller.DefaultOptions()
	v.SetDefault("database.path", filepath.Join(dataDir(), "cardswipe.db"))
	v.SetDefault("deck.name", "Go basics")
	v.SetDefault("swipe.viewport_width", def.ViewportWidth)
	v.SetDefault("swipe.threshold", def.Threshold)
	v.SetDefault("swipe.exit_margin", def.ExitMargin)
	v.SetDefault("swipe.commit_duration", def.CommitDuration)
	v.SetDefault("swipe.tap_epsilon", def.TapEpsilon)
	v.SetDefault("swipe.direction", string(def.Direction))
	v.SetDefault("swipe.auto_complete_on_last_swipe", def.AutoCompleteOnLastSwipe)
	v.SetDefault("ui.fps", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(dataDir(), "cardswipe.log"))

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("CARDSWIPE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cardswipe"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CARDSWIPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Options converts the swipe settings for the controller.
func (c Config) Options() controller.Options {
	return controller.Options{
		ViewportWidth:           c.Swipe.ViewportWidth,
		Threshold:               c.Swipe.Threshold,
		ExitMargin:              c.Swipe.ExitMargin,
		CommitDuration:          c.Swipe.CommitDuration,
		TapEpsilon:              c.Swipe.TapEpsilon,
		Direction:               controller.DirectionMode(strings.ToLower(strings.TrimSpace(c.Swipe.Direction))),
		AutoCompleteOnLastSwipe: c.Swipe.AutoCompleteOnLastSwipe,
	}
}

func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("swipe: %w", err)
	}
	if c.UI.FPS <= 0 || c.UI.FPS > 240 {
		return fmt.Errorf("ui.fps must be in 1..240, got %d", c.UI.FPS)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("deck.name", cfg.Deck.Name)
	v.Set("swipe.viewport_width", cfg.Swipe.ViewportWidth)
	v.Set("swipe.threshold", cfg.Swipe.Threshold)
	v.Set("swipe.exit_margin", cfg.Swipe.ExitMargin)
	v.Set("swipe.commit_duration", cfg.Swipe.CommitDuration.String())
	v.Set("swipe.tap_epsilon", cfg.Swipe.TapEpsilon)
	v.Set("swipe.direction", cfg.Swipe.Direction)
	v.Set("swipe.auto_complete_on_last_swipe", cfg.Swipe.AutoCompleteOnLastSwipe)
	v.Set("ui.fps", cfg.UI.FPS)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
