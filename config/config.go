package config

import (
	"fmt"

	"github.com/spf13/viper"

	"boardgame/game"
)

// Config drives the match-runner CLI.
type Config struct {
	Ruleset   string  `mapstructure:"ruleset"`
	BoardSize int     `mapstructure:"board_size"`
	Komi      float64 `mapstructure:"komi"`
	Games     int     `mapstructure:"games"`
	Seed      uint64  `mapstructure:"seed"`
	LogLevel  string  `mapstructure:"log_level"`
	RecordDir string  `mapstructure:"record_dir"`
	SaveDir   string  `mapstructure:"save_dir"`
}

// Setup loads configuration from an optional file plus environment
// variables, with sensible defaults for every field. An empty cfgPath skips
// the file entirely.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("ruleset", game.DiscFlip)
	v.SetDefault("board_size", 8)
	v.SetDefault("komi", 6.5)
	v.SetDefault("games", 10)
	v.SetDefault("seed", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("record_dir", "records")
	v.SetDefault("save_dir", "saves")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if !game.KnownRuleset(cfg.Ruleset) {
		return nil, fmt.Errorf("unknown ruleset %q", cfg.Ruleset)
	}
	return &cfg, nil
}
