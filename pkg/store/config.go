package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells a Persistence where to keep its data.
type Config interface {
	BasePath() string
}

// Settings is the full user configuration read from .daygrid.yaml and the
// DAYGRID_* environment.
type Settings struct {
	Path   string  `json:"path"`
	Sound  bool    `json:"sound"`
	Volume float64 `json:"volume"`
	Theme  string  `json:"theme"`
	Log    string  `json:"log"`
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig walks the config search path and merges environment overrides.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.daygrid.db")
	v.SetDefault("sound", true)
	v.SetDefault("volume", 0.5)
	v.SetDefault("theme", "dark")
	v.SetDefault("log", "")
	v.SetConfigName(".daygrid") // .yaml is implicit
	v.SetEnvPrefix("DAYGRID")
	v.AutomaticEnv()

	if override := os.Getenv("DAYGRID_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logPath := v.GetString("log")
	if logPath != "" {
		if logPath, err = homedir.Expand(logPath); err != nil {
			return nil, fmt.Errorf("store: expand log path: %w", err)
		}
	}

	return &Settings{
		Path:   path,
		Sound:  v.GetBool("sound"),
		Volume: v.GetFloat64("volume"),
		Theme:  v.GetString("theme"),
		Log:    logPath,
	}, nil
}
