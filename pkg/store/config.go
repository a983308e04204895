package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/pantry/pkg/list"
)

// Config locates persisted state and supplies defaults for new lists.
type Config interface {
	BasePath() string
	DefaultTheme() string
}

// ConfigPathEnv names the directory searched first for .pantry.yaml.
const ConfigPathEnv = "PANTRY_CONFIG_PATH"

// LoadConfig reads .pantry.yaml from $PANTRY_CONFIG_PATH or the working
// directory, with PANTRY_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pantry.db")
	viper.SetDefault("theme", list.DefaultTheme)
	viper.SetConfigName(".pantry") // .yaml is implicit
	viper.SetEnvPrefix("PANTRY")
	viper.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, Theme: viper.GetString("theme")}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Theme string `json:"theme"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) DefaultTheme() string {
	if f.Theme == "" {
		return list.DefaultTheme
	}
	return f.Theme
}
