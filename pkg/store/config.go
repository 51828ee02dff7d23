package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/prompter/pkg/errs"
	"tableflip.dev/prompter/pkg/notation"
)

// Config holds the settings read from .prompter.yaml and PROMPTER_* env.
type Config interface {
	BasePath() string
	Style() notation.Style
	Wrap() int
}

// LoadConfig reads .prompter from $PROMPTER_CONFIG_PATH or the working
// directory. A missing file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.prompter")
	viper.SetDefault("style", string(notation.StyleKeep))
	viper.SetDefault("wrap", 100)
	viper.SetConfigName(".prompter") // .yaml is implicit
	viper.SetEnvPrefix("PROMPTER")
	viper.AutomaticEnv()

	if override := os.Getenv("PROMPTER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errs.Wrap(err, "store: read config file")
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, errs.Wrap(err, "store: expand path")
	}
	style, err := notation.ParseStyle(viper.GetString("style"))
	if err != nil {
		return nil, errs.WithHint(errs.UserInput(err, "store: config style"), "set style to keep, bracket, colon or paren")
	}

	return &fileConfig{Path: path, OutputStyle: style, WrapWidth: viper.GetInt("wrap")}, nil
}

type fileConfig struct {
	Path        string         `json:"path"`
	OutputStyle notation.Style `json:"style"`
	WrapWidth   int            `json:"wrap"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Style() notation.Style {
	return f.OutputStyle
}

func (f *fileConfig) Wrap() int {
	return f.WrapWidth
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path        string
	OutputStyle notation.Style
	WrapWidth   int
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Style() notation.Style {
	if s.OutputStyle == "" {
		return notation.StyleKeep
	}
	return s.OutputStyle
}

func (s StaticConfig) Wrap() int { return s.WrapWidth }
