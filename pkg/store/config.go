package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/logging"
)

// DefaultFile is the journal document looked up in the working directory.
const DefaultFile = ".journal.json"

// Config keys, also usable in a .jot config file.
const (
	KeyPath       = "path"
	KeyIndent     = "indent"
	KeyTimeFormat = "timeFormat"
	KeyLogLevel   = "logLevel"
	KeyLogFormat  = "logFormat"
)

// Config tells the store where the journal lives and how to write it.
type Config interface {
	Path() string
	Indent() int
	TimeFormat() string
	LogLevel() string
	LogFormat() string
}

// LoadConfig reads .jot (yaml, toml or json) from $JOT_CONFIG_PATH or the
// working directory, layered under JOT_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault(KeyPath, DefaultFile)
	viper.SetDefault(KeyIndent, 4)
	viper.SetDefault(KeyTimeFormat, journal.DefaultLayout)
	viper.SetDefault(KeyLogLevel, logging.DefaultLevel)
	viper.SetDefault(KeyLogFormat, logging.DefaultFormat)
	viper.SetConfigName(".jot")
	viper.SetEnvPrefix("JOT")
	viper.AutomaticEnv()
	_ = viper.BindEnv(KeyTimeFormat, "JOT_TIME_FORMAT")
	_ = viper.BindEnv(KeyLogLevel, "JOT_LOG_LEVEL")
	_ = viper.BindEnv(KeyLogFormat, "JOT_LOG_FORMAT")

	if override := os.Getenv("JOT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString(KeyPath))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		path:       path,
		indent:     viper.GetInt(KeyIndent),
		timeFormat: viper.GetString(KeyTimeFormat),
		logLevel:   viper.GetString(KeyLogLevel),
		logFormat:  viper.GetString(KeyLogFormat),
	}, nil
}

type fileConfig struct {
	path       string
	indent     int
	timeFormat string
	logLevel   string
	logFormat  string
}

func (f *fileConfig) Path() string {
	if f.path == "" {
		return DefaultFile
	}
	return f.path
}

func (f *fileConfig) Indent() int {
	if f.indent < 0 {
		return 0
	}
	return f.indent
}

func (f *fileConfig) TimeFormat() string {
	if f.timeFormat == "" {
		return journal.DefaultLayout
	}
	return f.timeFormat
}

func (f *fileConfig) LogLevel() string {
	return f.logLevel
}

func (f *fileConfig) LogFormat() string {
	return f.logFormat
}
