package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

// Config holds all configuration for a run
type Config struct {
	Input  InputConfig
	Output OutputConfig
	Log    LogConfig
	Match  MatchConfig

	// Progress enables the terminal progress bar.
	Progress bool
}

// InputConfig holds source locations
type InputConfig struct {
	Points   string // JSON array of named points
	Polygons string // GeoJSON FeatureCollection or .shp
}

// OutputConfig holds destination locations
type OutputConfig struct {
	Path    string // named GeoJSON
	Report  string // optional YAML run report
	Metrics string // optional Prometheus textfile
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// MatchConfig holds the word lists used to pick names
type MatchConfig struct {
	PriorityNames []string `mapstructure:"priority_names"`
	PositiveWords []string `mapstructure:"positive_words"`
	NegativeWords []string `mapstructure:"negative_words"`
	DebugNames    []string `mapstructure:"debug_names"`
}

// Flags returns the command-line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "config file (default: lakenames.yaml in . or ./config)")
	fs.String("points", "", "named point source (JSON array)")
	fs.String("polygons", "", "polygon source (GeoJSON FeatureCollection or .shp)")
	fs.StringP("out", "o", "", "output GeoJSON")
	fs.String("report", "", "write a YAML run report")
	fs.String("metrics", "", "write Prometheus textfile metrics")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("log-format", "", "text or json")
	fs.StringSlice("debug-name", nil, "log candidates for polygons near this point name")
	fs.Bool("progress", false, "show a progress bar")
	return fs
}

// Load reads configuration from defaults, the config file, environment
// variables and flags, in increasing order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName("lakenames")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.lakenames")

	defaults := lakenames.DefaultConfig()
	v.SetDefault("input.points", "public/data/scandinavian_lake_names.json")
	v.SetDefault("input.polygons", "public/data/scandinavian_waters_polygons_epsg4326.geojson")
	v.SetDefault("output.path", "public/data/scandinavian_waters_names_v3.geojson")
	v.SetDefault("output.report", "")
	v.SetDefault("output.metrics", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("match.priority_names", defaults.PriorityNames)
	v.SetDefault("match.positive_words", defaults.PositiveWords)
	v.SetDefault("match.negative_words", defaults.NegativeWords)
	v.SetDefault("match.debug_names", []string{})
	v.SetDefault("progress", false)

	v.SetEnvPrefix("LAKENAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	configFile := ""
	if fs != nil {
		configFile, _ = fs.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Lists set through the environment arrive as one comma separated string.
	cfg.Match.PriorityNames = stringList(v.Get("match.priority_names"))
	cfg.Match.PositiveWords = stringList(v.Get("match.positive_words"))
	cfg.Match.NegativeWords = stringList(v.Get("match.negative_words"))
	cfg.Match.DebugNames = stringList(v.Get("match.debug_names"))

	return &cfg, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"input.points":      "points",
		"input.polygons":    "polygons",
		"output.path":       "out",
		"output.report":     "report",
		"output.metrics":    "metrics",
		"log.level":         "log-level",
		"log.format":        "log-format",
		"match.debug_names": "debug-name",
		"progress":          "progress",
	}
	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// stringList accepts a list or a comma separated string.
func stringList(raw any) []string {
	if s, ok := raw.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return cast.ToStringSlice(raw)
}

// Matching returns the name selection configuration.
func (c *Config) Matching() lakenames.Config {
	return lakenames.Config{
		PriorityNames: c.Match.PriorityNames,
		PositiveWords: c.Match.PositiveWords,
		NegativeWords: c.Match.NegativeWords,
	}
}

// NewLogger returns a logger writing to w at the configured level and
// format. Levels are parsed by slog ("debug", "warn", "error+2", ...); an
// unknown level falls back to info.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	name := strings.TrimSpace(c.Log.Level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	if name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			level = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
