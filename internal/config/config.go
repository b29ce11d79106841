// Package config loads graphbench settings from YAML, GRAPHBENCH_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/parlath/pagerank"
	"github.com/katalvlaran/parlath/parallel"
)

// EnvPrefix prefixes every environment override, e.g. GRAPHBENCH_GRAPH_VERTICES.
const EnvPrefix = "GRAPHBENCH"

// Graph kinds accepted in graph.kind.
const (
	KindRandom   = "random"
	KindPowerLaw = "powerlaw"
	KindGrid     = "grid"
)

// Algorithm names accepted in algorithms.
const (
	AlgoBFS        = "bfs"
	AlgoSSSP       = "sssp"
	AlgoPageRank   = "pagerank"
	AlgoComponents = "cc"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all graphbench settings.
type Config struct {
	Graph      GraphConfig     `mapstructure:"graph"`
	Engine     EngineConfig    `mapstructure:"engine"`
	Algorithms []string        `mapstructure:"algorithms"`
	BFS        BFSConfig       `mapstructure:"bfs"`
	SSSP       SSSPConfig      `mapstructure:"sssp"`
	PageRank   PageRankConfig  `mapstructure:"pagerank"`
	Log        LogConfig       `mapstructure:"log"`
	Telemetry  TelemetryConfig `mapstructure:"telemetry"`
	Metrics    MetricsConfig   `mapstructure:"metrics"`
}

// GraphConfig describes the generated fixture.
type GraphConfig struct {
	Kind      string  `mapstructure:"kind"` // random, powerlaw or grid
	Vertices  int     `mapstructure:"vertices"`
	AvgDegree int     `mapstructure:"avg_degree"` // random: out-degree, powerlaw: attachment
	Seed      int64   `mapstructure:"seed"`
	MaxWeight float64 `mapstructure:"max_weight"`
}

// EngineConfig sizes the worker pool.
type EngineConfig struct {
	Workers  int    `mapstructure:"workers"` // 0 = GOMAXPROCS
	Grain    int    `mapstructure:"grain"`
	Schedule string `mapstructure:"schedule"` // static or dynamic
}

// BFSConfig holds BFS parameters.
type BFSConfig struct {
	Source              int  `mapstructure:"source"`
	DirectionOptimizing bool `mapstructure:"direction_optimizing"`
}

// SSSPConfig holds delta-stepping parameters.
type SSSPConfig struct {
	Source int     `mapstructure:"source"`
	Delta  float64 `mapstructure:"delta"` // 0 = derived from the graph
	Verify bool    `mapstructure:"verify"`
}

// PageRankConfig holds PageRank parameters.
type PageRankConfig struct {
	Damping       float64 `mapstructure:"damping"`
	Epsilon       float64 `mapstructure:"epsilon"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Strategy      string  `mapstructure:"strategy"` // gather or scatter
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// TelemetryConfig holds OTLP trace export settings.
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// MetricsConfig controls the Prometheus textfile dump.
type MetricsConfig struct {
	File      string `mapstructure:"file"` // empty disables
	Namespace string `mapstructure:"namespace"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"kind":         "graph.kind",
	"vertices":     "graph.vertices",
	"degree":       "graph.avg_degree",
	"seed":         "graph.seed",
	"workers":      "engine.workers",
	"grain":        "engine.grain",
	"schedule":     "engine.schedule",
	"algorithms":   "algorithms",
	"delta":        "sssp.delta",
	"strategy":     "pagerank.strategy",
	"metrics-file": "metrics.file",
	"log-level":    "log.level",
}

// Load reads configuration from configPath (optional), the environment and
// the flags in fs (optional), then validates it.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			logrus.WithField("path", configPath).Warn("config file not found, using defaults")
		}
	}
	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}

	return decode(v)
}

// LoadFromReader loads configuration from YAML or JSON content (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.kind", KindRandom)
	v.SetDefault("graph.vertices", 100_000)
	v.SetDefault("graph.avg_degree", 8)
	v.SetDefault("graph.seed", 1)
	v.SetDefault("graph.max_weight", 10.0)

	v.SetDefault("engine.workers", 0)
	v.SetDefault("engine.grain", parallel.DefaultGrain)
	v.SetDefault("engine.schedule", parallel.Dynamic.String())

	v.SetDefault("algorithms", []string{AlgoBFS, AlgoSSSP, AlgoPageRank, AlgoComponents})

	v.SetDefault("bfs.source", 0)
	v.SetDefault("bfs.direction_optimizing", false)
	v.SetDefault("sssp.source", 0)
	v.SetDefault("sssp.delta", 0.0)
	v.SetDefault("sssp.verify", true)

	v.SetDefault("pagerank.damping", 0.85)
	v.SetDefault("pagerank.epsilon", 1e-6)
	v.SetDefault("pagerank.max_iterations", pagerank.DefaultMaxIterations)
	v.SetDefault("pagerank.strategy", pagerank.Gather.String())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", "graphbench")
	v.SetDefault("telemetry.sample_ratio", 1.0)

	v.SetDefault("metrics.file", "")
	v.SetDefault("metrics.namespace", "graphbench")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Graph.Kind {
	case KindRandom, KindPowerLaw, KindGrid:
	default:
		return fmt.Errorf("%w: unsupported graph kind %q", ErrInvalidConfig, c.Graph.Kind)
	}
	if c.Graph.Vertices < 2 {
		return fmt.Errorf("%w: graph.vertices must be at least 2", ErrInvalidConfig)
	}
	if c.Graph.AvgDegree < 1 {
		return fmt.Errorf("%w: graph.avg_degree must be at least 1", ErrInvalidConfig)
	}
	if !(c.Graph.MaxWeight > 0) {
		return fmt.Errorf("%w: graph.max_weight must be positive", ErrInvalidConfig)
	}

	if c.Engine.Workers < 0 || c.Engine.Grain < 0 {
		return fmt.Errorf("%w: engine.workers and engine.grain cannot be negative", ErrInvalidConfig)
	}
	if _, err := parallel.ParseSchedule(c.Engine.Schedule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidConfig)
	}
	for _, a := range c.Algorithms {
		switch a {
		case AlgoBFS, AlgoSSSP, AlgoPageRank, AlgoComponents:
		default:
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, a)
		}
	}

	if c.BFS.Source < 0 || c.SSSP.Source < 0 {
		return fmt.Errorf("%w: sources cannot be negative", ErrInvalidConfig)
	}
	if c.SSSP.Delta < 0 {
		return fmt.Errorf("%w: sssp.delta cannot be negative", ErrInvalidConfig)
	}

	if !(c.PageRank.Damping >= 0 && c.PageRank.Damping <= 1) {
		return fmt.Errorf("%w: pagerank.damping must be in [0, 1]", ErrInvalidConfig)
	}
	if !(c.PageRank.Epsilon > 0) {
		return fmt.Errorf("%w: pagerank.epsilon must be positive", ErrInvalidConfig)
	}
	if c.PageRank.MaxIterations < 1 {
		return fmt.Errorf("%w: pagerank.max_iterations must be at least 1", ErrInvalidConfig)
	}
	if _, err := pagerank.ParseStrategy(c.PageRank.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unsupported log format %q", ErrInvalidConfig, c.Log.Format)
	}

	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return fmt.Errorf("%w: telemetry.endpoint is required when telemetry is enabled", ErrInvalidConfig)
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: telemetry.sample_ratio must be in [0, 1]", ErrInvalidConfig)
	}

	return nil
}

// Parallel converts the engine section into a parallel.Config.
func (c *Config) Parallel() parallel.Config {
	s, _ := parallel.ParseSchedule(c.Engine.Schedule)

	return parallel.Config{Workers: c.Engine.Workers, Grain: c.Engine.Grain, Schedule: s}.Normalize()
}

// Strategy returns the configured PageRank strategy.
func (c *Config) Strategy() pagerank.Strategy {
	s, _ := pagerank.ParseStrategy(c.PageRank.Strategy)

	return s
}

// Enabled reports whether algorithm name is selected.
func (c *Config) Enabled(name string) bool {
	for _, a := range c.Algorithms {
		if a == name {
			return true
		}
	}

	return false
}

// NewLogger builds a logrus logger from the log section.
func (c *Config) NewLogger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		l.SetLevel(lvl)
	}
	if c.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}
