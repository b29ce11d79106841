package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlath/pagerank"
	"github.com/katalvlaran/parlath/parallel"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, KindRandom, cfg.Graph.Kind)
	assert.Equal(t, 100_000, cfg.Graph.Vertices)
	assert.Equal(t, 8, cfg.Graph.AvgDegree)
	assert.Equal(t, parallel.DefaultGrain, cfg.Engine.Grain)
	assert.Equal(t, []string{AlgoBFS, AlgoSSSP, AlgoPageRank, AlgoComponents}, cfg.Algorithms)
	assert.InDelta(t, 0.85, cfg.PageRank.Damping, 1e-12)
	assert.Equal(t, pagerank.Gather, cfg.Strategy())
	assert.Equal(t, parallel.Dynamic, cfg.Parallel().Schedule)
	assert.GreaterOrEqual(t, cfg.Parallel().Workers, 1)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Empty(t, cfg.Metrics.File)
}

func TestLoad_CustomFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "graphbench.yaml")
	content := `
graph:
  kind: powerlaw
  vertices: 5000
  avg_degree: 3
  seed: 42
engine:
  workers: 4
  schedule: static
algorithms: [pagerank, cc]
pagerank:
  strategy: scatter
  epsilon: 0.0001
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	cfg, err := Load(configFile, nil)
	require.NoError(t, err)
	assert.Equal(t, KindPowerLaw, cfg.Graph.Kind)
	assert.Equal(t, 5000, cfg.Graph.Vertices)
	assert.Equal(t, int64(42), cfg.Graph.Seed)
	assert.Equal(t, parallel.Config{Workers: 4, Grain: parallel.DefaultGrain, Schedule: parallel.Static}, cfg.Parallel())
	assert.Equal(t, pagerank.Scatter, cfg.Strategy())
	assert.True(t, cfg.Enabled(AlgoComponents))
	assert.False(t, cfg.Enabled(AlgoBFS))

	l := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, KindRandom, cfg.Graph.Kind)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GRAPHBENCH_GRAPH_VERTICES", "777")
	t.Setenv("GRAPHBENCH_PAGERANK_DAMPING", "0.5")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Graph.Vertices)
	assert.InDelta(t, 0.5, cfg.PageRank.Damping, 1e-12)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GRAPHBENCH_GRAPH_VERTICES", "777")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("vertices", 0, "")
	fs.String("schedule", "dynamic", "")
	fs.StringSlice("algorithms", nil, "")
	require.NoError(t, fs.Parse([]string{"--vertices=64", "--schedule=static", "--algorithms=bfs,cc"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Graph.Vertices)
	assert.Equal(t, parallel.Static, cfg.Parallel().Schedule)
	assert.Equal(t, []string{AlgoBFS, AlgoComponents}, cfg.Algorithms)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"kind":       "graph:\n  kind: lattice\n",
		"vertices":   "graph:\n  vertices: 1\n",
		"degree":     "graph:\n  avg_degree: 0\n",
		"weight":     "graph:\n  max_weight: 0\n",
		"workers":    "engine:\n  workers: -1\n",
		"schedule":   "engine:\n  schedule: guided\n",
		"algorithm":  "algorithms: [bfs, tsp]\n",
		"delta":      "sssp:\n  delta: -1\n",
		"damping":    "pagerank:\n  damping: 1.5\n",
		"epsilon":    "pagerank:\n  epsilon: 0\n",
		"strategy":   "pagerank:\n  strategy: push\n",
		"level":      "log:\n  level: loud\n",
		"format":     "log:\n  format: xml\n",
		"telemetry":  "telemetry:\n  enabled: true\n  endpoint: \"\"\n",
		"sample":     "telemetry:\n  sample_ratio: 2\n",
		"iterations": "pagerank:\n  max_iterations: 0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromReader("yaml", []byte(content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := LoadFromReader("yaml", []byte("graph:\n  kind: grid\n  vertices: 100\n"))
	assert.NoError(t, err)
}
