package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parlath/internal/config"
	"github.com/katalvlaran/parlath/internal/telemetry"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build a fixture graph and benchmark the selected algorithms",
	Long: `Build the configured graph, convert it to CSR once, then run each selected
algorithm and print elapsed time, total work and the max/mean load imbalance
across workers.

Algorithms:
  - bfs      : parallel BFS, checked against a sequential BFS
  - sssp     : delta-stepping, checked against Dijkstra (sssp.verify)
  - pagerank : PageRank until convergence (gather or scatter)
  - cc       : connected components with an atomic union-find`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	f.Int("grain", 256, "Chunk size for the dynamic schedule")
	f.String("schedule", "dynamic", "Work partitioning: static or dynamic")
	f.StringSlice("algorithms", []string{config.AlgoBFS, config.AlgoSSSP, config.AlgoPageRank, config.AlgoComponents},
		"Algorithms to run")
	f.Float64("delta", 0, "Delta-stepping bucket width (0 = derived from the graph)")
	f.String("strategy", "gather", "PageRank strategy: gather or scatter")
	f.String("metrics-file", "", "Write Prometheus metrics to this textfile")
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		log.WithError(err).Warn("telemetry disabled")
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("telemetry shutdown failed")
		}
	}()

	start := time.Now()
	g, err := buildFixture(cfg)
	if err != nil {
		return err
	}
	s := newSuite(cfg, log, g)
	log.WithFields(logrus.Fields{
		"kind":     cfg.Graph.Kind,
		"vertices": s.csr.NumVertices(),
		"edges":    s.csr.NumEdges(),
		"build":    time.Since(start),
		"workers":  cfg.Parallel().Workers,
	}).Info("graph ready")

	if err := s.run(ctx); err != nil {
		return err
	}
	if err := s.writeTable(cmd.OutOrStdout()); err != nil {
		return err
	}

	return s.writeMetrics(cfg.Metrics.File)
}
