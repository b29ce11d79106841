package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/bfs"
	"github.com/katalvlaran/parlath/components"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/deltastep"
	"github.com/katalvlaran/parlath/dijkstra"
	"github.com/katalvlaran/parlath/internal/config"
	"github.com/katalvlaran/parlath/internal/telemetry"
	"github.com/katalvlaran/parlath/pagerank"
)

// ErrMismatch reports a parallel result that disagrees with its sequential check.
var ErrMismatch = errors.New("graphbench: parallel result disagrees with reference")

// row is one line of the report table.
type row struct {
	Algorithm string
	Elapsed   time.Duration
	Report    balance.Report
	Detail    string
}

// suite runs the configured algorithms on one graph.
type suite struct {
	cfg      *config.Config
	log      logrus.FieldLogger
	csr      *core.CSRGraph
	wcsr     *core.WeightedCSRGraph
	registry *prometheus.Registry
	elapsed  *prometheus.GaugeVec
	rows     []row
}

func newSuite(c *config.Config, l logrus.FieldLogger, g *core.AdjacencyGraph) *suite {
	s := &suite{
		cfg:      c,
		log:      l,
		wcsr:     g.ToWeightedCSR(),
		registry: prometheus.NewRegistry(),
		elapsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: c.Metrics.Namespace,
			Name:      "run_seconds",
			Help:      "Wall time of the last run per algorithm.",
		}, []string{"algorithm"}),
	}
	s.csr = s.wcsr.Unweighted()
	s.registry.MustRegister(s.elapsed)

	return s
}

// run executes every selected algorithm in a fixed order.
func (s *suite) run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context, *balance.Monitor) (string, error)
	}{
		{config.AlgoBFS, s.runBFS},
		{config.AlgoSSSP, s.runSSSP},
		{config.AlgoPageRank, s.runPageRank},
		{config.AlgoComponents, s.runComponents},
	}
	for _, st := range steps {
		if !s.cfg.Enabled(st.name) {
			continue
		}
		if err := s.step(ctx, st.name, st.fn); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}

	return nil
}

func (s *suite) step(ctx context.Context, name string, fn func(context.Context, *balance.Monitor) (string, error)) error {
	par := s.cfg.Parallel()
	ctx, span := telemetry.Tracer().Start(ctx, name)
	defer span.End()
	span.SetAttributes(
		attribute.Int("graph.vertices", s.csr.NumVertices()),
		attribute.Int("graph.edges", s.csr.NumEdges()),
		attribute.Int("engine.workers", par.Workers),
		attribute.String("engine.schedule", par.Schedule.String()),
	)

	m := balance.NewMonitor(par.Workers)
	start := time.Now()
	detail, err := fn(ctx, m)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	rep := m.Report()
	span.SetAttributes(
		attribute.Int64("balance.total", rep.Total),
		attribute.Float64("balance.imbalance", rep.Imbalance),
	)
	s.elapsed.WithLabelValues(name).Set(elapsed.Seconds())
	s.registry.MustRegister(balance.NewCollector(m, s.cfg.Metrics.Namespace, prometheus.Labels{"algorithm": name}))
	s.rows = append(s.rows, row{Algorithm: name, Elapsed: elapsed, Report: rep, Detail: detail})
	s.log.WithFields(logrus.Fields{
		"algorithm": name,
		"elapsed":   elapsed,
		"imbalance": rep.Imbalance,
	}).Info("run finished")

	return nil
}

func (s *suite) runBFS(ctx context.Context, m *balance.Monitor) (string, error) {
	par := s.cfg.Parallel()
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithWorkers(par.Workers),
		bfs.WithGrain(par.Grain),
		bfs.WithSchedule(par.Schedule),
		bfs.WithMonitor(m),
		bfs.WithLogger(s.log),
	}
	if s.cfg.BFS.DirectionOptimizing {
		opts = append(opts, bfs.WithDirectionOptimizing(s.csr.Transpose()))
	}
	res, err := bfs.Parallel(s.csr, s.cfg.BFS.Source, opts...)
	if err != nil {
		return "", err
	}
	ref, err := bfs.Sequential(s.csr, s.cfg.BFS.Source)
	if err != nil {
		return "", err
	}
	for v := range ref.Dist {
		if ref.Dist[v] != res.Dist[v] {
			return "", fmt.Errorf("%w: bfs dist[%d]=%d, want %d", ErrMismatch, v, res.Dist[v], ref.Dist[v])
		}
	}

	return fmt.Sprintf("levels=%d reached=%d", res.Levels, res.Reached()), nil
}

func (s *suite) runSSSP(ctx context.Context, m *balance.Monitor) (string, error) {
	par := s.cfg.Parallel()
	delta := float32(s.cfg.SSSP.Delta)
	if delta == 0 {
		delta = deltastep.SuggestDelta(s.wcsr)
	}
	var stats deltastep.Stats
	dist, err := deltastep.DeltaStepping(s.wcsr, s.cfg.SSSP.Source, delta,
		deltastep.WithContext(ctx),
		deltastep.WithWorkers(par.Workers),
		deltastep.WithGrain(par.Grain),
		deltastep.WithSchedule(par.Schedule),
		deltastep.WithMonitor(m),
		deltastep.WithStats(&stats),
		deltastep.WithLogger(s.log),
	)
	if err != nil {
		return "", err
	}
	if s.cfg.SSSP.Verify {
		ref, _, err := dijkstra.Dijkstra(s.wcsr, s.cfg.SSSP.Source)
		if err != nil {
			return "", err
		}
		if v, ok := firstDistMismatch(dist, ref); !ok {
			return "", fmt.Errorf("%w: sssp dist[%d]=%g, want %g", ErrMismatch, v, dist[v], ref[v])
		}
	}

	return fmt.Sprintf("delta=%.3g buckets=%d relax=%d", delta, stats.Buckets,
		stats.LightRelaxations+stats.HeavyRelaxations), nil
}

// firstDistMismatch compares distances with a relative float32 tolerance.
func firstDistMismatch(got, want []float32) (int, bool) {
	for v := range want {
		g, w := float64(got[v]), float64(want[v])
		if math.IsInf(w, 1) || math.IsInf(g, 1) {
			if g != w {
				return v, false
			}
			continue
		}
		if math.Abs(g-w) > 1e-4*math.Max(1, math.Abs(w)) {
			return v, false
		}
	}

	return -1, true
}

func (s *suite) runPageRank(ctx context.Context, m *balance.Monitor) (string, error) {
	par := s.cfg.Parallel()
	pr := s.cfg.PageRank
	rank, iters, err := pagerank.UntilConvergence(s.csr, pr.Damping, pr.Epsilon,
		pagerank.WithContext(ctx),
		pagerank.WithStrategy(s.cfg.Strategy()),
		pagerank.WithMaxIterations(pr.MaxIterations),
		pagerank.WithWorkers(par.Workers),
		pagerank.WithGrain(par.Grain),
		pagerank.WithSchedule(par.Schedule),
		pagerank.WithMonitor(m),
		pagerank.WithLogger(s.log),
	)
	if err != nil {
		return "", err
	}
	top, best := 0, 0.0
	for v, r := range rank {
		if r > best {
			top, best = v, r
		}
	}

	return fmt.Sprintf("iters=%d top=%d (%.2e)", iters, top, best), nil
}

func (s *suite) runComponents(ctx context.Context, m *balance.Monitor) (string, error) {
	par := s.cfg.Parallel()
	labels, err := components.ConnectedComponents(s.csr,
		components.WithContext(ctx),
		components.WithWorkers(par.Workers),
		components.WithGrain(par.Grain),
		components.WithSchedule(par.Schedule),
		components.WithMonitor(m),
		components.WithLogger(s.log),
	)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("components=%d largest=%d", components.Count(labels), len(components.Largest(labels))), nil
}

// writeTable prints the collected rows.
func (s *suite) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tELAPSED\tWORK\tIMBALANCE\tDETAIL")
	for _, r := range s.rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%s\n",
			r.Algorithm, r.Elapsed.Round(time.Microsecond), r.Report.Total, r.Report.Imbalance, r.Detail)
	}

	return tw.Flush()
}

// writeMetrics dumps every registered collector in the Prometheus text format.
func (s *suite) writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}
