package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parlath/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "graphbench",
	Short: "Benchmark parallel graph algorithms on generated graphs",
	Long: `graphbench builds a synthetic graph (random, power-law or grid), converts it
to CSR once and runs parallel BFS, delta-stepping SSSP, PageRank and connected
components on it, checking each parallel result against a sequential one.

Settings come from an optional YAML file (--config), GRAPHBENCH_* environment
variables and flags, in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		log = cfg.NewLogger()
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	addGraphFlags(rootCmd)

	binName := BinName()
	rootCmd.Example = `  # Run every algorithm on a 100k-vertex random graph
  ` + binName + ` run

  # Power-law graph, 8 static workers, PageRank only
  ` + binName + ` run --kind powerlaw --vertices 500000 --workers 8 --schedule static --algorithms pagerank

  # Dump a weighted grid as an edge list
  ` + binName + ` generate --kind grid --vertices 10000 -o grid.txt`
}

// addGraphFlags registers the fixture flags shared by run and generate.
func addGraphFlags(c *cobra.Command) {
	c.PersistentFlags().String("kind", config.KindRandom, "Graph kind: random, powerlaw, grid")
	c.PersistentFlags().Int("vertices", 100_000, "Number of vertices")
	c.PersistentFlags().Int("degree", 8, "Average out-degree (random) or attachment count (powerlaw)")
	c.PersistentFlags().Int64("seed", 1, "Random seed")
}

// BinName returns the base name of the current executable
func BinName() string {
	return filepath.Base(os.Args[0])
}
