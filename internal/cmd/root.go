package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stockpiled/stockpile/internal/config"
	"github.com/stockpiled/stockpile/internal/inventory"
	"github.com/stockpiled/stockpile/internal/metrics"
	"github.com/stockpiled/stockpile/pkg/logger"
)

var (
	inventoryFile string
)

var rootCmd = &cobra.Command{
	Use:   "stockpile",
	Short: "A small inventory tracker",
	Long: `An in-process inventory tracker that keeps item counts,
persists them to a JSON file, and prints stock reports.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "couldn't execute app,", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inventoryFile, "file", "f", "",
		"Path to the inventory JSON file (overrides STOCKPILE_FILE)")
	rootCmd.AddCommand(demoCmd, addCmd, removeCmd, getCmd, lowCmd, reportCmd)
}

// appEnv bundles the wired-up dependencies every subcommand needs.
type appEnv struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *inventory.Store
	sink   *inventory.MemoryLog
	file   string
}

func setup() (*appEnv, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	snapshotter := inventory.NewJSONSnapshotter(logger.Named(log, "snapshot"), m)
	sink := inventory.NewMemoryLog()
	store := inventory.NewStore(snapshotter, sink, logger.Named(log, "store"), m)

	file := cfg.InventoryFile
	if inventoryFile != "" {
		file = inventoryFile
	}

	return &appEnv{
		cfg:    cfg,
		logger: log,
		store:  store,
		sink:   sink,
		file:   file,
	}, nil
}
