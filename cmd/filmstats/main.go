// filmstats ingests a Letterboxd or IMDb watch-history export and derives
// the statistics behind the dashboard: totals, genres, ratings, timeline,
// top directors and decades.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aravinth-kanesh/my-watch-stats/config"
	"github.com/aravinth-kanesh/my-watch-stats/pkg/log"
)

var version = "0.1.0"

var (
	configPath string
	debug      bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:     "filmstats",
	Short:   "Statistics over your Letterboxd or IMDb watch history",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := log.SetupLogger("filmstats", debug, logFile)
		if err != nil {
			return fmt.Errorf("error setting up logger: %w", err)
		}
		slog.SetDefault(logger)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to file instead of stderr")

	rootCmd.AddCommand(statsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Debug = true
	}
	return cfg, nil
}
