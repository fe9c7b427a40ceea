package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aravinth-kanesh/my-watch-stats/ingest"
	"github.com/aravinth-kanesh/my-watch-stats/pkg/models"
	"github.com/aravinth-kanesh/my-watch-stats/server"
	"github.com/aravinth-kanesh/my-watch-stats/stats"
	"github.com/aravinth-kanesh/my-watch-stats/tui"
	"github.com/aravinth-kanesh/my-watch-stats/watch"
)

var (
	fromYear  int
	toYear    int
	genre     string
	minRating float64
	titleType string
	asJSON    bool
	watchMode bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [export.csv]",
	Short: "Ingest an export and print your watch statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statistics API for the dashboard frontend",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	statsCmd.Flags().IntVar(&fromYear, "from-year", 0, "only count titles watched in or after this year")
	statsCmd.Flags().IntVar(&toYear, "to-year", 0, "only count titles watched in or before this year")
	statsCmd.Flags().StringVar(&genre, "genre", "", "only count titles with this genre (IMDb exports)")
	statsCmd.Flags().Float64Var(&minRating, "min-rating", 0, "only count titles rated at least this (1-10 scale)")
	statsCmd.Flags().StringVar(&titleType, "title-type", "", "only count titles of this type (IMDb exports)")
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw statistics object as JSON")
	statsCmd.Flags().BoolVar(&watchMode, "watch", false, "re-render when the export file changes")
}

func cliFilters() models.Filters {
	var f models.Filters
	if fromYear > 0 {
		f.FromYear = &fromYear
	}
	if toYear > 0 {
		f.ToYear = &toYear
	}
	if minRating > 0 {
		f.MinRating = &minRating
	}
	f.Genre = genre
	f.TitleType = titleType
	return f
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.DefaultExport
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no export file given and no default_export configured")
	}

	if err := renderExport(path); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	watcher, err := watch.New(path)
	if err != nil {
		return err
	}
	watcher.OnChange = renderExport
	watcher.OnError = func(err error) {
		slog.Error("watch error", slog.String("error", err.Error()))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("watching export for changes", slog.String("path", path))
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func renderExport(path string) error {
	result, err := ingest.File(path)
	if err != nil {
		return err
	}

	filtered := stats.Apply(result.Records, cliFilters())
	st := stats.Compute(filtered)
	label := stats.Label(filtered, result.Source)

	if asJSON {
		out := struct {
			Source        models.Source       `json:"source"`
			Stats         models.Stats        `json:"stats"`
			Label         string              `json:"label"`
			LabelSingular string              `json:"label_singular"`
			Insights      []string            `json:"insights"`
			Options       stats.FilterOptions `json:"filter_options"`
		}{result.Source, st, label, stats.Singular(label), stats.Insights(st, label), stats.Options(result.Records)}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Print(tui.Render(result.Source, st, label, stats.Insights(st, label)))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg.Server, slog.Default())
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
