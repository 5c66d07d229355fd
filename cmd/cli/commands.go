package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"drawlab/adapters/postgres"
	"drawlab/app"
	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/config"
)

var (
	gameFlag     string
	windowFlag   int
	providerFlag string
	formatFlag   string
	feedURLFlag  string
	runsFlag     int
	drawsFlag    int
	outFlag      string

	rootCmd = &cobra.Command{
		Use:   "drawlab",
		Short: "Statistical analysis of lottery draw histories",
		Long: `drawlab ingests historical lottery draws and runs frequency,
randomness, pattern, correlation and Monte Carlo analyses over them.`,
		SilenceUsage: true,
	}

	importCmd = &cobra.Command{
		Use:   "import [file]",
		Short: "Import draws from a TXT archive or CSV export",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and store draws from the configured JSON feed",
		RunE:  runFetch,
	}

	analyzeCmd = &cobra.Command{
		Use:       "analyze [frequency|randomness|patterns|correlation]",
		Short:     "Run one analysis over the stored history and print JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"frequency", "randomness", "patterns", "correlation"},
		RunE:      runAnalyze,
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo calibration and print JSON",
		RunE:  runSimulate,
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export all analysis reports to an xlsx workbook",
		RunE:  runExport,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&gameFlag, "game", "lotto", "game type to operate on")
	rootCmd.PersistentFlags().IntVar(&windowFlag, "window-days", 0, "restrict analysis to the last N days (0 = all)")

	importCmd.Flags().StringVar(&formatFlag, "format", "txt", "input format: txt or csv")
	importCmd.Flags().StringVar(&providerFlag, "provider", "archive", "provider label stored with the draws")

	fetchCmd.Flags().StringVar(&feedURLFlag, "url", "", "feed URL (defaults to FEED_URL)")

	simulateCmd.Flags().IntVar(&runsFlag, "runs", 1000, "number of simulation runs")
	simulateCmd.Flags().IntVar(&drawsFlag, "draws-per-run", 100, "synthetic draws per run")

	exportCmd.Flags().StringVar(&outFlag, "out", "", "output path (defaults to EXPORT_DIR/drawlab.xlsx)")

	rootCmd.AddCommand(importCmd, fetchCmd, analyzeCmd, simulateCmd, exportCmd)
}

// bootstrap loads config, opens the database and builds the service.
func bootstrap(ctx context.Context) (*config.Config, *postgres.DrawRepository, *app.AnalysisService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	db, err := postgres.Connect(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	repo := postgres.NewDrawRepository(db)
	service := app.NewAnalysisService(repo, draw.DefaultVariants())
	return cfg, repo, service, func() { db.Close() }, nil
}

func gameType() (core.GameType, error) {
	return core.ParseGameType(gameFlag)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
