package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"drawlab/adapters/excel"
	"drawlab/app"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	game, err := gameType()
	if err != nil {
		return err
	}

	_, _, service, closeDB, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	req := app.AnalysisRequest{GameType: game, WindowDays: windowFlag}
	ctx := cmd.Context()

	switch args[0] {
	case "frequency":
		report, err := service.Frequency(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(report)
	case "randomness":
		report, err := service.Randomness(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(report)
	case "patterns":
		report, err := service.Patterns(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(report)
	case "correlation":
		report, err := service.Correlation(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(report)
	}
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	game, err := gameType()
	if err != nil {
		return err
	}

	_, _, service, closeDB, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	report, err := service.MonteCarlo(cmd.Context(), app.SimulationRequest{
		GameType:    game,
		Runs:        runsFlag,
		DrawsPerRun: drawsFlag,
	})
	if err != nil {
		return err
	}
	return printJSON(report)
}

func runExport(cmd *cobra.Command, args []string) error {
	game, err := gameType()
	if err != nil {
		return err
	}

	cfg, _, service, closeDB, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	req := app.AnalysisRequest{GameType: game, WindowDays: windowFlag}
	ctx := cmd.Context()

	var bundle excel.Bundle
	if bundle.Frequency, err = service.Frequency(ctx, req); err != nil {
		return err
	}
	if bundle.Randomness, err = service.Randomness(ctx, req); err != nil {
		return err
	}
	if bundle.Patterns, err = service.Patterns(ctx, req); err != nil {
		return err
	}
	if bundle.Correlation, err = service.Correlation(ctx, req); err != nil {
		return err
	}

	out := outFlag
	if out == "" {
		out = filepath.Join(cfg.Export.Dir, fmt.Sprintf("drawlab_%s.xlsx", game))
	}
	if err := excel.NewExporter().SaveFile(out, bundle); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
