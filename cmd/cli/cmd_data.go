package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"drawlab/adapters/feed"
	"drawlab/domain/draw"
	"drawlab/internal/errors"
)

func runImport(cmd *cobra.Command, args []string) error {
	game, err := gameType()
	if err != nil {
		return err
	}

	_, repo, service, closeDB, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	variant, err := service.Variant(game)
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "opening input file")
	}
	defer file.Close()

	var parsed draw.History
	switch formatFlag {
	case "txt":
		parsed, err = feed.ParseTXT(file, game, providerFlag)
	case "csv":
		parsed, err = feed.ParseCSV(file, game, providerFlag)
	default:
		return errors.InvalidInput("format must be txt or csv, got " + formatFlag)
	}
	if err != nil {
		return err
	}

	valid, report := feed.ValidateBatch(parsed, variant, time.Now())
	inserted, err := repo.SaveDraws(cmd.Context(), valid)
	if err != nil {
		return err
	}

	fmt.Printf("parsed %d, valid %d, inserted %d\n", report.Parsed, report.Valid, inserted)
	for _, reason := range report.Rejected {
		fmt.Printf("rejected: %s\n", reason)
	}
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	game, err := gameType()
	if err != nil {
		return err
	}

	cfg, repo, service, closeDB, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	url := feedURLFlag
	if url == "" {
		url = cfg.Feed.URL
	}
	if url == "" {
		return errors.ConfigInvalid("no feed URL: pass --url or set FEED_URL")
	}

	variant, err := service.Variant(game)
	if err != nil {
		return err
	}

	parsed, err := feed.NewClient(url, game, cfg.Feed.Provider).Fetch(cmd.Context())
	if err != nil {
		return err
	}

	valid, report := feed.ValidateBatch(parsed, variant, time.Now())
	inserted, err := repo.SaveDraws(cmd.Context(), valid)
	if err != nil {
		return err
	}

	fmt.Printf("fetched %d, valid %d, inserted %d\n", report.Parsed, report.Valid, inserted)
	return nil
}
