package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/antennalabs/patterncmp/internal/config"
	"github.com/antennalabs/patterncmp/internal/ingest"
	"github.com/antennalabs/patterncmp/internal/pattern"
	"github.com/antennalabs/patterncmp/internal/render"
	"github.com/antennalabs/patterncmp/internal/utils/logger"
)

func main() {
	logger.Init()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env not loaded; continuing with existing environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment configuration")
	}

	args := flag.Args()
	if len(args) != 2 {
		log.Fatal().Msg("usage: compare <reference-csv> <reconstruction-csv> (path or http(s) URL)")
	}

	ctx := context.Background()
	fetcher := ingest.NewFetcher(&cfg.ClientEnvConfig)

	ref, err := loadTable(ctx, fetcher, args[0])
	if err != nil {
		log.Fatal().Err(err).Str("source", args[0]).Msg("failed to load reference table")
	}
	recon, err := loadTable(ctx, fetcher, args[1])
	if err != nil {
		log.Fatal().Err(err).Str("source", args[1]).Msg("failed to load reconstruction table")
	}

	comparer := pattern.NewComparer(
		pattern.WithCoordFields(cfg.CoordAField, cfg.CoordBField),
		pattern.WithValueField(cfg.ValueField),
		pattern.WithTopN(cfg.TopN),
	)

	result, err := comparer.Compare(ref, recon)
	if err != nil {
		log.Fatal().Err(err).Msg("comparison failed")
	}

	log.Info().Int("points", result.Summary.N).Msg("aligned data points for comparison")

	fmt.Println(render.FormatSummary(result.Summary))
	fmt.Println()
	fmt.Println(render.FormatTopErrors(result.Top, result.Aligned.Spec))
	fmt.Println(render.HeatmapTerminal(result.Grids.Recon, result.Grids.RowCoords, result.Grids.ColCoords, "Reconstructed Pattern"))
	fmt.Println(render.HeatmapTerminal(result.Grids.Ref, result.Grids.RowCoords, result.Grids.ColCoords, "Actual Pattern (Reference)"))
	fmt.Println(render.HeatmapTerminal(result.Grids.AbsErr, result.Grids.RowCoords, result.Grids.ColCoords, "Absolute Error"))
}

func loadTable(ctx context.Context, fetcher *ingest.Fetcher, source string) (*pattern.Table, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetcher.Fetch(ctx, source)
	}
	return ingest.ReadTableFile(source)
}
