package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"simlab/internal"
	"simlab/internal/config"
	"simlab/internal/experiment"
	"simlab/internal/export"
	"simlab/internal/simdata"
)

func main() {
	logger := internal.NewDefaultLogger()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(2)
	}

	out := flag.String("out", "group_scores.csv", "output file path")
	format := flag.String("format", "", "output format: csv or xlsx (default inferred from -out)")
	seed := flag.Int64("seed", cfg.Sim.Seed, "RNG seed (deterministic)")
	perGroup := flag.Int("per-group", cfg.Sim.PerGroup, "subjects per group")
	trials := flag.Int("trials", cfg.Sim.Trials, "replications for the sampling-distribution experiment")
	workers := flag.Int("workers", cfg.Sim.Workers, "concurrent trial workers")
	flag.Parse()

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		switch strings.ToLower(filepath.Ext(*out)) {
		case ".xlsx":
			fmtName = "xlsx"
		default:
			fmtName = "csv"
		}
	}

	dataCfg := simdata.DefaultConfig()
	dataCfg.Seed = *seed
	dataCfg.PerGroup = *perGroup

	f, err := simdata.GenerateGroupScores(dataCfg)
	if err != nil {
		logger.Error("generating dataset: %v", err)
		os.Exit(1)
	}

	switch fmtName {
	case "xlsx":
		err = export.WriteXLSX(*out, f)
	case "csv":
		err = export.WriteCSV(*out, f)
	default:
		fmt.Fprintln(os.Stderr, "unknown format:", fmtName)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("writing %s: %v", *out, err)
		os.Exit(1)
	}
	logger.Info("wrote %d rows to %s", f.Rows(), *out)

	expCfg := experiment.DefaultConfig()
	expCfg.Seed = *seed
	expCfg.Trials = *trials
	expCfg.Workers = *workers

	report, err := experiment.SamplingDistribution(context.Background(), expCfg)
	if err != nil {
		logger.Error("sampling-distribution experiment: %v", err)
		os.Exit(1)
	}
	logger.Info("run %s: %d trials of n=%d, sample means %s",
		report.RunID, report.Trials, report.SampleSize, report.Means)
}
