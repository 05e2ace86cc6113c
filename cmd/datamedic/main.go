package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"datamedic/internal/clean"
	"datamedic/internal/config"
	"datamedic/internal/dataset"
	"datamedic/internal/exporter"
	"datamedic/internal/infrastructure"
	"datamedic/internal/pipeline"
	"datamedic/internal/report"
)

func main() {
	input := flag.String("input", "", "input CSV file to clean (required)")
	configFile := flag.String("config", "datamedic.yaml", "configuration file path")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: datamedic -input data.csv [-config datamedic.yaml] [-out dir]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	logger.Info("Starting dataset cleaning",
		slog.String("input", *input),
		slog.String("output_dir", cfg.Output.Dir))

	ds, err := dataset.LoadCSV(*input)
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}

	cleaner, err := clean.NewCleaner(cfg.Clean)
	if err != nil {
		logger.Error("Invalid clean configuration", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(
		cleaner,
		exporter.NewWriter(cfg.Output.Dir),
		report.NewReporter(cfg.Output.Dir),
		pipeline.WithExports(cfg.Output.Exports...),
		pipeline.WithReport(cfg.Output.ReportFile),
	)

	result, err := p.Run(context.Background(), ds)
	if err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	fmt.Print(result.Summary.Text())
	for _, path := range result.Exported {
		fmt.Printf("wrote %s\n", path)
	}
}
