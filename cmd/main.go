// Command xiaozhao validates, enriches and aggregates one campus-recruitment
// spreadsheet and writes the statistics bundle as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/xiaozhao/internal/adapters/spreadsheet"
	app "github.com/okian/xiaozhao/internal/app"
	"github.com/okian/xiaozhao/internal/config"
	"github.com/okian/xiaozhao/internal/domain/enrich"
	"github.com/okian/xiaozhao/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	input := flag.String("input", "", "path to the upload spreadsheet (.xlsx, .xlsm or .csv)")
	output := flag.String("output", "", "path for the JSON statistics bundle (default stdout)")
	description := flag.String("description", "", "free-form batch description recorded on the snapshot")
	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}
	if *input == "" {
		os.Stderr.WriteString("usage: xiaozhao -input batch.xlsx [-output stats.json] [-description ...]\n")
		return 2
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithHistorySize(cfg.HistorySize),
		app.WithEnricher(enrich.New(cfg.EnrichOptions()...)),
		app.WithAggregatorOptions(cfg.StatsOptions()...),
	)

	rows, err := spreadsheet.ReadFile(*input)
	if err != nil {
		log.Error(ctx, "failed to read spreadsheet", logger.String("path", *input), logger.Error(err))
		return 1
	}
	log.Info(ctx, "spreadsheet loaded", logger.String("path", *input), logger.Int("rows", len(rows)))

	snap, rowErrs, err := svc.Process(ctx, rows, *description)
	if err != nil {
		log.Error(ctx, "batch processing failed", logger.Error(err))
		for _, re := range rowErrs {
			log.Warn(ctx, "row rejected", logger.Int("row", re.Row), logger.String("kind", string(re.Kind)), logger.String("field", re.Field))
		}
		return 1
	}
	for _, re := range rowErrs {
		log.Warn(ctx, "row rejected", logger.Int("row", re.Row), logger.String("kind", string(re.Kind)), logger.String("field", re.Field))
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Error(ctx, "failed to encode statistics", logger.Error(err))
		return 1
	}
	payload = append(payload, '\n')

	if *output == "" {
		if _, err := os.Stdout.Write(payload); err != nil {
			log.Error(ctx, "failed to write statistics", logger.Error(err))
			return 1
		}
	} else {
		if err := os.WriteFile(*output, payload, 0o600); err != nil {
			log.Error(ctx, "failed to write statistics", logger.String("path", *output), logger.Error(err))
			return 1
		}
		log.Info(ctx, "statistics written", logger.String("path", *output))
	}

	log.Info(ctx, "batch complete",
		logger.String("snapshot", snap.ID),
		logger.Int("records", snap.RecordCount),
		logger.Int("rowErrors", len(rowErrs)),
	)
	return 0
}
