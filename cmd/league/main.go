package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/YusovID/racing-league/internal/config"
	"github.com/YusovID/racing-league/internal/metrics"
	"github.com/YusovID/racing-league/internal/repository/memory"
	"github.com/YusovID/racing-league/internal/seed"
	"github.com/YusovID/racing-league/internal/service"
	"github.com/YusovID/racing-league/pkg/logger/sl"
	"github.com/YusovID/racing-league/pkg/logger/slogpretty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting racing-league", slog.String("env", cfg.Env))

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	store := memory.New()

	registration := service.NewRegistrationService(store, log, rec)
	association := service.NewAssociationService(store, log, rec)
	reporting := service.NewReportingService(store, log, rec)

	if cfg.Seed.Path != "" {
		file, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			return fmt.Errorf("failed to read seed: %w", err)
		}

		if _, err := seed.NewImporter(store, registration, association, log).Import(file); err != nil {
			return fmt.Errorf("failed to import seed: %w", err)
		}
	} else {
		log.Warn("no seed configured, the league is empty")
	}

	if err := writeReport(out, reporting, cfg.Report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logOperationTotals(log, reg)

	return nil
}

// logOperationTotals logs every recorded operation counter at debug level.
func logOperationTotals(log *slog.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		log.Error("failed to gather metrics", sl.Err(err))
		return
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			attrs := []any{slog.Float64("count", m.GetCounter().GetValue())}
			for _, label := range m.GetLabel() {
				attrs = append(attrs, slog.String(label.GetName(), label.GetValue()))
			}

			log.Debug(family.GetName(), attrs...)
		}
	}
}
