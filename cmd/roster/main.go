package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/roster/internal/config"
	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/UnknownOlympus/roster/internal/services/employees"
	"github.com/UnknownOlympus/roster/internal/shell"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx := context.Background()

	cfg := config.MustLoad()

	// stdout belongs to the menu
	logger := setupLogger(cfg.Env, os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dept := repository.NewDepartment(cfg.Department.Name, appMetrics)
	defer dept.Close()

	staff := employees.NewStaff(logger, dept, appMetrics)

	logger.InfoContext(ctx, "Roster started", "department", dept.Name())

	if err := shell.New(os.Stdin, os.Stdout, staff, logger, appMetrics).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "Shell stopped unexpectedly", sl.Err(err))
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			logger.ErrorContext(ctx, "Failed to export metrics", sl.Err(err))
		}
	}

	logger.InfoContext(ctx, "Roster stopped", "employees", dept.Len())
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}
	return a
}
