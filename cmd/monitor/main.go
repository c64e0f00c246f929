package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmonitor/internal/config"
	"github.com/hamed0406/endpointmonitor/internal/httpapi"
	"github.com/hamed0406/endpointmonitor/internal/logging"
	"github.com/hamed0406/endpointmonitor/internal/metrics"
	"github.com/hamed0406/endpointmonitor/internal/probe"
	"github.com/hamed0406/endpointmonitor/internal/report"
	"github.com/hamed0406/endpointmonitor/internal/scheduler"
	"github.com/hamed0406/endpointmonitor/internal/stats"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: monitor <config_file_path>")
		os.Exit(1)
	}

	settings := config.FromEnv()
	logger, err := logging.NewLogger(settings.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	logger.Info("monitor_start", zap.String("config", os.Args[1]))

	file, err := config.Load(os.Args[1])
	if err != nil {
		logger.Error("config_error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "monitor:", err)
		os.Exit(1)
	}
	for _, verr := range file.Validate() {
		logger.Error("schema_error", zap.String("detail", verr.Error()))
	}
	endpoints := file.Endpoints()

	metrics.MustRegister()
	agg := stats.New()
	rep := report.NewReporter(os.Stdout, logger)
	checker := probe.NewHTTPChecker(settings.ProbeTimeout)
	mon := scheduler.NewMonitor(logger, endpoints, checker, agg, rep,
		settings.CheckInterval, settings.ProbeTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if settings.Addr != "" {
		api := httpapi.NewServer(logger, agg, settings.APIKeys)
		go func() {
			logger.Info("api_listen", zap.String("addr", settings.Addr))
			if err := http.ListenAndServe(settings.Addr, api.Router()); err != nil {
				logger.Error("api_error", zap.Error(err))
			}
		}()
	}

	mon.Run(ctx)

	logger.Info("monitor_stopped_by_user")
	fmt.Println("\nMonitoring stopped by user.")
}
