package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theoremus-urban-solutions/transit-arrivals/arrivals"
	"github.com/theoremus-urban-solutions/transit-arrivals/config"
	"github.com/theoremus-urban-solutions/transit-arrivals/display"
	"github.com/theoremus-urban-solutions/transit-arrivals/httpapi"
	"github.com/theoremus-urban-solutions/transit-arrivals/logging"
	"github.com/theoremus-urban-solutions/transit-arrivals/metrics"
	"github.com/theoremus-urban-solutions/transit-arrivals/poller"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	mode := flag.String("mode", "serve", "serve|oneshot")
	jsonLogs := flag.Bool("jsonLogs", false, "emit JSON logs instead of terminal output")
	skipProbe := flag.Bool("skipProbe", false, "skip the startup credential probe")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel, *jsonLogs)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Credential probe: activation is blocked entirely on failure.
	if !*skipProbe {
		probeCtx, probeCancel := context.WithTimeout(ctx, cfg.Feed.Timeout())
		err := poller.ValidateFeed(probeCtx, cfg)
		probeCancel()
		if err != nil {
			logger.Error("feed validation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("feed validated", "url", cfg.Feed.URL)
	}

	col := metrics.NewCollector(cfg.Poll.Interval())
	p := poller.New(cfg, logger, col)

	if *mode == "oneshot" {
		snap := p.Poll(ctx)
		buf, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			log.Fatalf("marshal snapshot: %v", err)
		}
		fmt.Println(string(buf))
		return
	}

	p.Subscribe(func(s arrivals.Snapshot) {
		logger.Debug("snapshot published", "state", display.SnapshotState(s))
	})

	srv := httpapi.New(cfg.Server.Port, p, col.Handler(), logger)
	srv.Start()

	go p.Run(ctx)

	logger.Info("polling started",
		"line", cfg.Line.LineName(),
		"from", cfg.Start.StopName(),
		"to", cfg.End.StopName(),
		"interval", cfg.Poll.Interval())

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}
