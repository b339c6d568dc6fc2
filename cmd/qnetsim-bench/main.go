package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qnetsim/qnetsim/pkg/export"
	"github.com/qnetsim/qnetsim/pkg/logging"
	"github.com/qnetsim/qnetsim/pkg/metrics"
	"github.com/qnetsim/qnetsim/pkg/montecarlo"
)

func main() {
	configPath := flag.String("config", "", "Benchmark configuration file (YAML)")
	outPath := flag.String("out", "sweep.csv", "Output CSV path")
	metricsAddr := flag.String("metrics-addr", "", "Optional address for the Prometheus /metrics endpoint")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing required -config flag")
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(*logLevel))
	registry := metrics.NewRegistry()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("🚀 qnetsim benchmark starting...")
	log.Printf("📐 Lattice: %s %dx%d, reduction: %s", cfg.Lattice.Type, cfg.Lattice.Cols, cfg.Lattice.Rows, cfg.Reduction)

	snap, err := cfg.BuildSnapshot()
	if err != nil {
		log.Fatalf("Failed to build lattice: %v", err)
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
		go func() {
			log.Printf("📊 Metrics listening on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := montecarlo.NewEngineWithConfig(montecarlo.EngineConfig{
		Logger:  logger,
		Metrics: registry,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	})

	start := time.Now()
	table, err := engine.Sweep(ctx, cfg.SweepRequest(snap))
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	registry.UpdateSystemMetrics(start)

	if err := export.WriteCSVFile(*outPath, table); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}

	log.Printf("✅ Sweep %s complete: %d rows in %s", table.RunID, len(table.Rows), time.Since(start).Round(time.Millisecond))
	log.Printf("💾 Results written to %s", *outPath)
}
