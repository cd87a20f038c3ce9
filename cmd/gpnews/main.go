package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/BenBen05059997/globalPerspective-v1/internal/app"
	"github.com/BenBen05059997/globalPerspective-v1/internal/config"
	"github.com/BenBen05059997/globalPerspective-v1/internal/logger"
	"github.com/BenBen05059997/globalPerspective-v1/internal/metrics"
)

func main() {
	// .env is optional, env vars win
	_ = godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.MonitoringEnabled {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Run error: %v", err)
	}
}

func startMonitoringServer(port int) {
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	addr := ":" + strconv.Itoa(port)
	log.Printf("Starting monitoring server on %s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
