package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"devtoolbox/internal/auth"
	"devtoolbox/internal/config"
	"devtoolbox/internal/server"
	"devtoolbox/internal/ui"
	"devtoolbox/internal/usage"

	"github.com/joho/godotenv"
)

const version = "v1.4.0"

func main() {
	// Load .env file if it exists
	// Missing is fine, containers set real env vars
	_ = godotenv.Load()

	ui.PrintBanner(version)

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		ui.LogStatus("warning", "Ignoring config file, using defaults: "+err.Error())
	}

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	var clients *auth.ClientStore
	var watcher *auth.Watcher
	if cfg.Env.AuthEnabled {
		clients, err = auth.NewClientStore(cfg.Env.KeysFile)
		if err != nil {
			ui.LogStatus("error", "Failed to load API keys: "+err.Error())
			os.Exit(1)
		}
		ui.LogStatus("success", fmt.Sprintf("Loaded %d API clients from %s", clients.ClientCount(), cfg.Env.KeysFile))

		watcher, err = auth.NewWatcher(clients, auth.DefaultWatchDebounce,
			func(n int) { ui.LogStatus("success", fmt.Sprintf("Reloaded %d API clients", n)) },
			func(err error) { ui.LogStatus("error", "Keys reload failed: "+err.Error()) },
		)
		if err != nil {
			ui.LogStatus("warning", "Keys file will not be watched: "+err.Error())
		} else {
			watcher.Start()
		}
	} else if cfg.Env.IsProduction() {
		ui.WarningNote("Authentication is disabled. Every caller is anonymous and limited to " +
			fmt.Sprintf("%d requests per minute per address.", cfg.Env.AnonRateLimitRPM))
	}

	tracker := usage.NewTracker(cfg.Env.UsageFile)

	ui.LogGroup("Service")
	ui.LogGroupItem("Listen", cfg.Listen)
	ui.LogGroupItem("Request timeout", fmt.Sprintf("%ds", cfg.TimeoutSec))
	ui.LogGroupItem("Max concurrent", fmt.Sprintf("%d", cfg.MaxConcurrent))
	ui.LogGroupItem("Max upload", fmt.Sprintf("%d MB", cfg.MaxUploadMB))
	ui.LogGroupItem("Authentication", fmt.Sprintf("%t", cfg.Env.AuthEnabled))
	ui.LogGroupEnd()

	// Create shutdown context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start metrics server with graceful shutdown
	metrics := server.NewMetricsServer(cfg.MetricsListen)
	metrics.Start()
	ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

	go func() {
		<-ctx.Done()
		ui.LogGracefulShutdown()
		metrics.Shutdown(context.Background())
	}()

	srv := server.NewServer(cfg, clients, tracker)
	if cfg.Env.DebugLogging() {
		printRoutes(srv.Routes())
	}

	ui.PrintFooter("Press Ctrl+C to stop")

	err = srv.Start(ctx)
	if watcher != nil {
		watcher.Stop()
	}
	tracker.Stop()

	stats := srv.Stats().GetStats()
	ui.LogMetric("Requests served", stats.TotalRequests, "")
	ui.LogMetric("Success rate", fmt.Sprintf("%.1f", stats.SuccessRate), "%")
	if err != nil {
		ui.LogStatus("error", "Server failed: "+err.Error())
		log.Fatal(err)
	}
}

func printRoutes(routes []server.Route) {
	ui.LogSection("Tools")
	rows := make([]map[string]string, 0, len(routes))
	for _, rt := range routes {
		access := ui.Muted("key")
		if rt.Public {
			access = ui.Success("public")
		}
		rows = append(rows, map[string]string{
			"method": rt.Method,
			"path":   ui.Accent("%s", rt.Path),
			"title":  ui.TruncateVisible(rt.Title, 28),
			"access": access,
		})
	}
	fmt.Print(ui.RenderTable(ui.RenderTableOptions{
		Columns: []ui.TableColumn{
			{Key: "method", Header: "Method"},
			{Key: "path", Header: "Path"},
			{Key: "title", Header: "Tool"},
			{Key: "access", Header: "Access", Align: ui.AlignCenter},
		},
		Rows: rows,
	}))
}
